package gamemath

import "github.com/go-gl/mathgl/mgl64"

// BallisticPoint returns the position of a projectile launched from origin with
// velocity after t seconds under gravity. It is closed form, so evaluating the
// same t twice always yields the same point.
func BallisticPoint(origin, velocity, gravity mgl64.Vec3, t float64) mgl64.Vec3 {
	return origin.Add(velocity.Mul(t)).Add(gravity.Mul(0.5 * t * t))
}

// SegmentTime returns the time offset of sample i along a previewed arc.
// tick is the fixed simulation step and curveLength stretches the arc in time.
func SegmentTime(i int, tick, curveLength float64) float64 {
	return float64(i) * tick * curveLength
}

// FillArc writes len(dst) samples of a ballistic arc into dst. dst[0] is origin.
func FillArc(dst []mgl64.Vec3, origin, velocity, gravity mgl64.Vec3, tick, curveLength float64) {
	if len(dst) == 0 {
		return
	}
	dst[0] = origin
	for i := 1; i < len(dst); i++ {
		dst[i] = BallisticPoint(origin, velocity, gravity, SegmentTime(i, tick, curveLength))
	}
}

// LaunchVelocity returns the initial velocity for a jump along aim at speed.
func LaunchVelocity(aim mgl64.Vec3, speed float64) mgl64.Vec3 {
	if aim.LenSqr() == 0 {
		return mgl64.Vec3{}
	}
	return aim.Normalize().Mul(speed)
}
