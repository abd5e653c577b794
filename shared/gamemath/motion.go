package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// MoveTowards steps current toward target by at most maxDelta without
// overshooting it.
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	diff := target.Sub(current)
	dist := diff.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Mul(maxDelta / dist))
}

// AccelerateHorizontal moves the horizontal part of velocity toward desired at
// a constant acceleration. The vertical component is returned untouched.
func AccelerateHorizontal(velocity, desired mgl64.Vec3, accel, dt float64) mgl64.Vec3 {
	next := MoveTowards(Horizontal(velocity), Horizontal(desired), accel*dt)
	return mgl64.Vec3{next.X(), velocity.Y(), next.Z()}
}

// Acceleration returns the constant rate needed to reach maxSpeed from rest in
// timeToAccelerate seconds. A non-positive time means instant response.
func Acceleration(maxSpeed, timeToAccelerate float64) float64 {
	if timeToAccelerate <= 0 {
		return maxSpeed * 1e6
	}
	return maxSpeed / timeToAccelerate
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
