package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// YawRotation returns a rotation of angle radians about the world up axis.
func YawRotation(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, Up)
}

// FacingRotation returns the yaw-only rotation whose forward points along the
// horizontal part of dir. A vertical or zero dir yields the identity.
func FacingRotation(dir mgl64.Vec3) mgl64.Quat {
	h := Horizontal(dir)
	if h.LenSqr() < 1e-12 {
		return mgl64.QuatIdent()
	}
	return YawRotation(math.Atan2(h.X(), h.Z()))
}

// Turn applies a yaw of angle radians on top of rot.
func Turn(rot mgl64.Quat, angle float64) mgl64.Quat {
	return YawRotation(angle).Mul(rot).Normalize()
}

// ForwardOf returns the forward axis of rot.
func ForwardOf(rot mgl64.Quat) mgl64.Vec3 {
	return rot.Rotate(Forward)
}

// RightOf returns the right axis of rot.
func RightOf(rot mgl64.Quat) mgl64.Vec3 {
	return rot.Rotate(Right)
}
