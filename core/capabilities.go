// Package core holds the climbing and jumping gameplay: the trajectory
// predictor, the jump executor and the controller that arbitrates between
// climbing, free locomotion and jumping. The host engine is reached only
// through the small interfaces declared here.
package core

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/geometry"
)

// Body is the rigid body the core steers.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	UseGravity() bool
	SetUseGravity(enabled bool)
	ColliderEnabled() bool
	SetColliderEnabled(enabled bool)
	// Capsule returns the collision capsule radius and total height.
	Capsule() (radius, height float64)
}

// Geometry answers spatial queries against the level.
type Geometry interface {
	OverlapSphere(center mgl64.Vec3, radius float64, mask geometry.Layer) bool
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask geometry.Layer) (geometry.Hit, bool)
}

// TrajectoryView draws the previewed arc and its landing marker.
type TrajectoryView interface {
	ShowLine(points []mgl64.Vec3)
	HideLine()
	ShowMarker(at mgl64.Vec3)
	HideMarker()
}

// Scene reloads the current level.
type Scene interface {
	Reset()
}

// HandSample is one tracked hand. Both vectors are in the body's local frame.
type HandSample struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3 // zero when the device has no pointing direction
}

// InputFrame is the continuous input for one simulation tick.
type InputFrame struct {
	Hands [HandCount]HandSample
	Move  mgl64.Vec2 // x strafes right, y walks forward
	Turn  mgl64.Vec2 // x yaws right
}

type nopView struct{}

func (nopView) ShowLine([]mgl64.Vec3) {}
func (nopView) HideLine()             {}
func (nopView) ShowMarker(mgl64.Vec3) {}
func (nopView) HideMarker()           {}

type nopScene struct{}

func (nopScene) Reset() {}
