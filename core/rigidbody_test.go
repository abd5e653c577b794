package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/stretchr/testify/assert"
)

func TestRigidBodyLandsOnFloor(t *testing.T) {
	space := testSpace()
	b := NewRigidBody(mgl64.Vec3{0, 3, 0}, mgl64.QuatIdent(), 0.5, 2)

	for i := 0; i < 120; i++ {
		b.Integrate(tick, testGravity, space)
	}

	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
	assert.InDelta(t, 0, b.Velocity().Y(), 1e-9)
}

func TestRigidBodySlidesAlongFloorIntoWall(t *testing.T) {
	space := testSpace()
	b := NewRigidBody(mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent(), 0.5, 2)
	b.SetVelocity(mgl64.Vec3{0, 0, 5})

	for i := 0; i < 120; i++ {
		b.Integrate(tick, testGravity, space)
	}

	assert.InDelta(t, 4.5, b.Position().Z(), 1e-9)
	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
	assert.Zero(t, b.Velocity().Z())
}

func TestRigidBodyWithoutColliderPassesThrough(t *testing.T) {
	space := testSpace()
	b := NewRigidBody(mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent(), 0.5, 2)
	b.SetColliderEnabled(false)
	b.SetUseGravity(false)
	b.SetVelocity(mgl64.Vec3{0, 0, 10})

	b.Integrate(1, testGravity, space)

	assert.InDelta(t, 10, b.Position().Z(), 1e-9)
	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
}

func TestRigidBodyCountsGravityToggles(t *testing.T) {
	b := NewRigidBody(mgl64.Vec3{}, mgl64.QuatIdent(), 0.5, 2)
	b.SetUseGravity(true)
	b.SetUseGravity(false)
	b.SetUseGravity(false)
	b.SetUseGravity(true)
	assert.Equal(t, 2, b.GravityToggles)
}

func TestRigidBodyBounds(t *testing.T) {
	b := NewRigidBody(mgl64.Vec3{1, 1, 1}, mgl64.QuatIdent(), 0.5, 2)
	min, max := b.Bounds()
	assert.Equal(t, mgl64.Vec3{0.5, 0, 0.5}, min)
	assert.Equal(t, mgl64.Vec3{1.5, 2, 1.5}, max)

	var _ Body = b
	var _ Solids = (*geometry.Space)(nil)
}
