package core

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/geometry"
)

// Solids returns the boxes overlapping an axis-aligned region.
type Solids interface {
	Query(min, max mgl64.Vec3, mask geometry.Layer) []*geometry.Box
}

// RigidBody is a minimal capsule body: gravity, velocity and axis-separated
// push-out against solid boxes. The capsule is treated as its bounding box.
type RigidBody struct {
	position mgl64.Vec3
	rotation mgl64.Quat
	velocity mgl64.Vec3
	radius   float64
	height   float64

	useGravity      bool
	colliderEnabled bool

	// GravityToggles counts SetUseGravity calls that changed the flag.
	GravityToggles int
}

func NewRigidBody(position mgl64.Vec3, rotation mgl64.Quat, radius, height float64) *RigidBody {
	return &RigidBody{
		position:        position,
		rotation:        rotation,
		radius:          radius,
		height:          height,
		useGravity:      true,
		colliderEnabled: true,
	}
}

func (b *RigidBody) Position() mgl64.Vec3        { return b.position }
func (b *RigidBody) SetPosition(p mgl64.Vec3)    { b.position = p }
func (b *RigidBody) Rotation() mgl64.Quat        { return b.rotation }
func (b *RigidBody) SetRotation(q mgl64.Quat)    { b.rotation = q.Normalize() }
func (b *RigidBody) Velocity() mgl64.Vec3        { return b.velocity }
func (b *RigidBody) SetVelocity(v mgl64.Vec3)    { b.velocity = v }
func (b *RigidBody) UseGravity() bool            { return b.useGravity }
func (b *RigidBody) ColliderEnabled() bool       { return b.colliderEnabled }
func (b *RigidBody) Capsule() (float64, float64) { return b.radius, b.height }

func (b *RigidBody) SetUseGravity(enabled bool) {
	if b.useGravity != enabled {
		b.GravityToggles++
	}
	b.useGravity = enabled
}

func (b *RigidBody) SetColliderEnabled(enabled bool) {
	b.colliderEnabled = enabled
}

// Bounds returns the body's axis-aligned bounding box.
func (b *RigidBody) Bounds() (min, max mgl64.Vec3) {
	return b.boundsAt(b.position)
}

func (b *RigidBody) boundsAt(p mgl64.Vec3) (min, max mgl64.Vec3) {
	half := mgl64.Vec3{b.radius, b.height / 2, b.radius}
	return p.Sub(half), p.Add(half)
}

// Integrate applies gravity and moves the body by its velocity for dt
// seconds, one axis at a time. With the collider enabled it stops at solid
// boxes and zeroes the blocked velocity component.
func (b *RigidBody) Integrate(dt float64, gravity mgl64.Vec3, solids Solids) {
	if b.useGravity {
		b.velocity = b.velocity.Add(gravity.Mul(dt))
	}
	delta := b.velocity.Mul(dt)
	if !b.colliderEnabled || solids == nil {
		b.position = b.position.Add(delta)
		return
	}
	for axis := 0; axis < 3; axis++ {
		if delta[axis] == 0 {
			continue
		}
		b.position[axis] += delta[axis]
		b.resolveAxis(axis, delta[axis], solids)
	}
}

func (b *RigidBody) resolveAxis(axis int, moved float64, solids Solids) {
	min, max := b.Bounds()
	for _, box := range solids.Query(min, max, geometry.LayerSolid) {
		if !penetrates(box, min, max) {
			continue
		}
		half := b.radius
		if axis == 1 {
			half = b.height / 2
		}
		if moved > 0 {
			b.position[axis] = box.Min[axis] - half
		} else {
			b.position[axis] = box.Max[axis] + half
		}
		b.velocity[axis] = 0
		min, max = b.Bounds()
	}
}

// penetrates is a strict overlap test; resting flush against a face is not a
// collision.
func penetrates(box *geometry.Box, min, max mgl64.Vec3) bool {
	const skin = 1e-9
	for i := 0; i < 3; i++ {
		if max[i] <= box.Min[i]+skin || min[i] >= box.Max[i]-skin {
			return false
		}
	}
	return true
}
