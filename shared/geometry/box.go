package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned block of level geometry.
type Box struct {
	Name  string
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Layer Layer
}

// Hit describes the first intersection of a ray with a box.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Box      *Box
}

// Size returns the box extents.
func (b *Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// ClosestPoint clamps p into the box.
func (b *Box) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl64.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl64.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// OverlapsSphere reports whether the sphere touches the box.
func (b *Box) OverlapsSphere(center mgl64.Vec3, radius float64) bool {
	d := b.ClosestPoint(center).Sub(center)
	return d.LenSqr() <= radius*radius
}

// OverlapsBox reports whether two boxes intersect.
func (b *Box) OverlapsBox(min, max mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if max[i] < b.Min[i] || min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Raycast intersects the ray origin + dir*t, t in [0, maxDist], with the box
// using the slab method. dir must be normalized. Rays starting inside the box
// do not hit it.
func (b *Box) Raycast(origin, dir mgl64.Vec3, maxDist float64) (Hit, bool) {
	tmin, tmax := 0.0, maxDist
	var normal mgl64.Vec3

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return Hit{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl64.Vec3{}
			normal[i] = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	// Entry face never crossed: the origin is inside the box.
	if normal == (mgl64.Vec3{}) {
		return Hit{}, false
	}

	return Hit{
		Point:    origin.Add(dir.Mul(tmin)),
		Normal:   normal,
		Distance: tmin,
		Box:      b,
	}, true
}
