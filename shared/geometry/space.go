package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
	"github.com/solarlune/resolv"
)

// cursorPad widens every footprint slightly so boxes that only touch still
// share a cell.
const cursorPad = 0.01

// Space indexes boxes by their horizontal (XZ) footprint in a resolv space and
// runs exact 3D tests on the broadphase candidates.
type Space struct {
	origin mgl64.Vec2
	scale  float64
	index  *resolv.Space
	cursor *resolv.Object
	boxes  []*Box
}

// NewSpace creates a space covering the XZ rectangle [min, max]. Each resolv
// cell spans cellSize world units.
func NewSpace(min, max mgl64.Vec2, cellSize float64) *Space {
	if cellSize <= 0 {
		cellSize = 1
	}
	// resolv cells are integer sized, so the index works in scaled units.
	scale := 16 / cellSize
	w := int(math.Ceil((max.X()-min.X())*scale)) + 16
	h := int(math.Ceil((max.Y()-min.Y())*scale)) + 16

	s := &Space{
		origin: min,
		scale:  scale,
		index:  resolv.NewSpace(w, h, 16, 16),
	}
	s.cursor = resolv.NewObject(0, 0, 1, 1, tagCursor)
	s.index.Add(s.cursor)
	return s
}

// Add inserts a copy of b and returns the stored box.
func (s *Space) Add(b Box) *Box {
	box := &b
	x, y, w, h := s.footprint(box.Min, box.Max)
	obj := resolv.NewObject(x, y, w, h, box.Layer.Tags()...)
	obj.Data = box
	s.index.Add(obj)
	s.boxes = append(s.boxes, box)
	return box
}

// Boxes returns every box in insertion order.
func (s *Space) Boxes() []*Box {
	return s.boxes
}

// BoxesOn returns the boxes on any layer in mask.
func (s *Space) BoxesOn(mask Layer) []*Box {
	return lo.Filter(s.boxes, func(b *Box, _ int) bool {
		return b.Layer.Has(mask)
	})
}

// Query returns the boxes on mask that intersect the box [min, max].
func (s *Space) Query(min, max mgl64.Vec3, mask Layer) []*Box {
	return lo.Filter(s.candidates(min, max, mask), func(b *Box, _ int) bool {
		return b.OverlapsBox(min, max)
	})
}

// OverlapSphere reports whether any box on mask touches the sphere.
func (s *Space) OverlapSphere(center mgl64.Vec3, radius float64, mask Layer) bool {
	r := mgl64.Vec3{radius, radius, radius}
	return lo.SomeBy(s.candidates(center.Sub(r), center.Add(r), mask), func(b *Box) bool {
		return b.OverlapsSphere(center, radius)
	})
}

// Raycast returns the closest hit along dir within maxDist against boxes on
// mask. dir does not need to be normalized; a zero dir never hits.
func (s *Space) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask Layer) (Hit, bool) {
	if dir.LenSqr() == 0 || maxDist <= 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()
	end := origin.Add(dir.Mul(maxDist))

	min, max := origin, end
	for i := 0; i < 3; i++ {
		min[i] = math.Min(origin[i], end[i])
		max[i] = math.Max(origin[i], end[i])
	}

	var best Hit
	found := false
	for _, b := range s.candidates(min, max, mask) {
		hit, ok := b.Raycast(origin, dir, maxDist)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// candidates returns the boxes on mask whose footprint shares a broadphase
// cell with the XZ footprint of [min, max], in insertion order.
func (s *Space) candidates(min, max mgl64.Vec3, mask Layer) []*Box {
	tags := mask.Tags()
	if len(tags) == 0 {
		return nil
	}

	s.cursor.X, s.cursor.Y, s.cursor.W, s.cursor.H = s.footprint(min, max)
	s.cursor.Update()

	check := s.cursor.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	hits := make(map[*Box]struct{}, len(check.Objects))
	for _, obj := range check.Objects {
		if box, ok := obj.Data.(*Box); ok && box.Layer.Has(mask) {
			hits[box] = struct{}{}
		}
	}
	return lo.Filter(s.boxes, func(b *Box, _ int) bool {
		_, ok := hits[b]
		return ok
	})
}

// footprint maps a world AABB to resolv coordinates (X -> x, Z -> y).
// resolv places the far edge of an object at X+W-1, so one extra unit is
// added on each axis to keep thin footprints from landing in no cell.
func (s *Space) footprint(min, max mgl64.Vec3) (x, y, w, h float64) {
	x = (min.X() - s.origin.X()) * s.scale
	y = (min.Z() - s.origin.Y()) * s.scale
	w = (max.X() - min.X()) * s.scale
	h = (max.Z() - min.Z()) * s.scale
	return x - cursorPad, y - cursorPad, w + 2*cursorPad + 1, h + 2*cursorPad + 1
}
