// Package leveldata parses TMX level files into 3D level descriptions. The TMX
// map is the top-down (XZ) plan of the level; heights come from object
// properties.
package leveldata

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/geometry"
)

// PixelsPerUnit converts TMX pixel coordinates to world units.
const PixelsPerUnit = 16.0

// Level holds everything a race scene needs from a level file.
type Level struct {
	Name   string
	Min    mgl64.Vec2 // XZ bounds
	Max    mgl64.Vec2
	Boxes  []geometry.Box
	Player Spawn
	Drone  DroneRoute
}

// Spawn is a start pose. Yaw is in degrees about the up axis.
type Spawn struct {
	Position mgl64.Vec3
	Yaw      float64
}

// DroneRoute describes the pacer's straight flight.
type DroneRoute struct {
	Start       mgl64.Vec3
	End         mgl64.Vec3
	TimeToReach float64 // seconds, 0 means use the configured default
}

// Space builds the collision space for the level.
func (l *Level) Space(cellSize float64) *geometry.Space {
	s := geometry.NewSpace(l.Min, l.Max, cellSize)
	for _, b := range l.Boxes {
		s.Add(b)
	}
	return s
}
