package core

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Drone is the race pacer. It flies in a straight line from its spawn to an
// end waypoint in a fixed time.
type Drone struct {
	start, end  mgl64.Vec3
	timeToReach float64

	position mgl64.Vec3
	rotation mgl64.Quat
	progress *gween.Tween
	moving   bool
	arrived  bool
}

func NewDrone(start, end mgl64.Vec3, timeToReach float64) *Drone {
	d := &Drone{start: start, end: end, timeToReach: timeToReach}
	d.Reset()
	return d
}

// Reset puts the drone back on its spawn, stopped.
func (d *Drone) Reset() {
	d.position = d.start
	d.rotation = gamemath.FacingRotation(d.end.Sub(d.start))
	d.progress = gween.New(0, 1, float32(d.timeToReach), ease.Linear)
	d.moving = false
	d.arrived = false
}

// Activate starts the flight. It does nothing after arrival.
func (d *Drone) Activate() {
	if d.arrived {
		return
	}
	d.moving = true
}

// FixedUpdate moves the drone one simulation tick.
func (d *Drone) FixedUpdate(dt float64) {
	if !d.moving {
		return
	}
	t, done := d.progress.Update(float32(dt))
	if d.timeToReach <= 0 {
		done = true
	}
	if done {
		d.position = d.end
		d.moving = false
		d.arrived = true
		return
	}
	d.position = gamemath.Lerp(d.start, d.end, float64(t))
}

// Speed is the constant travel speed in units per second.
func (d *Drone) Speed() float64 {
	if d.timeToReach <= 0 {
		return 0
	}
	return d.end.Sub(d.start).Len() / d.timeToReach
}

func (d *Drone) Position() mgl64.Vec3 { return d.position }
func (d *Drone) Rotation() mgl64.Quat { return d.rotation }
func (d *Drone) Moving() bool         { return d.moving }
func (d *Drone) Arrived() bool        { return d.arrived }
func (d *Drone) End() mgl64.Vec3      { return d.end }
