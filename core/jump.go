package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/config"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	ErrJumpActive   = errors.New("jump already active")
	ErrPathCapacity = errors.New("trajectory length does not match jump capacity")
	ErrNoLanding    = errors.New("trajectory has no landing point")
)

// JumpState is the playback progress of the running jump.
type JumpState struct {
	Active   bool
	Path     []mgl64.Vec3
	EndIndex int
	EndPoint mgl64.Vec3
	Segment  int     // segment being played
	Progress float64 // 0..1 within Segment
}

// Executor plays the body through a captured trajectory, one segment per
// tween, with gravity and the collider off for the whole flight.
type Executor struct {
	body Body
	cfg  config.JumpConfig

	path  []mgl64.Vec3
	state JumpState

	tween     *gween.Tween
	start     mgl64.Vec3
	launchRot mgl64.Quat
	facingRot mgl64.Quat
	landing   mgl64.Vec3
}

// NewExecutor creates an executor that accepts paths of exactly capacity
// samples.
func NewExecutor(body Body, capacity int, cfg config.JumpConfig) *Executor {
	return &Executor{
		body: body,
		cfg:  cfg,
		path: make([]mgl64.Vec3, capacity),
	}
}

func (e *Executor) Active() bool {
	return e.state.Active
}

// State returns a copy of the playback progress.
func (e *Executor) State() JumpState {
	s := e.state
	if s.Active {
		s.Path = append([]mgl64.Vec3(nil), e.path...)
	}
	return s
}

// Launch captures path and starts playback toward endPoint.
func (e *Executor) Launch(path []mgl64.Vec3, endIndex int, endPoint mgl64.Vec3) error {
	if e.state.Active {
		return ErrJumpActive
	}
	if len(path) != len(e.path) {
		return fmt.Errorf("%w: got %d samples, want %d", ErrPathCapacity, len(path), len(e.path))
	}
	if endIndex <= 0 || endIndex >= len(path) {
		return fmt.Errorf("%w: end index %d", ErrNoLanding, endIndex)
	}

	copy(e.path, path)
	e.state = JumpState{
		Active:   true,
		Path:     e.path,
		EndIndex: endIndex,
		EndPoint: endPoint,
	}

	pos := e.body.Position()
	e.launchRot = e.body.Rotation()
	facing := gamemath.Horizontal(endPoint.Sub(pos))
	if facing.LenSqr() < 1e-12 {
		facing = gamemath.Horizontal(gamemath.ForwardOf(e.launchRot))
		e.facingRot = e.launchRot
	} else {
		e.facingRot = gamemath.FacingRotation(facing)
	}
	if facing.LenSqr() > 0 {
		facing = facing.Normalize()
	}
	// Hands meet the wall at the end point, so the body stops a capsule
	// radius short of it and a grab-height lower.
	e.landing = facing.Mul(-e.cfg.CapsuleRadius).Add(mgl64.Vec3{0, -e.cfg.GrabPointHeight, 0})

	e.body.SetVelocity(mgl64.Vec3{})
	e.body.SetUseGravity(false)
	e.body.SetColliderEnabled(false)

	e.beginSegment(0)
	return nil
}

// Update advances playback by one frame. It reports true on the frame the
// jump completes.
func (e *Executor) Update(frameDt float64) bool {
	if !e.state.Active {
		return false
	}

	t, done := e.tween.Update(float32(frameDt))
	e.state.Progress = float64(t)
	i := e.state.Segment
	e.body.SetPosition(gamemath.Lerp(e.start, e.target(i), e.state.Progress))
	e.body.SetRotation(e.rotationAt(i, e.state.Progress))

	if !done {
		return false
	}
	if i+1 >= e.state.EndIndex {
		e.finish()
		return true
	}
	e.beginSegment(i + 1)
	return false
}

// Cancel stops a running jump and restores gravity and the collider. It
// reports whether a jump was running.
func (e *Executor) Cancel() bool {
	if !e.state.Active {
		return false
	}
	e.finish()
	return true
}

func (e *Executor) beginSegment(i int) {
	e.state.Segment = i
	e.state.Progress = 0
	e.start = e.body.Position()
	e.tween = gween.New(0, 1, float32(1/e.cfg.PlaybackRate), ease.Linear)
}

// target is path[i] pulled toward the landing pose, more so later in the arc.
func (e *Executor) target(i int) mgl64.Vec3 {
	w := float64(i) / float64(e.state.EndIndex)
	return e.path[i].Add(e.landing.Mul(w))
}

// rotationAt blends from the launch rotation to the facing rotation over the
// first half of the arc.
func (e *Executor) rotationAt(i int, t float64) mgl64.Quat {
	half := float64(e.state.EndIndex) / 2
	f := mgl64.Clamp((float64(i)+t)/half, 0, 1)
	return mgl64.QuatSlerp(e.launchRot, e.facingRot, f).Normalize()
}

func (e *Executor) finish() {
	e.state = JumpState{}
	e.tween = nil
	e.body.SetColliderEnabled(true)
	e.body.SetUseGravity(true)
}
