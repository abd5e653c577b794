package core

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/config"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/spidergame/spider/shared/geometry"
)

// ControllerOptions wires a Controller to its collaborators. Drone, Timer,
// Scene and Logger are optional.
type ControllerOptions struct {
	Body       Body
	Geometry   Geometry
	Scene      Scene
	Jump       *Executor
	Predictors [HandCount]*Predictor
	Drone      *Drone
	Timer      *RaceTimer
	Climb      config.ClimbConfig
	Locomotion config.LocomotionConfig
	GroundSkin float64
	Logger     *slog.Logger
}

// ControllerState is a read-only view of the controller for HUDs and tests.
type ControllerState struct {
	Hands    [HandCount]HandState
	Jumping  bool
	Grounded bool
}

type handSlot struct {
	state      HandState
	lastOffset mgl64.Vec3
}

// Controller decides whether the body is climbing, moving freely or jumping,
// and turns input events into transitions between them.
type Controller struct {
	body       Body
	geom       Geometry
	scene      Scene
	jump       *Executor
	predictors [HandCount]*Predictor
	drone      *Drone
	timer      *RaceTimer
	climb      config.ClimbConfig
	loco       config.LocomotionConfig
	groundSkin float64
	log        *slog.Logger

	hands    [HandCount]handSlot
	input    InputFrame
	grounded bool
}

func NewController(opts ControllerOptions) *Controller {
	c := &Controller{
		body:       opts.Body,
		geom:       opts.Geometry,
		scene:      opts.Scene,
		jump:       opts.Jump,
		predictors: opts.Predictors,
		drone:      opts.Drone,
		timer:      opts.Timer,
		climb:      opts.Climb,
		loco:       opts.Locomotion,
		groundSkin: opts.GroundSkin,
		log:        opts.Logger,
	}
	if c.scene == nil {
		c.scene = nopScene{}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Sample records the input used by the next events and FixedUpdate.
func (c *Controller) Sample(in InputFrame) {
	c.input = in
}

// GrabPressed grabs with h if a climbable surface is within reach.
func (c *Controller) GrabPressed(h Hand) {
	if !h.valid() || c.hands[h].state == HandGrabbing {
		return
	}
	if c.hands[h].state == HandAiming {
		c.stopAiming(h)
	}
	if !c.geom.OverlapSphere(c.handWorld(h), c.climb.GrabRadius, geometry.LayerClimbable) {
		return
	}
	if c.jump.Cancel() {
		c.log.Debug("jump cancelled by grab", "hand", h)
	}

	c.hands[h] = handSlot{state: HandGrabbing, lastOffset: c.input.Hands[h].Position}
	c.body.SetVelocity(mgl64.Vec3{})
	c.syncGravity()
	c.log.Debug("grab", "hand", h)
}

// GrabReleased lets go with h. Releasing a hand that isn't grabbing does
// nothing.
func (c *Controller) GrabReleased(h Hand) {
	if !h.valid() || c.hands[h].state != HandGrabbing {
		return
	}
	c.hands[h].state = HandIdle
	c.syncGravity()
	c.log.Debug("release", "hand", h)
}

// AimPressed starts previewing a jump from h unless h is grabbing.
func (c *Controller) AimPressed(h Hand) {
	if !h.valid() || c.hands[h].state != HandIdle {
		return
	}
	c.hands[h].state = HandAiming
	c.predictors[h].Activate(true)
	c.log.Debug("aim", "hand", h)
}

// AimReleased is the jump trigger. A jump starts only when h was aiming at a
// landing point and the body is grounded or holding on.
func (c *Controller) AimReleased(h Hand) {
	if !h.valid() {
		return
	}
	if c.jump.Active() || (!c.anyGrabbing() && !c.grounded) {
		c.stopAiming(h)
		return
	}
	if c.hands[h].state != HandAiming {
		return
	}

	path, res := c.predictors[h].Snapshot()
	if !res.HasCollision {
		c.stopAiming(h)
		return
	}
	if err := c.jump.Launch(path, res.EndIndex, res.EndPoint); err != nil {
		if !errors.Is(err, ErrNoLanding) {
			c.log.Warn("launch rejected", "hand", h, "err", err)
		}
		c.stopAiming(h)
		return
	}
	c.DropAll()
	c.stopAiming(h)
	c.log.Debug("jump", "hand", h, "end_index", res.EndIndex, "end_point", res.EndPoint)
}

// DropAll releases both grabs. Gravity stays off while a jump is active.
func (c *Controller) DropAll() {
	for h := range c.hands {
		if c.hands[h].state == HandGrabbing {
			c.hands[h].state = HandIdle
		}
	}
	c.syncGravity()
}

// FixedUpdate runs one simulation tick: grounded check, trajectory preview and
// either climbing or locomotion.
func (c *Controller) FixedUpdate(dt float64) {
	c.grounded = c.checkGrounded()

	for h := Left; h < HandCount; h++ {
		if c.hands[h].state == HandAiming {
			c.predictors[h].Tick(c.body.Position(), c.aimDirection(h))
		}
	}

	if c.jump.Active() {
		return
	}
	if c.anyGrabbing() {
		c.climbTick()
		return
	}
	c.locomotionTick(dt)
}

// Update advances jump playback by one frame.
func (c *Controller) Update(frameDt float64) {
	if c.jump.Update(frameDt) {
		c.log.Debug("landed", "position", c.body.Position())
	}
}

func (c *Controller) State() ControllerState {
	s := ControllerState{Jumping: c.jump.Active(), Grounded: c.grounded}
	for h := range c.hands {
		s.Hands[h] = c.hands[h].state
	}
	return s
}

func (c *Controller) Grounded() bool {
	return c.grounded
}

// Reset returns the controller and body to a fresh spawn.
func (c *Controller) Reset(position mgl64.Vec3, rotation mgl64.Quat) {
	c.jump.Cancel()
	for h := Left; h < HandCount; h++ {
		c.hands[h] = handSlot{}
		c.predictors[h].Activate(false)
	}
	c.input = InputFrame{}
	c.grounded = false
	c.body.SetPosition(position)
	c.body.SetRotation(rotation)
	c.body.SetVelocity(mgl64.Vec3{})
	c.body.SetColliderEnabled(true)
	c.syncGravity()
}

func (c *Controller) stopAiming(h Hand) {
	if c.hands[h].state != HandAiming {
		return
	}
	c.hands[h].state = HandIdle
	c.predictors[h].Activate(false)
}

func (c *Controller) anyGrabbing() bool {
	for _, s := range c.hands {
		if s.state == HandGrabbing {
			return true
		}
	}
	return false
}

// syncGravity enforces gravity off iff a hand grabs or a jump is active, and
// only touches the body when that changes.
func (c *Controller) syncGravity() {
	want := !c.anyGrabbing() && !c.jump.Active()
	if c.body.UseGravity() != want {
		c.body.SetUseGravity(want)
	}
}

func (c *Controller) handWorld(h Hand) mgl64.Vec3 {
	return c.body.Position().Add(c.body.Rotation().Rotate(c.input.Hands[h].Position))
}

func (c *Controller) aimDirection(h Hand) mgl64.Vec3 {
	local := c.input.Hands[h].Forward
	if local.LenSqr() == 0 {
		return gamemath.ForwardOf(c.body.Rotation())
	}
	return c.body.Rotation().Rotate(local).Normalize()
}

func (c *Controller) checkGrounded() bool {
	_, height := c.body.Capsule()
	reach := height/2 + c.groundSkin
	_, ok := c.geom.Raycast(c.body.Position(), mgl64.Vec3{0, -1, 0}, reach, geometry.LayerSolid)
	return ok
}

// climbTick drives the body opposite to the grabbing hands' motion since the
// previous tick.
func (c *Controller) climbTick() {
	rot := c.body.Rotation()
	var velocity mgl64.Vec3
	for h := Left; h < HandCount; h++ {
		slot := &c.hands[h]
		if slot.state != HandGrabbing {
			continue
		}
		current := c.input.Hands[h].Position
		velocity = velocity.Add(rot.Rotate(slot.lastOffset.Sub(current)))
		slot.lastOffset = current
	}
	c.body.SetVelocity(velocity.Mul(c.climb.ClimbSpeed))
}

func (c *Controller) locomotionTick(dt float64) {
	turn := deadzone(c.input.Turn, c.loco.Deadzone).X()
	if turn != 0 {
		c.body.SetRotation(gamemath.Turn(c.body.Rotation(), turn*mgl64.DegToRad(c.loco.TurnSpeed)*dt))
	}

	move := deadzone(c.input.Move, c.loco.Deadzone)
	if move.Len() > 1 {
		move = move.Normalize()
	}
	rot := c.body.Rotation()
	dir := gamemath.Horizontal(gamemath.ForwardOf(rot)).Mul(move.Y()).
		Add(gamemath.Horizontal(gamemath.RightOf(rot)).Mul(move.X()))
	desired := dir.Mul(c.loco.MaxSpeed)

	accel := gamemath.Acceleration(c.loco.MaxSpeed, c.loco.TimeToAccelerate)
	c.body.SetVelocity(gamemath.AccelerateHorizontal(c.body.Velocity(), desired, accel, dt))
}

func deadzone(v mgl64.Vec2, dz float64) mgl64.Vec2 {
	if v.Len() < dz {
		return mgl64.Vec2{}
	}
	return v
}
