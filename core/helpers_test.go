package core

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/config"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBody struct {
	pos, vel mgl64.Vec3
	rot      mgl64.Quat
	gravity  bool
	collider bool

	gravityOn, gravityOff   int
	colliderOn, colliderOff int
}

func newFakeBody(pos mgl64.Vec3) *fakeBody {
	return &fakeBody{pos: pos, rot: mgl64.QuatIdent(), gravity: true, collider: true}
}

func (b *fakeBody) Position() mgl64.Vec3        { return b.pos }
func (b *fakeBody) SetPosition(p mgl64.Vec3)    { b.pos = p }
func (b *fakeBody) Rotation() mgl64.Quat        { return b.rot }
func (b *fakeBody) SetRotation(q mgl64.Quat)    { b.rot = q }
func (b *fakeBody) Velocity() mgl64.Vec3        { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3)    { b.vel = v }
func (b *fakeBody) UseGravity() bool            { return b.gravity }
func (b *fakeBody) ColliderEnabled() bool       { return b.collider }
func (b *fakeBody) Capsule() (float64, float64) { return 0.5, 2 }

func (b *fakeBody) SetUseGravity(enabled bool) {
	if enabled {
		b.gravityOn++
	} else {
		b.gravityOff++
	}
	b.gravity = enabled
}

func (b *fakeBody) SetColliderEnabled(enabled bool) {
	if enabled {
		b.colliderOn++
	} else {
		b.colliderOff++
	}
	b.collider = enabled
}

type fakeGeometry struct {
	overlap bool
	raycast func(origin, dir mgl64.Vec3, maxDist float64) (geometry.Hit, bool)
	rays    int
}

func (g *fakeGeometry) OverlapSphere(mgl64.Vec3, float64, geometry.Layer) bool {
	return g.overlap
}

func (g *fakeGeometry) Raycast(origin, dir mgl64.Vec3, maxDist float64, _ geometry.Layer) (geometry.Hit, bool) {
	g.rays++
	if g.raycast == nil {
		return geometry.Hit{}, false
	}
	return g.raycast(origin, dir, maxDist)
}

type recordingView struct {
	line          []mgl64.Vec3
	lineVisible   bool
	marker        mgl64.Vec3
	markerVisible bool
}

func (v *recordingView) ShowLine(points []mgl64.Vec3) {
	v.line = append(v.line[:0], points...)
	v.lineVisible = true
}
func (v *recordingView) HideLine()                { v.lineVisible = false }
func (v *recordingView) ShowMarker(at mgl64.Vec3) { v.marker, v.markerVisible = at, true }
func (v *recordingView) HideMarker()              { v.markerVisible = false }

type recordingScene struct{ resets int }

func (s *recordingScene) Reset() { s.resets++ }

func testTrajectoryConfig() config.TrajectoryConfig {
	return config.TrajectoryConfig{
		SegmentCount:      50,
		CurveLength:       3.5,
		FixedTickDuration: 1.0 / 50.0,
		LaunchSpeed:       10,
		GravityMultiplier: 1,
	}
}

func testJumpConfig() config.JumpConfig {
	return config.JumpConfig{PlaybackRate: 25, CapsuleRadius: 0.5, GrabPointHeight: 0.6}
}

var testGravity = mgl64.Vec3{0, -9.8, 0}

// testSpace is a floor with its top at y=0 and a climbable wall whose near
// face is at z=5.
func testSpace() *geometry.Space {
	s := geometry.NewSpace(mgl64.Vec2{-20, -20}, mgl64.Vec2{20, 20}, 2)
	s.Add(geometry.Box{Name: "floor", Min: mgl64.Vec3{-20, -1, -20}, Max: mgl64.Vec3{20, 0, 20}, Layer: geometry.LayerGround})
	s.Add(geometry.Box{Name: "wall", Min: mgl64.Vec3{-5, 0, 5}, Max: mgl64.Vec3{5, 10, 6}, Layer: geometry.LayerClimbable})
	return s
}

type testRig struct {
	body  *fakeBody
	views [HandCount]*recordingView
	scene *recordingScene
	jump  *Executor
	drone *Drone
	timer *RaceTimer
	ctrl  *Controller
}

func newTestRig(t *testing.T, pos mgl64.Vec3) *testRig {
	t.Helper()
	space := testSpace()
	r := &testRig{
		body:  newFakeBody(pos),
		scene: &recordingScene{},
		drone: NewDrone(mgl64.Vec3{0, 5, -10}, mgl64.Vec3{0, 5, 10}, 10),
		timer: &RaceTimer{},
	}
	var predictors [HandCount]*Predictor
	for h := Left; h < HandCount; h++ {
		r.views[h] = &recordingView{}
		predictors[h] = NewPredictor(space, r.views[h], testGravity, testTrajectoryConfig())
	}
	r.jump = NewExecutor(r.body, predictors[Left].Capacity(), testJumpConfig())
	r.ctrl = NewController(ControllerOptions{
		Body:       r.body,
		Geometry:   space,
		Scene:      r.scene,
		Jump:       r.jump,
		Predictors: predictors,
		Drone:      r.drone,
		Timer:      r.timer,
		Climb:      config.ClimbConfig{GrabRadius: 1, ClimbSpeed: 5},
		Locomotion: config.LocomotionConfig{MaxSpeed: 4, TimeToAccelerate: 0.25, TurnSpeed: 90, Deadzone: 0.2},
		GroundSkin: 0.1,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r
}

// handsAt places both hands at the same local offset.
func (r *testRig) handsAt(offset mgl64.Vec3) {
	var in InputFrame
	for h := range in.Hands {
		in.Hands[h].Position = offset
	}
	r.ctrl.Sample(in)
}

func (r *testRig) requireGravityInvariant(t *testing.T) {
	t.Helper()
	s := r.ctrl.State()
	grabbing := s.Hands[Left] == HandGrabbing || s.Hands[Right] == HandGrabbing
	require.Equal(t, !(grabbing || s.Jumping), r.body.gravity, "gravity must be off iff grabbing or jumping")
	require.Equal(t, !s.Jumping, r.body.collider, "collider must be off iff jumping")
}

// assertNear compares vectors component-wise with an absolute tolerance.
func assertNear(t *testing.T, want, got mgl64.Vec3, eps float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], eps, msgAndArgs...)
}
