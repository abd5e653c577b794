package systems

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

// useStore swaps in an in-memory store for the duration of the test.
func useStore(t *testing.T) memStore {
	t.Helper()
	m := memStore{}
	prev := store
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

type killScene struct{ ecs *ecs.ECS }

func (s killScene) Reset() { KillPlayer(s.ecs) }

type world struct {
	ecs    *ecs.ECS
	entry  *donburi.Entry
	player *components.PlayerData
	race   *components.RaceData
	drone  *core.Drone
	input  *components.InputData
}

func newWorld(t *testing.T) *world {
	t.Helper()
	cfg.Reset()

	e := ecs.NewECS(donburi.NewWorld())
	level := components.Level.Get(factory.CreateLevel(e, "tower")).CurrentLevel
	space := components.Space.Get(factory.CreateSpace(e, level))
	drone := components.Drone.Get(factory.CreateDrone(e, level.Drone)).Drone
	race := components.Race.Get(factory.CreateRace(e, 0))
	entry := factory.CreatePlayer(e, level.Player, factory.PlayerDeps{
		Space:  space.Space,
		Scene:  killScene{e},
		Drone:  drone,
		Timer:  race.Timer,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	factory.CreateCamera(e, level.Player.Position)

	input := getOrCreateInput(e)
	for h := range input.Hands {
		input.Hands[h] = components.HandRig{Offset: handRest[h], Pitch: defaultPitch}
	}

	return &world{
		ecs:    e,
		entry:  entry,
		player: components.Player.Get(entry),
		race:   race,
		drone:  drone,
		input:  input,
	}
}

// press sets a for one frame as a fresh edge.
func (w *world) press(a cfg.ActionID) {
	w.input.Previous = w.input.Current
	w.input.Current[a] = true
}

func (w *world) release(a cfg.ActionID) {
	w.input.Previous = w.input.Current
	w.input.Current[a] = false
}

func (w *world) place(pos mgl64.Vec3) {
	w.player.Controller.Reset(pos, mgl64.QuatIdent())
}

func TestGrabAtWallStartsClimbing(t *testing.T) {
	w := newWorld(t)
	w.place(mgl64.Vec3{8, 3, 19.3})

	w.press(cfg.ActionGrabLeft)
	UpdatePlayer(w.ecs)

	state := w.player.Controller.State()
	assert.Equal(t, core.HandGrabbing, state.Hands[core.Left])
	assert.False(t, w.player.Body.UseGravity())
	assert.Equal(t, components.StateClimbing, components.State.Get(w.entry).CurrentState)

	w.release(cfg.ActionGrabLeft)
	UpdatePlayer(w.ecs)

	assert.Equal(t, core.HandIdle, w.player.Controller.State().Hands[core.Left])
	assert.True(t, w.player.Body.UseGravity())
	assert.Equal(t, components.StateFree, components.State.Get(w.entry).CurrentState)
	assert.Equal(t, components.StateClimbing, components.State.Get(w.entry).PreviousState)
}

func TestGrabInOpenAirDoesNothing(t *testing.T) {
	w := newWorld(t)

	w.press(cfg.ActionGrabRight)
	UpdatePlayer(w.ecs)

	assert.Equal(t, core.HandIdle, w.player.Controller.State().Hands[core.Right])
	assert.True(t, w.player.Body.UseGravity())
}

func TestAimShowsPreview(t *testing.T) {
	w := newWorld(t)

	w.press(cfg.ActionAimRight)
	UpdatePlayer(w.ecs)

	assert.Equal(t, components.StateAiming, components.State.Get(w.entry).CurrentState)
	view := w.player.Views[core.Right]
	assert.True(t, view.LineVisible)
	assert.Len(t, view.Points, cfg.Trajectory.SegmentCount)
	assert.False(t, w.player.Views[core.Left].LineVisible)
}

func TestRelaxHandsSkipsGrabbingHands(t *testing.T) {
	input := &components.InputData{}
	input.Hands[core.Left].Offset = mgl64.Vec3{0, -1, 0}
	input.Hands[core.Right].Offset = mgl64.Vec3{0, -1, 0}

	var state core.ControllerState
	state.Hands[core.Left] = core.HandGrabbing
	relaxHands(input, state, 10)

	assert.Equal(t, mgl64.Vec3{0, -1, 0}, input.Hands[core.Left].Offset)
	assert.Equal(t, handRest[core.Right], input.Hands[core.Right].Offset)
}

func TestRelaxHandsWaitsForHandActions(t *testing.T) {
	input := &components.InputData{}
	input.Hands[core.Left].Offset = mgl64.Vec3{0, -1, 0}
	input.Current[cfg.ActionHandDown] = true

	relaxHands(input, core.ControllerState{}, 10)

	assert.Equal(t, mgl64.Vec3{0, -1, 0}, input.Hands[core.Left].Offset)
}

func TestClampReach(t *testing.T) {
	rest := mgl64.Vec3{1, 0, 0}

	assert.Equal(t, mgl64.Vec3{1, 0.5, 0}, clampReach(mgl64.Vec3{1, 0.5, 0}, rest, 1))
	got := clampReach(mgl64.Vec3{1, 3, 0}, rest, 1)
	assert.InDeltaSlice(t, []float64{1, 1, 0}, got[:], 1e-9)
}

func TestMoveStateOf(t *testing.T) {
	tests := []struct {
		name  string
		state core.ControllerState
		want  components.MoveState
	}{
		{"idle", core.ControllerState{}, components.StateFree},
		{"one hand grabbing", core.ControllerState{Hands: [core.HandCount]core.HandState{core.HandIdle, core.HandGrabbing}}, components.StateClimbing},
		{"aiming", core.ControllerState{Hands: [core.HandCount]core.HandState{core.HandAiming, core.HandIdle}}, components.StateAiming},
		{"jumping wins", core.ControllerState{Jumping: true, Hands: [core.HandCount]core.HandState{core.HandAiming, core.HandIdle}}, components.StateJumping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveStateOf(tt.state))
		})
	}
}

func TestPhysicsLandsPlayerOnFloor(t *testing.T) {
	w := newWorld(t)
	w.place(mgl64.Vec3{8, 3, 4})

	for range 120 {
		UpdatePhysics(w.ecs)
	}

	assert.InDelta(t, 1.0, w.player.Body.Position().Y(), 1e-6)
	assert.InDelta(t, 0.0, w.player.Body.Velocity().Y(), 1e-9)
}

func TestDeathZoneResetsAfterDelay(t *testing.T) {
	w := newWorld(t)
	for range 10 {
		UpdateDrone(w.ecs)
	}
	require.True(t, w.race.Timer.Started())

	w.place(mgl64.Vec3{8, -3.5, 33})
	UpdateZones(w.ecs)
	require.True(t, w.entry.HasComponent(components.Death))

	// A second death while waiting is ignored.
	UpdateZones(w.ecs)
	assert.Equal(t, cfg.Race.ResetDelayFrames, components.Death.Get(w.entry).Timer)

	for range cfg.Race.ResetDelayFrames {
		UpdateDeaths(w.ecs)
	}

	assert.False(t, w.entry.HasComponent(components.Death))
	assert.Equal(t, w.player.Spawn.Position, w.player.Body.Position())
	assert.False(t, w.race.Timer.Started())
	assert.True(t, w.drone.Moving())
}

func TestFallingOutOfTheLevelKills(t *testing.T) {
	w := newWorld(t)
	w.place(mgl64.Vec3{8, -30, 4})

	UpdateZones(w.ecs)

	assert.True(t, w.entry.HasComponent(components.Death))
}

func TestGoalBeforeDroneWinsAndSavesBest(t *testing.T) {
	m := useStore(t)
	w := newWorld(t)
	for range 60 {
		UpdateDrone(w.ecs)
	}

	w.place(mgl64.Vec3{8, 13, 61})
	UpdateZones(w.ecs)

	assert.True(t, w.race.Finished)
	assert.Equal(t, core.OutcomeWin, w.race.Outcome)
	assert.True(t, w.race.NewBest)
	assert.False(t, w.race.Timer.Active())
	assert.Contains(t, m, "best_tower")
	assert.Equal(t, w.race.Timer.Elapsed().Milliseconds(), LoadBestTime("tower").Milliseconds())
}

func TestEverySlowerWinIsCounted(t *testing.T) {
	useStore(t)
	w := newWorld(t)
	win := func(ticks int) {
		for range ticks {
			UpdateDrone(w.ecs)
		}
		w.place(mgl64.Vec3{8, 13, 61})
		UpdateZones(w.ecs)
		require.Equal(t, core.OutcomeWin, w.race.Outcome)
	}

	win(60)
	first := w.race.Best
	ResetRace(w.ecs)
	win(120)

	assert.False(t, w.race.NewBest)
	assert.Equal(t, first, w.race.Best)
	rec, err := LoadRecord("tower")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Wins)
	assert.Equal(t, first.Milliseconds(), rec.BestMillis)
}

func TestGoalAfterDroneLoses(t *testing.T) {
	m := useStore(t)
	w := newWorld(t)
	w.drone.FixedUpdate(1000)
	require.True(t, w.drone.Arrived())

	w.place(mgl64.Vec3{8, 13, 61})
	UpdateZones(w.ecs)

	assert.True(t, w.race.Finished)
	assert.Equal(t, core.OutcomeLose, w.race.Outcome)
	assert.Empty(t, m)
}

func TestGoalOnlyCountsOnce(t *testing.T) {
	useStore(t)
	w := newWorld(t)
	for range 60 {
		UpdateDrone(w.ecs)
	}
	w.place(mgl64.Vec3{8, 13, 61})
	UpdateZones(w.ecs)
	rec, err := LoadRecord("tower")
	require.NoError(t, err)

	UpdateZones(w.ecs)

	again, err := LoadRecord("tower")
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestResetRaceClearsResult(t *testing.T) {
	useStore(t)
	w := newWorld(t)
	for range 60 {
		UpdateDrone(w.ecs)
	}
	w.place(mgl64.Vec3{8, 13, 61})
	UpdateZones(w.ecs)
	require.True(t, w.race.Finished)

	ResetRace(w.ecs)

	assert.False(t, w.race.Finished)
	assert.False(t, w.race.NewBest)
	assert.Equal(t, core.OutcomeNone, w.race.Outcome)
	assert.Equal(t, w.player.Spawn.Position, w.player.Body.Position())
}

func TestSaveBestTimeKeepsFastest(t *testing.T) {
	useStore(t)

	require.NoError(t, SaveBestTime("tower", 90*time.Second))
	require.NoError(t, SaveBestTime("tower", 80*time.Second))
	require.NoError(t, SaveBestTime("tower", 100*time.Second))

	rec, err := LoadRecord("tower")
	require.NoError(t, err)
	assert.Equal(t, int64(80000), rec.BestMillis)
	assert.Equal(t, 3, rec.Wins)
	assert.Equal(t, 80*time.Second, LoadBestTime("tower"))
	assert.Zero(t, LoadBestTime("other"))
}

func TestPersistenceWithoutStore(t *testing.T) {
	prev := store
	store = nil
	t.Cleanup(func() { store = prev })

	assert.NoError(t, SaveBestTime("tower", time.Second))
	assert.Zero(t, LoadBestTime("tower"))
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := newWorld(t)
	w.place(mgl64.Vec3{8, 6, 40})
	camEntry, ok := components.Camera.First(w.ecs.World)
	require.True(t, ok)
	cam := components.Camera.Get(camEntry)
	before := cam.Position

	UpdateCamera(w.ecs)

	assert.Greater(t, cam.Position.X, before.X)
	assert.Greater(t, cam.Position.Y, before.Y)
}
