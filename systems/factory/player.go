package factory

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/spidergame/spider/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerDeps are the scene-owned collaborators the player's controller needs.
type PlayerDeps struct {
	Space  *geometry.Space
	Scene  core.Scene
	Drone  *core.Drone
	Timer  *core.RaceTimer
	Logger *slog.Logger
}

func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Spawn, deps PlayerDeps) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := core.NewRigidBody(
		spawn.Position,
		SpawnRotation(spawn),
		cfg.Physics.CapsuleRadius,
		cfg.Physics.CapsuleHeight,
	)

	var predictors [core.HandCount]*core.Predictor
	var views [core.HandCount]*components.TrajectoryViewData
	for h := core.Left; h < core.HandCount; h++ {
		views[h] = &components.TrajectoryViewData{}
		predictors[h] = core.NewPredictor(deps.Space, views[h], cfg.Physics.Gravity, cfg.Trajectory)
	}
	jump := core.NewExecutor(body, predictors[core.Left].Capacity(), cfg.Jump)

	controller := core.NewController(core.ControllerOptions{
		Body:       body,
		Geometry:   deps.Space,
		Scene:      deps.Scene,
		Jump:       jump,
		Predictors: predictors,
		Drone:      deps.Drone,
		Timer:      deps.Timer,
		Climb:      cfg.Climb,
		Locomotion: cfg.Locomotion,
		GroundSkin: cfg.Physics.GroundCheckSkin,
		Logger:     deps.Logger,
	})

	components.Player.SetValue(player, components.PlayerData{
		Body:       body,
		Controller: controller,
		Views:      views,
		Spawn:      spawn,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  components.StateFree,
		PreviousState: components.StateFree,
	})

	return player
}

// SpawnRotation converts a spawn's yaw in degrees to a rotation.
func SpawnRotation(spawn leveldata.Spawn) mgl64.Quat {
	return gamemath.YawRotation(mgl64.DegToRad(spawn.Yaw))
}
