package systems

import (
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrone flies the pacer and lets the race timer observe it.
func UpdateDrone(ecs *ecs.ECS) {
	drone := getDrone(ecs)
	race := getRace(ecs)
	if drone == nil || race == nil {
		return
	}
	dt := tickSeconds()

	wasArrived := drone.Arrived()
	drone.FixedUpdate(dt)
	race.Timer.FixedUpdate(dt, drone.Moving())

	if drone.Arrived() && !wasArrived {
		logger.Info("drone reached the goal", "time", race.Timer.Text())
	}
}

// UpdateRace handles the race-level actions: restart and debug toggle.
func UpdateRace(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowHands = !cfg.Debug.ShowHands
	}
	if input.Action(cfg.ActionRestart).JustPressed {
		logger.Info("race restarted")
		ResetRace(ecs)
	}
}

// ResetRace puts the player back on the spawn and restarts the drone and
// timer.
func ResetRace(ecs *ecs.ECS) {
	if entry, player, ok := getPlayer(ecs); ok {
		if entry.HasComponent(components.Death) {
			entry.RemoveComponent(components.Death)
		}
		player.Controller.Reset(player.Spawn.Position, factory.SpawnRotation(player.Spawn))
		for _, v := range player.Views {
			v.HideLine()
			v.HideMarker()
		}
	}

	if drone := getDrone(ecs); drone != nil {
		drone.Reset()
		if cfg.Drone.AutoActivate {
			drone.Activate()
		}
	}

	if race := getRace(ecs); race != nil {
		race.Timer.Reset()
		race.Outcome = core.OutcomeNone
		race.Finished = false
		race.NewBest = false
	}
}
