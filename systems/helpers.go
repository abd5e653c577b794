package systems

import (
	"log/slog"

	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = slog.Default()

// SetLogger replaces the logger used by every system.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// tickSeconds is the fixed simulation step; ebiten runs Update at TickRate.
func tickSeconds() float64 {
	return 1 / float64(cfg.Physics.TickRate)
}

// WhileAlive skips system while the player is waiting to respawn.
func WhileAlive(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		player, ok := tags.Player.First(e.World)
		if !ok || player.HasComponent(components.Death) {
			return
		}
		system(e)
	}
}

func getPlayer(e *ecs.ECS) (*donburi.Entry, *components.PlayerData, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Player.Get(entry), true
}

func getSpace(e *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

func getRace(e *ecs.ECS) *components.RaceData {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return nil
	}
	return components.Race.Get(entry)
}

func getDrone(e *ecs.ECS) *components.DroneData {
	entry, ok := components.Drone.First(e.World)
	if !ok {
		return nil
	}
	return components.Drone.Get(entry)
}

func getLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
