package systems

import (
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KillPlayer starts the respawn delay. It does nothing if the player is
// already dying.
func KillPlayer(ecs *ecs.ECS) {
	entry, _, ok := getPlayer(ecs)
	if !ok || entry.HasComponent(components.Death) {
		return
	}
	entry.AddComponent(components.Death)
	components.Death.SetValue(entry, components.DeathData{Timer: cfg.Race.ResetDelayFrames})
}

func UpdateDeaths(ecs *ecs.ECS) {
	var expired bool
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			expired = true
		}
	})
	// Reset outside Each: it removes the Death component.
	if expired {
		ResetRace(ecs)
	}
}
