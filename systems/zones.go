package systems

import (
	"github.com/spidergame/spider/components"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fallMargin is how far below the lowest box a body may fall before it
// counts as a death.
const fallMargin = 10.0

// UpdateZones checks the player's body against death and goal volumes.
func UpdateZones(ecs *ecs.ECS) {
	space := getSpace(ecs)
	race := getRace(ecs)
	if space == nil || race == nil {
		return
	}
	floor := lowestPoint(space.Space) - fallMargin

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		min, max := player.Body.Bounds()

		if len(space.Query(min, max, geometry.LayerDeath)) > 0 || max.Y() < floor {
			player.Controller.EnterZone(core.ZoneDeath)
			return
		}

		if race.Finished {
			return
		}
		if len(space.Query(min, max, geometry.LayerGoal)) > 0 {
			finishRace(ecs, race, player.Controller.EnterZone(core.ZoneGoal))
		}
	})
}

func finishRace(ecs *ecs.ECS, race *components.RaceData, outcome core.Outcome) {
	race.Finished = true
	race.Outcome = outcome
	if outcome != core.OutcomeWin {
		return
	}

	elapsed := race.Timer.Elapsed()
	if race.Best == 0 || elapsed < race.Best {
		race.Best = elapsed
		race.NewBest = true
	}

	// Every win is persisted; the store keeps the fastest time itself.
	level := getLevel(ecs)
	if level == nil || level.CurrentLevel == nil {
		return
	}
	if err := SaveBestTime(level.CurrentLevel.Name, elapsed); err != nil {
		logger.Warn("could not save best time", "level", level.CurrentLevel.Name, "err", err)
	}
}

func lowestPoint(space *geometry.Space) float64 {
	boxes := space.Boxes()
	if len(boxes) == 0 {
		return 0
	}
	low := boxes[0].Min.Y()
	for _, b := range boxes[1:] {
		if b.Min.Y() < low {
			low = b.Min.Y()
		}
	}
	return low
}
