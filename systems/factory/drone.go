package factory

import (
	"time"

	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateDrone(ecs *ecs.ECS, route leveldata.DroneRoute) *donburi.Entry {
	drone := archetypes.Drone.Spawn(ecs)

	timeToReach := route.TimeToReach
	if timeToReach <= 0 {
		timeToReach = cfg.Drone.TimeToReachEnd
	}
	d := core.NewDrone(route.Start, route.End, timeToReach)
	if cfg.Drone.AutoActivate {
		d.Activate()
	}
	components.Drone.SetValue(drone, components.DroneData{Drone: d})

	return drone
}

// CreateRace starts a race record; best is the stored best time, zero if none.
func CreateRace(ecs *ecs.ECS, best time.Duration) *donburi.Entry {
	race := archetypes.Race.Spawn(ecs)
	components.Race.SetValue(race, components.RaceData{
		Timer: &core.RaceTimer{},
		Best:  best,
	})
	return race
}
