package components

import (
	"github.com/spidergame/spider/core"
	"github.com/yohamta/donburi"
)

type DroneData struct {
	*core.Drone
}

var Drone = donburi.NewComponentType[DroneData]()
