package components

import (
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/shared/leveldata"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Body       *core.RigidBody
	Controller *core.Controller
	Views      [core.HandCount]*TrajectoryViewData
	Spawn      leveldata.Spawn
}

var Player = donburi.NewComponentType[PlayerData]()
