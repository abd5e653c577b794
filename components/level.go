package components

import (
	"github.com/spidergame/spider/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Names        []string
	Levels       map[string]*leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
