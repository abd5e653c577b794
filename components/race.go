package components

import (
	"time"

	"github.com/spidergame/spider/core"
	"github.com/yohamta/donburi"
)

// RaceData tracks the race against the drone for the current level.
type RaceData struct {
	Timer    *core.RaceTimer
	Outcome  core.Outcome
	Finished bool
	Best     time.Duration // zero when no race has been won on this level
	NewBest  bool
}

var Race = donburi.NewComponentType[RaceData]()
