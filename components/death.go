package components

import "github.com/yohamta/donburi"

// DeathData marks a player waiting for the scene to reload.
// Timer counts down each frame; the scene resets when it reaches 0.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
