package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Drone     = donburi.NewTag().SetName("Drone")
	Climbable = donburi.NewTag().SetName("Climbable")
	Ground    = donburi.NewTag().SetName("Ground")
	Goal      = donburi.NewTag().SetName("Goal")
	DeathZone = donburi.NewTag().SetName("DeathZone")
)
