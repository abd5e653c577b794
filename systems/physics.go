package systems

import (
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every player body against the level, then advances
// jump playback by one frame.
func UpdatePhysics(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	dt := tickSeconds()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the death delay
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		player.Body.Integrate(dt, cfg.Physics.Gravity, space.Space)
		player.Controller.Update(dt)
	})
}
