package archetypes

import (
	"github.com/spidergame/spider/components"
	"github.com/spidergame/spider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.State,
	)
	Drone = newArchetype(
		tags.Drone,
		components.Drone,
	)
	Box = newArchetype(
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Race = newArchetype(
		components.Race,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
