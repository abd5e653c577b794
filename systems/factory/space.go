package factory

import (
	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/spidergame/spider/shared/leveldata"
	"github.com/spidergame/spider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace indexes the level's boxes and spawns one entity per box so the
// renderer can walk them.
func CreateSpace(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := level.Space(cfg.Physics.CellSize)
	components.Space.Set(space, &components.SpaceData{Space: spaceData})

	for _, box := range spaceData.Boxes() {
		CreateBox(ecs, box)
	}
	return space
}

// CreateBox spawns a box entity tagged by its surface layer.
func CreateBox(ecs *ecs.ECS, box *geometry.Box) *donburi.Entry {
	var e *donburi.Entry
	switch {
	case box.Layer.Has(geometry.LayerClimbable):
		e = archetypes.Box.Spawn(ecs, tags.Climbable)
	case box.Layer.Has(geometry.LayerGround):
		e = archetypes.Box.Spawn(ecs, tags.Ground)
	case box.Layer.Has(geometry.LayerGoal):
		e = archetypes.Box.Spawn(ecs, tags.Goal)
	case box.Layer.Has(geometry.LayerDeath):
		e = archetypes.Box.Spawn(ecs, tags.DeathZone)
	default:
		e = archetypes.Box.Spawn(ecs)
	}
	components.Object.SetValue(e, components.ObjectData{Box: box})
	return e
}
