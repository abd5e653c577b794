package factory

import (
	"github.com/samber/lo"
	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/assets"
	"github.com/spidergame/spider/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads every bundled level and selects the one called name,
// falling back to the first level alphabetically.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	levels, names := loader.MustLoadLevels()

	if len(names) == 0 {
		panic("No levels found in assets/levels directory")
	}

	levelIndex := lo.IndexOf(names, name)
	if levelIndex < 0 {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		Names:        names,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[names[levelIndex]],
	})

	return level
}
