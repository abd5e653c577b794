package assets

import (
	"embed"

	"github.com/spidergame/spider/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels loads every level under levels/ keyed by name, plus the
// sorted names. A broken level file panics.
func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		panic(err)
	}
	return levels, names
}
