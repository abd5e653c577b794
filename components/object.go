package components

import (
	"github.com/spidergame/spider/shared/geometry"
	"github.com/yohamta/donburi"
)

// ObjectData is one static level box.
type ObjectData struct {
	*geometry.Box
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the level's spatial index.
type SpaceData struct {
	*geometry.Space
}

var Space = donburi.NewComponentType[SpaceData]()
