package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centers the side view on focus.
func CreateCamera(ecs *ecs.ECS, focus mgl64.Vec3) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(focus.Z(), focus.Y()),
	})
}
