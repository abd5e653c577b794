package systems

import (
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/yohamta/donburi/ecs"
)

const cameraSmoothing = 0.15

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	_, player, ok := getPlayer(e)
	if !ok {
		return
	}
	pos := player.Body.Position()

	// Side view: screen x follows world z, screen y follows world y.
	targetX := pos.Z()
	targetY := pos.Y()

	if level := getLevel(e); level != nil && level.CurrentLevel != nil {
		halfWidth := float64(cfg.C.Width) / 2 / cfg.UI.PixelsPerUnit
		minX := level.CurrentLevel.Min.Y() + halfWidth
		maxX := level.CurrentLevel.Max.Y() - halfWidth
		if minX < maxX {
			targetX = max(minX, min(maxX, targetX))
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * cameraSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cameraSmoothing
}
