package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHands {
		return
	}
	view, ok := newSideView(ecs, screen)
	if !ok {
		return
	}
	_, player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	state := player.Controller.State()

	pos := player.Body.Position()
	rot := player.Body.Rotation()
	for h := core.Left; h < core.HandCount; h++ {
		hand := pos.Add(rot.Rotate(input.Hands[h].Offset))
		x, y := view.point(hand)
		vector.StrokeCircle(screen, x, y, view.length(cfg.Climb.GrabRadius), 1, handColor(state.Hands[h]), true)
		vector.DrawFilledCircle(screen, x, y, 3, handColor(state.Hands[h]), true)
	}

	vel := player.Body.Velocity()
	msg := fmt.Sprintf("TPS %0.1f\npos %s\nvel %s\ngrounded %v gravity %v collider %v\njump %v",
		ebiten.ActualTPS(),
		formatVec(pos), formatVec(vel),
		state.Grounded, player.Body.UseGravity(), player.Body.ColliderEnabled(),
		state.Jumping,
	)
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, hudMargin+hudLineHeight*3)
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
