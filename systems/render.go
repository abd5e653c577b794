package systems

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/spidergame/spider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var backgroundColor = color.RGBA{R: 20, G: 24, B: 32, A: 255}

// sideView projects world positions onto the screen looking along -x:
// world z runs right, world y runs up.
type sideView struct {
	cam           mgl64.Vec2
	halfW, halfH  float64
	pixelsPerUnit float64
}

func newSideView(e *ecs.ECS, screen *ebiten.Image) (sideView, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return sideView{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return sideView{
		cam:           mgl64.Vec2{camera.Position.X, camera.Position.Y},
		halfW:         float64(screen.Bounds().Dx()) / 2,
		halfH:         float64(screen.Bounds().Dy()) / 2,
		pixelsPerUnit: cfg.UI.PixelsPerUnit,
	}, true
}

func (v sideView) point(p mgl64.Vec3) (float32, float32) {
	x := (p.Z()-v.cam.X())*v.pixelsPerUnit + v.halfW
	y := v.halfH - (p.Y()-v.cam.Y())*v.pixelsPerUnit
	return float32(x), float32(y)
}

func (v sideView) length(d float64) float32 {
	return float32(d * v.pixelsPerUnit)
}

// visible culls boxes that are entirely off-screen.
func (v sideView) visible(min, max mgl64.Vec3) bool {
	x0, y1 := v.point(min)
	x1, y0 := v.point(max)
	return x1 >= 0 && y1 >= 0 && float64(x0) <= v.halfW*2 && float64(y0) <= v.halfH*2
}

// DrawLevel clears the screen and draws every box in the level.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	view, ok := newSideView(e, screen)
	if !ok {
		return
	}
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Box
		if !view.visible(b.Min, b.Max) {
			return
		}
		x, y := view.point(mgl64.Vec3{0, b.Max.Y(), b.Min.Z()})
		w := view.length(b.Size().Z())
		h := view.length(b.Size().Y())
		c := boxColor(b.Layer)
		if entry.HasComponent(tags.Goal) || entry.HasComponent(tags.DeathZone) {
			vector.StrokeRect(screen, x, y, w, h, 2, c, false)
			return
		}
		vector.FillRect(screen, x, y, w, h, c, false)
	})
}

func boxColor(l geometry.Layer) color.RGBA {
	switch {
	case l.Has(geometry.LayerGoal):
		return cfg.UI.GoalColor
	case l.Has(geometry.LayerDeath):
		return cfg.UI.DeathColor
	case l.Has(geometry.LayerClimbable):
		return cfg.UI.ClimbColor
	default:
		return cfg.UI.BoxColor
	}
}

// DrawPlayer draws the body capsule as a rectangle plus a facing tick.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newSideView(e, screen)
	if !ok {
		return
	}
	entry, player, ok := getPlayer(e)
	if !ok {
		return
	}

	min, max := player.Body.Bounds()
	x, y := view.point(mgl64.Vec3{0, max.Y(), min.Z()})
	c := cfg.UI.PlayerColor
	if entry.HasComponent(components.Death) {
		c = cfg.UI.DeathColor
	}
	vector.FillRect(screen, x, y, view.length(max.Z()-min.Z()), view.length(max.Y()-min.Y()), c, false)

	pos := player.Body.Position()
	forward := gamemath.ForwardOf(player.Body.Rotation())
	x0, y0 := view.point(pos)
	x1, y1 := view.point(pos.Add(forward))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.White, false)
}

// DrawDrone draws the pacer and a faint line to where it is heading.
func DrawDrone(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newSideView(e, screen)
	if !ok {
		return
	}
	drone := getDrone(e)
	if drone == nil {
		return
	}

	x, y := view.point(drone.Position())
	if drone.Moving() {
		ex, ey := view.point(drone.End())
		vector.StrokeLine(screen, x, y, ex, ey, 1, cfg.Grey, false)
	}
	vector.DrawFilledCircle(screen, x, y, view.length(0.6), cfg.UI.DroneColor, true)
}

// DrawTrajectories draws each hand's jump preview and landing marker.
func DrawTrajectories(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newSideView(e, screen)
	if !ok {
		return
	}
	_, player, ok := getPlayer(e)
	if !ok {
		return
	}

	for _, tv := range player.Views {
		if tv.LineVisible {
			for i := 1; i < len(tv.Points); i++ {
				x0, y0 := view.point(tv.Points[i-1])
				x1, y1 := view.point(tv.Points[i])
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.UI.LineColor, true)
			}
		}
		if tv.MarkerVisible {
			x, y := view.point(tv.Marker)
			vector.StrokeCircle(screen, x, y, view.length(0.4), 2, cfg.UI.MarkerColor, true)
		}
	}
}
