package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/fonts"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 26
)

// DrawHUD renders the race clock, best time and the result banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	race := getRace(ecs)
	if race == nil {
		return
	}
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	text.Draw(screen, race.Timer.Text(), face, hudMargin, hudMargin+hudLineHeight, cfg.White)
	if race.Best > 0 {
		best := "best " + gamemath.FormatClock(race.Best)
		text.Draw(screen, best, small, hudMargin, hudMargin+hudLineHeight*2, cfg.Grey)
	}

	if entry, player, ok := getPlayer(ecs); ok {
		state := components.State.Get(entry)
		text.Draw(screen, state.CurrentState.String(), small, hudMargin, screen.Bounds().Dy()-hudMargin, cfg.White)
		drawHandIndicators(screen, player.Controller.State())
	}

	if race.Finished {
		drawBanner(screen, race)
	}
}

// drawHandIndicators shows one square per hand in the top-right corner.
func drawHandIndicators(screen *ebiten.Image, state core.ControllerState) {
	const size = 16
	right := float32(screen.Bounds().Dx() - hudMargin)
	for h := core.Left; h < core.HandCount; h++ {
		x := right - float32(core.HandCount-h)*(size+4)
		vector.FillRect(screen, x, hudMargin, size, size, handColor(state.Hands[h]), false)
	}
}

func handColor(s core.HandState) color.RGBA {
	switch s {
	case core.HandGrabbing:
		return cfg.UI.ClimbColor
	case core.HandAiming:
		return cfg.UI.MarkerColor
	default:
		return cfg.Grey
	}
}

func drawBanner(screen *ebiten.Image, race *components.RaceData) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(h/2-60), float32(w), 120, cfg.BlackOverlay, false)

	msg, c := "YOU WIN", cfg.Green
	if race.Outcome == core.OutcomeLose {
		msg, c = "THE DRONE WON", cfg.Red
	}
	banner := fonts.Banner.Get()
	bounds := text.BoundString(banner, msg)
	text.Draw(screen, msg, banner, (w-bounds.Dx())/2, h/2, c)

	sub := fmt.Sprintf("time %s", race.Timer.Text())
	if race.NewBest {
		sub += "  new best!"
	}
	small := fonts.HUDSmall.Get()
	bounds = text.BoundString(small, sub)
	text.Draw(screen, sub, small, (w-bounds.Dx())/2, h/2+40, cfg.White)
}
