package main

import (
	"flag"
	"image"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spidergame/spider/config"
	"github.com/spidergame/spider/fonts"
	"github.com/spidergame/spider/scenes"
	"github.com/spidergame/spider/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level string, logger *slog.Logger) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewRaceScene(level, logger),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	level := flag.String("level", "", "level to race, defaults to the configured level")
	flag.Parse()

	if _, err := config.Load(*configPath); err != nil {
		slog.Error("could not load config", "path", *configPath, "err", err)
		os.Exit(1)
	}

	lvl, err := config.ParseLogLevel(config.C.LogLevel)
	if err != nil {
		slog.Error("invalid log level", "level", config.C.LogLevel, "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	systems.SetLogger(logger)

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		logger.Error("could not load fonts", "err", err)
		os.Exit(1)
	}

	// Best times are optional; the race runs without them.
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("persistence disabled", "err", err)
	}

	levelName := config.Race.Level
	if *level != "" {
		levelName = *level
	}

	ebiten.SetTPS(config.Physics.TickRate)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Spider Climb")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(levelName, logger)); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
