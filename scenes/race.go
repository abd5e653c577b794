package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/components"
	"github.com/spidergame/spider/systems"
	"github.com/spidergame/spider/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RaceScene is one attempt at a level: the player, the drone and the clock.
type RaceScene struct {
	ecs       *ecs.ECS
	levelName string
	logger    *slog.Logger
	once      sync.Once
}

func NewRaceScene(levelName string, logger *slog.Logger) *RaceScene {
	if logger == nil {
		logger = slog.Default()
	}
	return &RaceScene{levelName: levelName, logger: logger}
}

func (rs *RaceScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

// Reset is called by the player's controller on death. The level reloads
// after a short delay.
func (rs *RaceScene) Reset() {
	systems.KillPlayer(rs.ecs)
}

func (rs *RaceScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateRace)

	// Player systems pause while the player waits to respawn
	ecs.AddSystem(systems.WhileAlive(systems.UpdatePlayer))
	ecs.AddSystem(systems.WhileAlive(systems.UpdatePhysics))
	ecs.AddSystem(systems.WhileAlive(systems.UpdateZones))

	ecs.AddSystem(systems.UpdateDrone)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawDrone)
	ecs.AddRenderer(archetypes.Default, systems.DrawTrajectories)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)

	rs.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(rs.ecs, rs.levelName)
	levelData := components.Level.Get(level).CurrentLevel

	spaceEntry := factory.CreateSpace(rs.ecs, levelData)
	space := components.Space.Get(spaceEntry)

	droneEntry := factory.CreateDrone(rs.ecs, levelData.Drone)
	raceEntry := factory.CreateRace(rs.ecs, systems.LoadBestTime(levelData.Name))

	factory.CreatePlayer(rs.ecs, levelData.Player, factory.PlayerDeps{
		Space:  space.Space,
		Scene:  rs,
		Drone:  components.Drone.Get(droneEntry).Drone,
		Timer:  components.Race.Get(raceEntry).Timer,
		Logger: rs.logger.With("level", levelData.Name),
	})

	factory.CreateCamera(rs.ecs, levelData.Player.Position)

	rs.logger.Info("race scene ready",
		"level", levelData.Name,
		"boxes", len(space.Boxes()),
		"best", components.Race.Get(raceEntry).Best,
	)
}
