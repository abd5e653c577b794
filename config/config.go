package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// TrajectoryConfig contains jump preview configuration values
type TrajectoryConfig struct {
	SegmentCount      int     // Samples along the previewed arc (>= 2)
	CurveLength       float64 // Stretches the arc in time per sample
	FixedTickDuration float64 // Time step the preview is measured in (seconds)
	LaunchSpeed       float64 // Initial jump speed
	GravityMultiplier float64 // Scales world gravity for the arc
}

// JumpConfig contains jump playback configuration values
type JumpConfig struct {
	PlaybackRate    float64 // Segments played per second of frame time
	CapsuleRadius   float64 // Pulls the landing pose back from the wall
	GrabPointHeight float64 // Hands sit this far above the body center
}

// ClimbConfig contains climbing configuration values
type ClimbConfig struct {
	GrabRadius float64 // Max distance from hand to climbable geometry
	ClimbSpeed float64 // Scales hand motion into body velocity
}

// LocomotionConfig contains free movement configuration values
type LocomotionConfig struct {
	MaxSpeed         float64 // Horizontal speed cap
	TimeToAccelerate float64 // Seconds from rest to MaxSpeed
	TurnSpeed        float64 // Degrees per second at full stick
	Deadzone         float64 // Stick values below this are ignored
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity         mgl64.Vec3
	TickRate        int     // Fixed simulation ticks per second
	CapsuleRadius   float64 // Body collision radius
	CapsuleHeight   float64 // Body collision height
	GroundCheckSkin float64 // Extra reach of the grounded raycast below the feet
	CellSize        float64 // Broadphase cell size in world units
}

// DroneConfig contains race pacer configuration values
type DroneConfig struct {
	TimeToReachEnd float64 // Seconds, used when the level does not set one
	AutoActivate   bool    // Start flying as soon as the race scene loads
}

// RaceConfig contains race scene configuration values
type RaceConfig struct {
	Level            string  // Level file stem under assets/levels
	ResetDelayFrames int     // Frames between death and scene reset
	HandReach        float64 // Max distance of an emulated hand from the body
	HandSpeed        float64 // Emulated hand movement per second
	AimPitchSpeed    float64 // Degrees per second of emulated aim pitch
}

// UIConfig contains HUD and debug view configuration values
type UIConfig struct {
	PixelsPerUnit float64 // Side view zoom
	BoxColor      color.RGBA
	ClimbColor    color.RGBA
	GoalColor     color.RGBA
	DeathColor    color.RGBA
	PlayerColor   color.RGBA
	DroneColor    color.RGBA
	LineColor     color.RGBA
	MarkerColor   color.RGBA
	HUDFontSize   float64
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	LogLevel string // "debug", "info", "warn" or "error"
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHands bool // Draw emulated hand positions
}

// Global configuration instances
var C *Config
var Trajectory TrajectoryConfig
var Jump JumpConfig
var Climb ClimbConfig
var Locomotion LocomotionConfig
var Physics PhysicsConfig
var Drone DroneConfig
var Race RaceConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:    960,
		Height:   540,
		LogLevel: "info",
	}

	// Trajectory Config
	Trajectory = TrajectoryConfig{
		SegmentCount:      50,
		CurveLength:       3.5,
		FixedTickDuration: 1.0 / 50.0, // the preview was tuned against a 50Hz step
		LaunchSpeed:       10.0,
		GravityMultiplier: 1.0,
	}

	// Jump Config
	Jump = JumpConfig{
		PlaybackRate:    25.0,
		CapsuleRadius:   0.5,
		GrabPointHeight: 0.6,
	}

	Climb = ClimbConfig{
		GrabRadius: 1.0,
		ClimbSpeed: 5.0,
	}

	Locomotion = LocomotionConfig{
		MaxSpeed:         4.0,
		TimeToAccelerate: 0.25,
		TurnSpeed:        90.0,
		Deadzone:         0.2,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:         mgl64.Vec3{0, -9.81, 0},
		TickRate:        60,
		CapsuleRadius:   0.5,
		CapsuleHeight:   2.0,
		GroundCheckSkin: 0.1,
		CellSize:        2.0,
	}

	Drone = DroneConfig{
		TimeToReachEnd: 120.0,
		AutoActivate:   true,
	}

	Race = RaceConfig{
		Level:            "tower",
		ResetDelayFrames: 30,
		HandReach:        1.2,
		HandSpeed:        2.0,
		AimPitchSpeed:    60.0,
	}

	UI = UIConfig{
		PixelsPerUnit: 12.0,
		BoxColor:      Grey,
		ClimbColor:    color.RGBA{R: 120, G: 90, B: 60, A: 255},
		GoalColor:     Green,
		DeathColor:    Red,
		PlayerColor:   LightBlue,
		DroneColor:    Magenta,
		LineColor:     White,
		MarkerColor:   Yellow,
		HUDFontSize:   20,
	}

	Input = defaultInput()

	Debug = DebugConfig{}
}
