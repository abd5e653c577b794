package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/restartfu/gophig"
	"github.com/samber/lo"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// File is the on-disk layout of the tunable sections.
type File struct {
	Window     Config
	Trajectory TrajectoryConfig
	Jump       JumpConfig
	Climb      ClimbConfig
	Locomotion LocomotionConfig
	Physics    PhysicsConfig
	Drone      DroneConfig
	Race       RaceConfig
	Input      InputConfig
	Debug      DebugConfig
}

// Current snapshots the package-level sections.
func Current() File {
	return File{
		Window:     *C,
		Trajectory: Trajectory,
		Jump:       Jump,
		Climb:      Climb,
		Locomotion: Locomotion,
		Physics:    Physics,
		Drone:      Drone,
		Race:       Race,
		Input:      Input,
		Debug:      Debug,
	}
}

// Apply copies f into the package-level sections.
func (f File) Apply() {
	window := f.Window
	C = &window
	Trajectory = f.Trajectory
	Jump = f.Jump
	Climb = f.Climb
	Locomotion = f.Locomotion
	Physics = f.Physics
	Drone = f.Drone
	Race = f.Race
	Input = f.Input
	Debug = f.Debug
}

// Validate rejects values the simulation cannot run with.
func (f File) Validate() error {
	switch {
	case f.Trajectory.SegmentCount < 2:
		return fmt.Errorf("%w: trajectory segment count %d < 2", ErrInvalid, f.Trajectory.SegmentCount)
	case f.Trajectory.LaunchSpeed < 0:
		return fmt.Errorf("%w: negative launch speed %v", ErrInvalid, f.Trajectory.LaunchSpeed)
	case f.Trajectory.GravityMultiplier < 0:
		return fmt.Errorf("%w: negative gravity multiplier %v", ErrInvalid, f.Trajectory.GravityMultiplier)
	case f.Trajectory.FixedTickDuration <= 0 || f.Trajectory.CurveLength <= 0:
		return fmt.Errorf("%w: trajectory time scale must be positive", ErrInvalid)
	case f.Jump.PlaybackRate <= 0:
		return fmt.Errorf("%w: jump playback rate %v must be positive", ErrInvalid, f.Jump.PlaybackRate)
	case f.Climb.GrabRadius <= 0:
		return fmt.Errorf("%w: grab radius %v must be positive", ErrInvalid, f.Climb.GrabRadius)
	case f.Physics.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalid, f.Physics.TickRate)
	case f.Locomotion.MaxSpeed < 0:
		return fmt.Errorf("%w: negative max speed %v", ErrInvalid, f.Locomotion.MaxSpeed)
	}
	for name := range f.Input.Keys {
		if _, ok := ParseAction(name); !ok {
			return fmt.Errorf("%w: unknown input action %q", ErrInvalid, name)
		}
	}
	if _, err := ParseLogLevel(f.Window.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Load reads the configuration from a TOML file at path and applies it.
// If the file doesn't exist, it creates one with the current values.
func Load(path string) (File, error) {
	g := gophig.NewGophig[File](path, gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if os.IsNotExist(err) {
		if err := g.SaveConf(Current()); err != nil {
			return File{}, fmt.Errorf("write default config %s: %w", path, err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("load config %s: %w", path, err)
	}

	// Sections or keys missing from the file keep their current values.
	f := Current()
	f.Input.Keys = lo.Assign(f.Input.Keys)
	if err := (gophig.TOMLMarshaler{}).Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	f.Apply()
	return f, nil
}

// ParseLogLevel returns the appropriate slog.Level based on string configuration.
// Returns an error if the provided log level string is not recognized.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level: %q", level)
	}
}
