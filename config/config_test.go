package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	require.NoError(t, Current().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *File)
	}{
		{"one segment", func(f *File) { f.Trajectory.SegmentCount = 1 }},
		{"negative speed", func(f *File) { f.Trajectory.LaunchSpeed = -1 }},
		{"negative gravity multiplier", func(f *File) { f.Trajectory.GravityMultiplier = -0.5 }},
		{"zero playback rate", func(f *File) { f.Jump.PlaybackRate = 0 }},
		{"zero tick rate", func(f *File) { f.Physics.TickRate = 0 }},
		{"unknown log level", func(f *File) { f.Window.LogLevel = "loud" }},
		{"unknown action", func(f *File) { f.Input.Keys = map[string][]string{"fly": {"F"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			f := Current()
			tt.mutate(&f)
			assert.ErrorIs(t, f.Validate(), ErrInvalid)
		})
	}
}

func TestLoadWritesDefaultsThenReadsThem(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "config.toml")

	f, err := Load(path)
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "default config file should be created")
	assert.Equal(t, 50, f.Trajectory.SegmentCount)

	f.Trajectory.LaunchSpeed = 14
	Trajectory.LaunchSpeed = 0
	f.Apply()
	assert.InDelta(t, 14, Trajectory.LaunchSpeed, 1e-9)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Physics.Gravity, again.Physics.Gravity)
	assert.InDelta(t, 10, Trajectory.LaunchSpeed, 1e-9, "file values replace in-memory ones")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Jump]\nPlaybackRate = 40.0\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 40, f.Jump.PlaybackRate, 1e-9)
	assert.InDelta(t, 40, Jump.PlaybackRate, 1e-9)
	assert.InDelta(t, -9.81, Physics.Gravity.Y(), 1e-9)
	assert.Equal(t, 50, Trajectory.SegmentCount)
	assert.NotEmpty(t, Input.KeysFor(ActionGrabLeft))
	assert.Positive(t, Jump.CapsuleRadius, "fields missing from a present section keep their defaults")
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionID(0); a < ActionCount; a++ {
		got, ok := ParseAction(a.String())
		require.True(t, ok, "action %d has no name", a)
		assert.Equal(t, a, got)
		assert.NotEmpty(t, Input.KeysFor(a), "action %s has no default key", a)
	}
}
