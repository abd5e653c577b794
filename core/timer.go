package core

import (
	"time"

	"github.com/spidergame/spider/shared/gamemath"
)

// RaceTimer measures race time on the simulation clock. It starts itself the
// first tick the drone is seen moving and can only be started once per race.
type RaceTimer struct {
	clock     float64
	startedAt float64
	stoppedAt float64
	running   bool
	started   bool
}

// FixedUpdate advances the clock and starts the timer when droneMoving is
// first observed.
func (t *RaceTimer) FixedUpdate(dt float64, droneMoving bool) {
	t.clock += dt
	if !t.started && droneMoving {
		t.Activate()
	}
}

// Activate starts timing from the current clock.
func (t *RaceTimer) Activate() {
	t.startedAt = t.clock
	t.running = true
	t.started = true
}

// Stop freezes the elapsed time.
func (t *RaceTimer) Stop() {
	if !t.running {
		return
	}
	t.stoppedAt = t.clock
	t.running = false
}

func (t *RaceTimer) Active() bool  { return t.running }
func (t *RaceTimer) Started() bool { return t.started }

// StartedAt is the simulation time the race began.
func (t *RaceTimer) StartedAt() time.Duration {
	return gamemath.Seconds(t.startedAt)
}

func (t *RaceTimer) Elapsed() time.Duration {
	switch {
	case t.running:
		return gamemath.Seconds(t.clock - t.startedAt)
	case t.started:
		return gamemath.Seconds(t.stoppedAt - t.startedAt)
	default:
		return 0
	}
}

// Text renders the elapsed time as MM:SS.
func (t *RaceTimer) Text() string {
	return gamemath.FormatClock(t.Elapsed())
}

// Reset zeroes the clock for a new race.
func (t *RaceTimer) Reset() {
	*t = RaceTimer{}
}
