package core

// Zone is a trigger volume the body can enter.
type Zone int

const (
	ZoneGoal Zone = iota
	ZoneDeath
)

func (z Zone) String() string {
	switch z {
	case ZoneGoal:
		return "goal"
	case ZoneDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Outcome is the race result reported by a zone.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// EnterZone handles the body touching a trigger. Death cancels any jump and
// resets the scene. Goal stops the timer and wins if the drone hasn't arrived.
func (c *Controller) EnterZone(z Zone) Outcome {
	switch z {
	case ZoneDeath:
		c.jump.Cancel()
		c.log.Info("player died")
		c.scene.Reset()
		return OutcomeNone
	case ZoneGoal:
		if c.timer != nil {
			c.timer.Stop()
		}
		outcome := OutcomeWin
		if c.drone != nil && c.drone.Arrived() {
			outcome = OutcomeLose
		}
		attrs := []any{"outcome", outcome}
		if c.timer != nil {
			attrs = append(attrs, "time", c.timer.Text())
		}
		c.log.Info("goal reached", attrs...)
		return outcome
	}
	return OutcomeNone
}
