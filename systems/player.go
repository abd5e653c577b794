package systems

import (
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var grabActions = [core.HandCount]cfg.ActionID{cfg.ActionGrabLeft, cfg.ActionGrabRight}
var aimActions = [core.HandCount]cfg.ActionID{cfg.ActionAimLeft, cfg.ActionAimRight}

// UpdatePlayer feeds the emulated hands to the controller, dispatches grab
// and aim edges and runs the controller's fixed tick.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(input, playerEntry)
	})
}

func updateSinglePlayer(input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	ctrl := player.Controller
	dt := tickSeconds()

	relaxHands(input, ctrl.State(), dt)
	ctrl.Sample(input.Frame())
	handleHandInput(input, ctrl)
	ctrl.FixedUpdate(dt)

	updatePlayerState(playerEntry, ctrl.State())
}

// handleHandInput turns button edges into controller events. Grabs are
// processed first so a grab and an aim on the same frame resolve to a grab.
func handleHandInput(input *components.InputData, ctrl *core.Controller) {
	for h := core.Left; h < core.HandCount; h++ {
		grab := input.Action(grabActions[h])
		if grab.JustPressed {
			ctrl.GrabPressed(h)
		} else if grab.JustReleased {
			ctrl.GrabReleased(h)
		}

		aim := input.Action(aimActions[h])
		if aim.JustPressed {
			ctrl.AimPressed(h)
		} else if aim.JustReleased {
			ctrl.AimReleased(h)
		}
	}
}

// relaxHands eases free hands back to their rest pose while no hand action
// is held, so the next grab starts from a natural reach.
func relaxHands(input *components.InputData, state core.ControllerState, dt float64) {
	if handsMoving(input) {
		return
	}
	step := cfg.Race.HandSpeed * dt
	for h := range input.Hands {
		if state.Hands[h] == core.HandGrabbing {
			continue
		}
		rig := &input.Hands[h]
		rig.Offset = gamemath.MoveTowards(rig.Offset, handRest[h], step)
	}
}

func updatePlayerState(playerEntry *donburi.Entry, ctrlState core.ControllerState) {
	state := components.State.Get(playerEntry)

	next := moveStateOf(ctrlState)
	if next != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
		logger.Debug("move state", "from", state.PreviousState, "to", next)
		return
	}
	state.StateTimer++
}

func moveStateOf(s core.ControllerState) components.MoveState {
	switch {
	case s.Jumping:
		return components.StateJumping
	case s.Hands[core.Left] == core.HandGrabbing || s.Hands[core.Right] == core.HandGrabbing:
		return components.StateClimbing
	case s.Hands[core.Left] == core.HandAiming || s.Hands[core.Right] == core.HandAiming:
		return components.StateAiming
	default:
		return components.StateFree
	}
}
