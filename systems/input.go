package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spidergame/spider/archetypes"
	"github.com/spidergame/spider/components"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/yohamta/donburi/ecs"
)

const (
	stickDeadzone = 0.2
	defaultPitch  = 30.0
	maxPitch      = 80.0
)

// handRest is where each emulated hand sits when idle, relative to the body.
var handRest = [core.HandCount]mgl64.Vec3{
	core.Left:  {-0.3, 0.4, 0.6},
	core.Right: {0.3, 0.4, 0.6},
}

// Gamepad buttons per action, standard layout.
var gamepadBindings = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionGrabLeft:  {ebiten.StandardGamepadButtonFrontTopLeft},
	cfg.ActionGrabRight: {ebiten.StandardGamepadButtonFrontTopRight},
	cfg.ActionAimLeft:   {ebiten.StandardGamepadButtonFrontBottomLeft},
	cfg.ActionAimRight:  {ebiten.StandardGamepadButtonFrontBottomRight},
	cfg.ActionHandUp:    {ebiten.StandardGamepadButtonLeftTop},
	cfg.ActionHandDown:  {ebiten.StandardGamepadButtonLeftBottom},
	cfg.ActionHandIn:    {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionHandOut:   {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionPitchUp:   {ebiten.StandardGamepadButtonRightTop},
	cfg.ActionPitchDown: {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionRestart:   {ebiten.StandardGamepadButtonCenterRight},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var keyBindings [cfg.ActionCount][]ebiten.Key
var keyBindingsLoaded bool

// loadKeyBindings resolves the configured key names once.
func loadKeyBindings() {
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		keys := keyBindings[a][:0]
		for _, name := range cfg.Input.KeysFor(a) {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				logger.Warn("ignoring key binding", "action", a, "key", name, "err", err)
				continue
			}
			keys = append(keys, k)
		}
		keyBindings[a] = keys
	}
	keyBindingsLoaded = true
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	if !keyBindingsLoaded {
		loadKeyBindings()
	}
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		for _, key := range keyBindings[a] {
			if ebiten.IsKeyPressed(key) {
				input.Current[a] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range gamepadBindings[a] {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[a] = true
				}
			}
		}
	}

	input.Move = mgl64.Vec2{
		axis(input, cfg.ActionStrafeRight, cfg.ActionStrafeLeft),
		axis(input, cfg.ActionMoveForward, cfg.ActionMoveBack),
	}
	input.Turn = mgl64.Vec2{axis(input, cfg.ActionTurnRight, cfg.ActionTurnLeft), 0}
	move, turn := readSticks(gamepadIDs)
	input.Move = input.Move.Add(move)
	input.Turn = input.Turn.Add(turn)

	updateHandRigs(input, tickSeconds())
}

func axis(input *components.InputData, positive, negative cfg.ActionID) float64 {
	v := 0.0
	if input.Current[positive] {
		v++
	}
	if input.Current[negative] {
		v--
	}
	return v
}

// readSticks returns the strongest left (move) and right (turn) stick
// deflection across connected gamepads. Stick up is negative on the
// standard layout.
func readSticks(ids []ebiten.GamepadID) (move, turn mgl64.Vec2) {
	for _, gpID := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		m := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if m.Len() > stickDeadzone && m.Len() > move.Len() {
			move = m
		}
		t := mgl64.Vec2{ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal), 0}
		if t.Len() > stickDeadzone && t.Len() > turn.Len() {
			turn = t
		}
	}
	return move, turn
}

// updateHandRigs moves both emulated hands from the hand actions and clamps
// them to arm's reach.
func updateHandRigs(input *components.InputData, dt float64) {
	step := cfg.Race.HandSpeed * dt
	delta := mgl64.Vec3{
		0,
		axis(input, cfg.ActionHandUp, cfg.ActionHandDown) * step,
		axis(input, cfg.ActionHandOut, cfg.ActionHandIn) * step,
	}
	pitch := axis(input, cfg.ActionPitchUp, cfg.ActionPitchDown) * cfg.Race.AimPitchSpeed * dt

	for h := range input.Hands {
		rig := &input.Hands[h]
		if rig.Offset == (mgl64.Vec3{}) {
			rig.Offset = handRest[h]
			rig.Pitch = defaultPitch
		}
		rig.Offset = clampReach(rig.Offset.Add(delta), handRest[h], cfg.Race.HandReach)
		rig.Pitch = mgl64.Clamp(rig.Pitch+pitch, -maxPitch, maxPitch)
	}
}

func clampReach(p, rest mgl64.Vec3, reach float64) mgl64.Vec3 {
	d := p.Sub(rest)
	if d.Len() <= reach {
		return p
	}
	return rest.Add(d.Normalize().Mul(reach))
}

// handsMoving reports whether any hand action is held this frame.
func handsMoving(input *components.InputData) bool {
	return input.Current[cfg.ActionHandUp] || input.Current[cfg.ActionHandDown] ||
		input.Current[cfg.ActionHandIn] || input.Current[cfg.ActionHandOut]
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
