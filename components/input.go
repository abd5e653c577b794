package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	cfg "github.com/spidergame/spider/config"
	"github.com/spidergame/spider/core"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// HandRig is an emulated tracked hand, in the body's local frame.
type HandRig struct {
	Offset mgl64.Vec3
	Pitch  float64 // aim elevation in degrees
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Move     mgl64.Vec2
	Turn     mgl64.Vec2
	Hands    [core.HandCount]HandRig
}

// Action returns the temporal state of a.
func (d *InputData) Action(a cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[a],
		JustPressed:  d.Current[a] && !d.Previous[a],
		JustReleased: !d.Current[a] && d.Previous[a],
	}
}

// Frame converts the emulated hands and sticks into a core input frame.
func (d *InputData) Frame() core.InputFrame {
	frame := core.InputFrame{Move: d.Move, Turn: d.Turn}
	for h := range d.Hands {
		pitch := mgl64.DegToRad(d.Hands[h].Pitch)
		frame.Hands[h] = core.HandSample{
			Position: d.Hands[h].Offset,
			Forward:  mgl64.Vec3{0, math.Sin(pitch), math.Cos(pitch)},
		}
	}
	return frame
}

var Input = donburi.NewComponentType[InputData]()
