package config

// ActionID identifies a bindable input action.
type ActionID int

const (
	ActionGrabLeft ActionID = iota
	ActionGrabRight
	ActionAimLeft
	ActionAimRight
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionHandUp
	ActionHandDown
	ActionHandIn
	ActionHandOut
	ActionPitchUp
	ActionPitchDown
	ActionRestart
	ActionToggleDebug
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionGrabLeft:    "grab_left",
	ActionGrabRight:   "grab_right",
	ActionAimLeft:     "aim_left",
	ActionAimRight:    "aim_right",
	ActionMoveForward: "move_forward",
	ActionMoveBack:    "move_back",
	ActionStrafeLeft:  "strafe_left",
	ActionStrafeRight: "strafe_right",
	ActionTurnLeft:    "turn_left",
	ActionTurnRight:   "turn_right",
	ActionHandUp:      "hand_up",
	ActionHandDown:    "hand_down",
	ActionHandIn:      "hand_in",
	ActionHandOut:     "hand_out",
	ActionPitchUp:     "pitch_up",
	ActionPitchDown:   "pitch_down",
	ActionRestart:     "restart",
	ActionToggleDebug: "toggle_debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig maps action names to keyboard key names as understood by
// ebiten.Key.UnmarshalText.
type InputConfig struct {
	Keys map[string][]string
}

// KeysFor returns the key names bound to a.
func (c InputConfig) KeysFor(a ActionID) []string {
	return c.Keys[a.String()]
}

var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{Keys: map[string][]string{
		ActionGrabLeft.String():    {"Q"},
		ActionGrabRight.String():   {"E"},
		ActionAimLeft.String():     {"Z"},
		ActionAimRight.String():    {"C"},
		ActionMoveForward.String(): {"W"},
		ActionMoveBack.String():    {"S"},
		ActionStrafeLeft.String():  {"A"},
		ActionStrafeRight.String(): {"D"},
		ActionTurnLeft.String():    {"ArrowLeft"},
		ActionTurnRight.String():   {"ArrowRight"},
		ActionHandUp.String():      {"I"},
		ActionHandDown.String():    {"K"},
		ActionHandIn.String():      {"J"},
		ActionHandOut.String():     {"L"},
		ActionPitchUp.String():     {"ArrowUp"},
		ActionPitchDown.String():   {"ArrowDown"},
		ActionRestart.String():     {"Backspace"},
		ActionToggleDebug.String(): {"F1"},
	}}
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (ActionID, bool) {
	for a := ActionID(0); a < ActionCount; a++ {
		if actionNames[a] == name {
			return a, true
		}
	}
	return 0, false
}
