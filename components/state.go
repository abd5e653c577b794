package components

import "github.com/yohamta/donburi"

// MoveState is the player's movement mode as shown to the user.
type MoveState int

const (
	StateFree MoveState = iota
	StateClimbing
	StateAiming
	StateJumping
)

func (s MoveState) String() string {
	switch s {
	case StateClimbing:
		return "climbing"
	case StateAiming:
		return "aiming"
	case StateJumping:
		return "jumping"
	default:
		return "free"
	}
}

type StateData struct {
	CurrentState  MoveState
	PreviousState MoveState
	StateTimer    int // frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
