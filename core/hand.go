package core

// Hand identifies a tracked hand.
type Hand int

const (
	Left Hand = iota
	Right
	HandCount
)

func (h Hand) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	if h == Left {
		return Right
	}
	return Left
}

// HandState is what a hand is currently doing. Grabbing and Aiming never
// overlap.
type HandState int

const (
	HandIdle HandState = iota
	HandGrabbing
	HandAiming
)

func (s HandState) String() string {
	switch s {
	case HandIdle:
		return "idle"
	case HandGrabbing:
		return "grabbing"
	case HandAiming:
		return "aiming"
	default:
		return "unknown"
	}
}

func (h Hand) valid() bool {
	return h >= Left && h < HandCount
}
