package movement

// Tag identifies which movement module is in control. Derived state such as "is sliding" is
// computed from the active tag, never from the dynamic type of the module.
type Tag uint8

const (
	TagNone Tag = iota
	TagLocomotion
	TagSlide
	TagWallRun
	TagAirborne
	TagStick
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagLocomotion:
		return "locomotion"
	case TagSlide:
		return "slide"
	case TagWallRun:
		return "wallrun"
	case TagAirborne:
		return "airborne"
	case TagStick:
		return "stick"
	}
	return "custom"
}

// State is the semantic movement state a module reports for animation and UI consumers.
type State uint8

const (
	StateNone State = iota
	StateIdle
	StateWalking
	StateJogging
	StateSprinting
	StateCrouching
	StateSliding
	StateWallRunning
	StateFalling
	StateJumping
	StateDoubleJumping
	StateWallJumping
	StateBulletJumping
	StateSticking
)

var stateNames = map[State]string{
	StateNone:          "none",
	StateIdle:          "idle",
	StateWalking:       "walking",
	StateJogging:       "jogging",
	StateSprinting:     "sprinting",
	StateCrouching:     "crouching",
	StateSliding:       "sliding",
	StateWallRunning:   "wall_running",
	StateFalling:       "falling",
	StateJumping:       "jumping",
	StateDoubleJumping: "double_jumping",
	StateWallJumping:   "wall_jumping",
	StateBulletJumping: "bullet_jumping",
	StateSticking:      "sticking",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Airborne returns true for the sub-states of the airborne branch.
func (s State) Airborne() bool {
	switch s {
	case StateFalling, StateJumping, StateDoubleJumping, StateWallJumping, StateBulletJumping:
		return true
	}
	return false
}
