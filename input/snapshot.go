package input

import "github.com/go-gl/mathgl/mgl32"

// Action is a digital input the controller consumes.
type Action uint8

const (
	ActionJump Action = iota
	ActionCrouch
	ActionSprint
	ActionCancel
	ActionAim
	ActionExecute
	// ActionMove is the digital "any movement" flag derived from the move axis.
	ActionMove

	actionCount
)

var actionNames = [actionCount]string{"jump", "crouch", "sprint", "cancel", "aim", "execute", "move"}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Button is the per-frame view of a single digital action.
type Button struct {
	Pressed  bool
	Held     bool
	Released bool
}

// Snapshot is an immutable view of a single tick's input. It is produced once per logic
// tick and never mutated by the movement core.
type Snapshot struct {
	buttons [actionCount]Button

	// Move is the movement axis, X strafing right and Y forward.
	Move mgl32.Vec2
	// Look is the look delta for this tick, X yaw and Y pitch, in degrees.
	Look mgl32.Vec2
}

// Button returns the state of the given action.
func (s Snapshot) Button(a Action) Button {
	if a >= actionCount {
		return Button{}
	}
	return s.buttons[a]
}

// Pressed returns true if the action went down this tick.
func (s Snapshot) Pressed(a Action) bool {
	return s.Button(a).Pressed
}

// Held returns true if the action is currently down.
func (s Snapshot) Held(a Action) bool {
	return s.Button(a).Held
}

// Released returns true if the action went up this tick.
func (s Snapshot) Released(a Action) bool {
	return s.Button(a).Released
}

// HasMove returns true if the move axis is outside the dead zone.
func (s Snapshot) HasMove() bool {
	return s.Move.LenSqr() > DeadZone*DeadZone
}

// DeadZone is the move axis magnitude under which the axis counts as released.
const DeadZone = float32(0.1)
