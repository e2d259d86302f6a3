package input

import "github.com/go-gl/mathgl/mgl32"

// Builder accumulates raw, already debounced device state over a frame and produces one
// Snapshot per logic tick. Edge flags are cleared once a snapshot has been taken.
type Builder struct {
	held     [actionCount]bool
	pressed  [actionCount]bool
	released [actionCount]bool

	move mgl32.Vec2
	look mgl32.Vec2
}

// NewBuilder returns a Builder with every action released.
func NewBuilder() *Builder {
	return &Builder{}
}

// Set reports the current down state of an action. Transitions produce the pressed and
// released edges for the next snapshot.
func (b *Builder) Set(a Action, down bool) {
	if a >= actionCount || a == ActionMove {
		return
	}
	if down && !b.held[a] {
		b.pressed[a] = true
	} else if !down && b.held[a] {
		b.released[a] = true
	}
	b.held[a] = down
}

// Tap presses and releases an action within the same tick.
func (b *Builder) Tap(a Action) {
	b.Set(a, true)
	b.Set(a, false)
}

// SetMove sets the movement axis.
func (b *Builder) SetMove(move mgl32.Vec2) {
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	b.move = move
}

// AddLook accumulates look delta until the next snapshot.
func (b *Builder) AddLook(delta mgl32.Vec2) {
	b.look = b.look.Add(delta)
}

// Snapshot returns the input for the current tick and clears the edge flags and look delta.
func (b *Builder) Snapshot() Snapshot {
	var s Snapshot
	for a := Action(0); a < actionCount; a++ {
		if a == ActionMove {
			continue
		}
		s.buttons[a] = Button{Pressed: b.pressed[a], Held: b.held[a], Released: b.released[a]}
	}
	moving := b.move.LenSqr() > DeadZone*DeadZone
	s.buttons[ActionMove] = Button{Held: moving}
	s.Move = b.move
	s.Look = b.look

	b.pressed = [actionCount]bool{}
	b.released = [actionCount]bool{}
	b.look = mgl32.Vec2{}
	return s
}

// Of builds a snapshot directly from explicit button states, mostly for tests and replays.
func Of(move mgl32.Vec2, buttons map[Action]Button) Snapshot {
	var s Snapshot
	for a, btn := range buttons {
		if a < actionCount {
			s.buttons[a] = btn
		}
	}
	s.Move = move
	if move.LenSqr() > DeadZone*DeadZone {
		s.buttons[ActionMove].Held = true
	}
	return s
}
