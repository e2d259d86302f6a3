package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/input"
)

// Terminals only report key presses and repeats. Movement keys and jump count as held until
// no repeat arrived for holdTimeout.
const holdTimeout = 180 * time.Millisecond

// lookStep is the yaw in degrees turned per arrow key press.
const lookStep = float32(15)

type keyState struct {
	b *input.Builder

	forward, back, left, right time.Time
	jump                       time.Time
	// toggles
	sprint, crouch, aim bool
	taps               []input.Action
	look               float32
}

func newKeyState() *keyState {
	return &keyState{b: input.NewBuilder()}
}

// handle records a key event. It returns false for keys that are not bound.
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.look -= lookStep
		return true
	case tcell.KeyRight:
		k.look += lookStep
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'w':
		k.forward = now
	case 's':
		k.back = now
	case 'a':
		k.left = now
	case 'd':
		k.right = now
	case ' ':
		k.jump = now
	case 'r':
		k.sprint = !k.sprint
	case 'c':
		k.crouch = !k.crouch
	case 'e':
		k.aim = !k.aim
	case 'f':
		k.taps = append(k.taps, input.ActionExecute)
	case 'x':
		k.taps = append(k.taps, input.ActionCancel)
		k.aim = false
	default:
		return false
	}
	return true
}

func (k *keyState) snapshot(now time.Time) input.Snapshot {
	held := func(t time.Time) float32 {
		if now.Sub(t) < holdTimeout {
			return 1
		}
		return 0
	}
	k.b.SetMove(mgl32.Vec2{held(k.right) - held(k.left), held(k.forward) - held(k.back)})
	k.b.Set(input.ActionSprint, k.sprint)
	k.b.Set(input.ActionCrouch, k.crouch)
	k.b.Set(input.ActionAim, k.aim)
	k.b.Set(input.ActionJump, held(k.jump) > 0)
	k.b.Set(input.ActionExecute, false)
	k.b.Set(input.ActionCancel, false)
	for _, a := range k.taps {
		k.b.Tap(a)
	}
	k.taps = k.taps[:0]
	if k.look != 0 {
		k.b.AddLook(mgl32.Vec2{k.look, 0})
		k.look = 0
	}
	return k.b.Snapshot()
}
