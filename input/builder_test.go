package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuilderEdgesClearAfterSnapshot(t *testing.T) {
	b := NewBuilder()
	b.Set(ActionJump, true)

	s := b.Snapshot()
	if !s.Pressed(ActionJump) || !s.Held(ActionJump) {
		t.Fatalf("expected jump pressed and held, got %+v", s.Button(ActionJump))
	}

	s = b.Snapshot()
	if s.Pressed(ActionJump) {
		t.Fatalf("pressed edge should be cleared on the next tick")
	}
	if !s.Held(ActionJump) {
		t.Fatalf("jump should still be held")
	}

	b.Set(ActionJump, false)
	s = b.Snapshot()
	if !s.Released(ActionJump) || s.Held(ActionJump) {
		t.Fatalf("expected jump released, got %+v", s.Button(ActionJump))
	}
}

func TestBuilderTap(t *testing.T) {
	b := NewBuilder()
	b.Tap(ActionCrouch)
	s := b.Snapshot()
	if !s.Pressed(ActionCrouch) || !s.Released(ActionCrouch) || s.Held(ActionCrouch) {
		t.Fatalf("tap should produce both edges without hold, got %+v", s.Button(ActionCrouch))
	}
}

func TestBuilderMoveClampAndLook(t *testing.T) {
	b := NewBuilder()
	b.SetMove(mgl32.Vec2{3, 4})
	b.AddLook(mgl32.Vec2{1, 0})
	b.AddLook(mgl32.Vec2{2, 1})

	s := b.Snapshot()
	if l := s.Move.Len(); l > 1.0001 {
		t.Fatalf("move axis should be clamped to unit length, got %v", l)
	}
	if s.Look != (mgl32.Vec2{3, 1}) {
		t.Fatalf("look deltas should accumulate, got %v", s.Look)
	}
	if !s.HasMove() || !s.Held(ActionMove) {
		t.Fatalf("expected movement to be reported")
	}
	if s = b.Snapshot(); s.Look != (mgl32.Vec2{}) {
		t.Fatalf("look delta should reset after a snapshot, got %v", s.Look)
	}
}

func TestParseAction(t *testing.T) {
	for a := Action(0); a < actionCount; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Fatalf("expected %v to parse back, got %v/%v", a, got, ok)
		}
	}
	if _, ok := ParseAction("fly"); ok {
		t.Fatalf("expected an unknown action name to fail")
	}
}
