package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/oerror"
)

func TestPlayerReplaysSteps(t *testing.T) {
	p := NewPlayer(Script{Steps: []Step{
		{Ticks: 2, MoveY: 1, Hold: []string{"sprint"}, Tap: []string{"jump"}},
		{Ticks: 1, Look: 45},
	}})

	s, ok := p.Next()
	if !ok || !s.Pressed(input.ActionJump) || !s.Held(input.ActionSprint) || s.Move != (mgl32.Vec2{0, 1}) {
		t.Fatalf("unexpected first tick %+v", s)
	}
	s, _ = p.Next()
	if s.Pressed(input.ActionJump) || !s.Held(input.ActionSprint) {
		t.Fatalf("expected the tap only on the first tick of the step")
	}
	s, _ = p.Next()
	if s.Held(input.ActionSprint) || !s.Released(input.ActionSprint) || s.Look.X() != 45 {
		t.Fatalf("unexpected third tick %+v", s)
	}
	if _, ok := p.Next(); ok {
		t.Fatalf("expected the script to end")
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	data := []byte(`
Name = "jump"

[[Step]]
Ticks = 3
MoveY = 1.0

[[Step]]
Ticks = 1
Tap = ["jump"]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "jump" || len(s.Steps) != 2 || s.Ticks() != 4 || s.Steps[1].Tap[0] != "jump" {
		t.Fatalf("unexpected script %+v", s)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected the default script to be valid: %v", err)
	}
	bad := Script{Steps: []Step{{Ticks: 1, Tap: []string{"fly"}}}}
	if err := bad.Validate(); !errors.Is(err, oerror.ErrInvalidConfig) {
		t.Fatalf("expected an invalid config error, got %v", err)
	}
	if err := (Script{Steps: []Step{{}}}).Validate(); !errors.Is(err, oerror.ErrInvalidConfig) {
		t.Fatalf("expected an empty step to be rejected")
	}
}
