package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/locomotion/oerror"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movement.toml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Slide.MaxDuration != DefaultSettings().Slide.MaxDuration {
		t.Fatalf("expected default slide duration, got %v", s.Slide.MaxDuration)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the settings file to be created: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error reloading: %v", err)
	}
	if again.Teleport != s.Teleport || again.Airborne.Jumps != s.Airborne.Jumps {
		t.Fatalf("expected the written defaults to round trip")
	}
	if len(again.Slide.FrictionCurve) != len(s.Slide.FrictionCurve) {
		t.Fatalf("expected %d friction keys, got %d", len(s.Slide.FrictionCurve), len(again.Slide.FrictionCurve))
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected an error saving defaults over an existing file")
	}
}

func TestDecodeKeepsMissingDefaults(t *testing.T) {
	s, err := Decode([]byte(`
[Slide]
MaxDuration = 2.0

[Teleport]
MaxCharges = 3
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultSettings()
	if s.Slide.MaxDuration != 2 {
		t.Fatalf("expected slide duration 2, got %v", s.Slide.MaxDuration)
	}
	if s.Slide.Cooldown != def.Slide.Cooldown {
		t.Fatalf("expected the slide cooldown to keep its default, got %v", s.Slide.Cooldown)
	}
	if s.Teleport.MaxCharges != 3 || s.Teleport.Range != def.Teleport.Range {
		t.Fatalf("unexpected teleport settings %+v", s.Teleport)
	}
	if s.Airborne.Jumps != def.Airborne.Jumps {
		t.Fatalf("expected the jump table to keep its defaults")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("not = [valid")); !errors.Is(err, oerror.ErrInvalidConfig) {
		t.Fatalf("expected an invalid config error for bad TOML, got %v", err)
	}
	if _, err := Decode([]byte("[Character]\nCapsuleHeight = -1.0\n")); !errors.Is(err, oerror.ErrInvalidConfig) {
		t.Fatalf("expected an invalid config error for a negative capsule, got %v", err)
	}
}
