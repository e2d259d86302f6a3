package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/module/airborne"
	"github.com/oomph-ac/locomotion/module/locomotion"
	"github.com/oomph-ac/locomotion/module/slide"
	"github.com/oomph-ac/locomotion/module/stick"
	"github.com/oomph-ac/locomotion/module/wallrun"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/overlay/dash"
	"github.com/oomph-ac/locomotion/overlay/teleport"
	"github.com/pelletier/go-toml"
)

// Settings contains every tunable parameter of the movement modules and overlays.
type Settings struct {
	Character struct {
		CapsuleHeight float32
		CapsuleRadius float32
	}
	Locomotion locomotion.Config
	Slide      slide.Config
	WallRun    wallrun.Config
	Airborne   airborne.Config
	Stick      stick.Config
	Teleport   teleport.Config
	Dash       dash.Config
	Debug      struct {
		// TransitionLogSize is the number of transitions kept for inspection.
		TransitionLogSize int
		// LogLevel is a logrus level name.
		LogLevel string
	}
}

// DefaultSettings returns the default settings of every module and overlay.
func DefaultSettings() Settings {
	s := Settings{
		Locomotion: locomotion.DefaultConfig(),
		Slide:      slide.DefaultConfig(),
		WallRun:    wallrun.DefaultConfig(),
		Airborne:   airborne.DefaultConfig(),
		Stick:      stick.DefaultConfig(),
		Teleport:   teleport.DefaultConfig(),
		Dash:       dash.DefaultConfig(),
	}
	s.Character.CapsuleHeight = game.DefaultCapsuleHeight
	s.Character.CapsuleRadius = game.DefaultCapsuleRadius
	s.Debug.TransitionLogSize = 64
	s.Debug.LogLevel = "info"
	return s
}

// Validate returns an error if a setting is out of range.
func (s Settings) Validate() error {
	switch {
	case s.Character.CapsuleHeight <= 0 || s.Character.CapsuleRadius <= 0:
		return oerror.Wrap(oerror.ErrInvalidConfig, "capsule must have a positive size")
	case s.Character.CapsuleRadius*2 > s.Character.CapsuleHeight:
		return oerror.Wrap(oerror.ErrInvalidConfig, "capsule radius %v too large for height %v", s.Character.CapsuleRadius, s.Character.CapsuleHeight)
	case s.Locomotion.CrouchHeight <= 0 || s.Locomotion.CrouchHeight > s.Character.CapsuleHeight:
		return oerror.Wrap(oerror.ErrInvalidConfig, "crouch height %v must be within the capsule height", s.Locomotion.CrouchHeight)
	case s.Slide.MaxDuration <= 0:
		return oerror.Wrap(oerror.ErrInvalidConfig, "slide duration must be positive")
	case s.WallRun.MaxDuration <= 0:
		return oerror.Wrap(oerror.ErrInvalidConfig, "wall-run duration must be positive")
	case s.Teleport.MaxCharges < 0 || s.Teleport.RechargeTime <= 0:
		return oerror.Wrap(oerror.ErrInvalidConfig, "teleport charges must be non-negative with a positive recharge time")
	case s.Debug.TransitionLogSize < 0:
		return oerror.Wrap(oerror.ErrInvalidConfig, "transition log size must not be negative")
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file. A missing file is created with the
// default settings, and keys missing from the file keep their default value.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}
	return Decode(data)
}

// Decode decodes TOML settings on top of the defaults.
func Decode(data []byte) (Settings, error) {
	base, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return Settings{}, fmt.Errorf("failed encoding default settings: %w", err)
	}
	tree, err := toml.LoadBytes(base)
	if err != nil {
		return Settings{}, fmt.Errorf("failed loading default settings: %w", err)
	}
	user, err := toml.LoadBytes(data)
	if err != nil {
		return Settings{}, oerror.Wrap(oerror.ErrInvalidConfig, "error decoding config: %v", err)
	}
	merge(tree, user)

	var s Settings
	if err := tree.Unmarshal(&s); err != nil {
		return Settings{}, oerror.Wrap(oerror.ErrInvalidConfig, "error decoding config: %v", err)
	}
	return s, s.Validate()
}

// merge copies every key of src into dst. Tables present in both are merged key by key.
func merge(dst, src *toml.Tree) {
	for _, k := range src.Keys() {
		path := []string{k}
		v := src.GetPath(path)
		if sub, ok := v.(*toml.Tree); ok {
			if d, ok := dst.GetPath(path).(*toml.Tree); ok {
				merge(d, sub)
				continue
			}
		}
		dst.SetPath(path, v)
	}
}
