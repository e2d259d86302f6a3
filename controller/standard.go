package controller

import (
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/module/airborne"
	"github.com/oomph-ac/locomotion/module/locomotion"
	"github.com/oomph-ac/locomotion/module/slide"
	"github.com/oomph-ac/locomotion/module/stick"
	"github.com/oomph-ac/locomotion/module/wallrun"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/overlay"
	"github.com/oomph-ac/locomotion/overlay/dash"
	"github.com/oomph-ac/locomotion/overlay/teleport"
	"github.com/oomph-ac/locomotion/settings"
)

// NewStandard creates a controller with every built-in module and overlay configured from s.
func NewStandard(b body.Body, s settings.Settings, opts ...Option) (*Controller, error) {
	if b == nil {
		return nil, oerror.ErrMissingBody
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	neutral := body.Capsule{Height: s.Character.CapsuleHeight, Radius: s.Character.CapsuleRadius}
	b.SetCapsule(neutral)

	modules := []movement.Module{
		locomotion.New(s.Locomotion),
		slide.New(s.Slide),
		wallrun.New(s.WallRun),
		airborne.New(s.Airborne),
		stick.New(s.Stick),
	}
	overlays := []overlay.Overlay{
		teleport.New(s.Teleport, nil),
		dash.New(s.Dash),
	}
	c, err := New(b, modules, overlays, opts...)
	if err != nil {
		return nil, err
	}
	c.char.NeutralCapsule = neutral
	return c, nil
}
