// Package movementtest provides helpers for driving movement modules in tests without a
// controller.
package movementtest

import (
	"io"

	"github.com/oomph-ac/locomotion/anim"
	"github.com/oomph-ac/locomotion/body/bodytest"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/sirupsen/logrus"
)

// Deactivation is a recorded deactivation request.
type Deactivation struct {
	Tag    movement.Tag
	Reason string
}

// Facade records the requests modules make. Jump requests are also posted to the mailbox
// of Char so airborne modules can consume them.
type Facade struct {
	Char *movement.Character

	Jumps         []movement.JumpRequest
	Deactivations []Deactivation
}

func (f *Facade) ExecuteJump(req movement.JumpRequest) {
	f.Jumps = append(f.Jumps, req)
	if f.Char != nil {
		f.Char.Mail.PostJump(req)
	}
}

func (f *Facade) RequestDeactivation(tag movement.Tag, reason string) {
	f.Deactivations = append(f.Deactivations, Deactivation{Tag: tag, Reason: reason})
}

// Deactivated returns true if a deactivation of tag was requested.
func (f *Facade) Deactivated(tag movement.Tag) bool {
	for _, d := range f.Deactivations {
		if d.Tag == tag {
			return true
		}
	}
	return false
}

// Reset drops every recorded request.
func (f *Facade) Reset() {
	f.Jumps, f.Deactivations = nil, nil
}

// Harness bundles a context with the stub body, recording facade and animation recorder
// backing it.
type Harness struct {
	Ctx    *movement.Context
	Body   *bodytest.Stub
	Facade *Facade
	Anim   *anim.Recorder
}

// New returns a harness over a stub body standing on flat ground.
func New() *Harness {
	b := bodytest.New()
	char := movement.NewCharacter(b.Cap)
	f := &Facade{Char: char}
	rec := &anim.Recorder{}

	log := logrus.New()
	log.SetOutput(io.Discard)

	h := &Harness{
		Ctx: &movement.Context{
			Body:   b,
			Anim:   rec,
			Char:   char,
			Facade: f,
			Log:    log,
		},
		Body:   b,
		Facade: f,
		Anim:   rec,
	}
	h.Observe()
	return h
}

// Observe refreshes the world state of the context from the body.
func (h *Harness) Observe() {
	h.Ctx.World = movement.Observe(h.Body, h.Ctx.World)
}

// Frame starts a new logic tick with the given input.
func (h *Harness) Frame(in input.Snapshot, dt float32) {
	h.Ctx.Tick++
	h.Ctx.Time += float64(dt)
	h.Ctx.Input = in
	h.Observe()
}

// Step runs the physics hooks of m once, the way the arbiter does for the active module.
func (h *Harness) Step(m movement.Module, dt float32) {
	ctx := h.Ctx
	m.BeforeCharacterUpdate(ctx, dt)
	ctx.Body.SetRotation(m.UpdateRotation(ctx, ctx.Body.Rotation(), dt))
	vel := m.UpdateVelocity(ctx, ctx.Body.Velocity(), dt)
	onSlope := ctx.Body.Grounding().Stable && ctx.Body.Slope().Angle > 1
	ctx.Body.SetVelocity(m.SpeedLimit(ctx).Apply(vel, onSlope))
	ctx.Body.Integrate(dt)
	m.PostGroundingUpdate(ctx, dt)
	m.AfterCharacterUpdate(ctx, dt)
}
