// Package dash implements a cooldown gated dash overlay.
package dash

import (
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/overlay"
)

// Overlay dashes along the move direction, or the facing without move input, when execute
// is pressed without aiming.
type Overlay struct {
	cfg Config
	// readyAt is the logical time the next dash is allowed at.
	readyAt float64
	now     float64
}

// New returns a dash overlay using cfg.
func New(cfg Config) *Overlay {
	return &Overlay{cfg: cfg}
}

func (o *Overlay) ID() string { return ID }

func (o *Overlay) WantsToActivate(ctx *overlay.Context) bool {
	o.now = ctx.Time()
	in := ctx.Input()
	return in.Pressed(input.ActionExecute) && !in.Held(input.ActionAim) && ctx.Time() >= o.readyAt
}

func (o *Overlay) Activate(ctx *overlay.Context) {
	rot := ctx.Body().Rotation()
	dir := game.ForwardOf(rot)
	if ctx.Input().HasMove() {
		dir = game.SafeNormalize(game.MoveDirection(rot, ctx.Input().Move))
	}
	o.readyAt = ctx.Time() + float64(o.cfg.Cooldown)
	ctx.Request(overlay.StartDash{Direction: dir, Speed: o.cfg.Speed, Source: ID})
}

func (o *Overlay) Tick(ctx *overlay.Context, _ float32) {
	o.now = ctx.Time()
	// The dash is a single impulse. It stays active only until the controller performs it.
	ctx.Deactivate(ID)
}

func (o *Overlay) Deactivate(*overlay.Context) {}

// Timers reports the cooldown left.
func (o *Overlay) Timers() []movement.Timer {
	return []movement.Timer{{Name: "dash_cooldown", Remaining: float32(max(0, o.readyAt-o.now))}}
}
