// Package teleport implements an aim-and-release targeted teleport overlay.
package teleport

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/overlay"
)

// Target is a teleport destination.
type Target struct {
	Position mgl32.Vec3
	IsLedge  bool
}

// TargetFinder resolves where a teleport started from the current body state would land.
type TargetFinder interface {
	FindTarget(ctx *overlay.Context, maxRange float32) (Target, bool)
}

// Overlay is the teleport overlay. Aim starts targeting, execute teleports, and releasing
// aim or cancel stops targeting.
type Overlay struct {
	cfg    Config
	finder TargetFinder

	charges int
	// nextCharge is the logical time the next charge is regained at.
	nextCharge float64
	charging   bool

	target    Target
	hasTarget bool
}

// New returns a teleport overlay. A nil finder uses RaycastFinder.
func New(cfg Config, finder TargetFinder) *Overlay {
	if finder == nil {
		finder = RaycastFinder{LedgeProbeHeight: cfg.LedgeProbeHeight}
	}
	return &Overlay{cfg: cfg, finder: finder, charges: cfg.MaxCharges}
}

func (o *Overlay) ID() string { return ID }

// Charges returns the stored teleports.
func (o *Overlay) Charges() int {
	return o.charges
}

// Target returns the current teleport target, if any.
func (o *Overlay) Target() (Target, bool) {
	return o.target, o.hasTarget
}

func (o *Overlay) recharge(now float64) {
	for o.charging && now >= o.nextCharge {
		o.charges++
		if o.charges >= o.cfg.MaxCharges {
			o.charges, o.charging = o.cfg.MaxCharges, false
			return
		}
		o.nextCharge += float64(o.cfg.RechargeTime)
	}
}

func (o *Overlay) WantsToActivate(ctx *overlay.Context) bool {
	o.recharge(ctx.Time())
	if !ctx.Input().Pressed(input.ActionAim) {
		return false
	}
	if o.charges <= 0 {
		ctx.Log().Debugf("teleport aim ignored: no charges left")
		return false
	}
	return true
}

func (o *Overlay) Activate(ctx *overlay.Context) {
	o.target, o.hasTarget = o.finder.FindTarget(ctx, o.cfg.Range)
}

func (o *Overlay) Tick(ctx *overlay.Context, _ float32) {
	o.recharge(ctx.Time())
	in := ctx.Input()
	if in.Pressed(input.ActionCancel) || !in.Held(input.ActionAim) {
		ctx.Deactivate(ID)
		return
	}
	o.target, o.hasTarget = o.finder.FindTarget(ctx, o.cfg.Range)
	if !in.Pressed(input.ActionExecute) {
		return
	}
	if !o.hasTarget || o.charges <= 0 {
		ctx.Log().Debugf("teleport ignored: target=%v charges=%d", o.hasTarget, o.charges)
		return
	}

	o.charges--
	if !o.charging {
		o.charging = true
		o.nextCharge = ctx.Time() + float64(o.cfg.RechargeTime)
	}
	ctx.Request(overlay.Teleport{Position: o.target.Position, IsLedge: o.target.IsLedge, Source: ID})
}

func (o *Overlay) Deactivate(*overlay.Context) {
	o.target, o.hasTarget = Target{}, false
}

// RaycastFinder aims along the body's facing. Wall hits are converted to the top of the
// ledge above them where one exists.
type RaycastFinder struct {
	LedgeProbeHeight float32
}

func (f RaycastFinder) FindTarget(ctx *overlay.Context, maxRange float32) (Target, bool) {
	b := ctx.Body()
	capsule := b.Capsule()
	eye := b.Position().Add(game.Up.Mul(capsule.Height * 0.9))
	dir := game.ForwardOf(b.Rotation())

	hit, ok := b.Raycast(eye, dir, maxRange)
	if !ok {
		return Target{Position: b.Position().Add(dir.Mul(maxRange))}, true
	}
	if game.SlopeAngle(hit.Normal) <= game.MaxWalkableSlope {
		return Target{Position: hit.Point}, true
	}

	// Probe down from above the wall for a ledge to stand on.
	inset := hit.Point.Sub(game.Horizontal(hit.Normal).Mul(capsule.Radius))
	origin := inset.Add(game.Up.Mul(f.LedgeProbeHeight))
	if ledge, ok := b.Raycast(origin, game.Up.Mul(-1), f.LedgeProbeHeight); ok && game.SlopeAngle(ledge.Normal) <= game.MaxWalkableSlope {
		return Target{Position: ledge.Point, IsLedge: true}, true
	}
	back := hit.Point.Add(game.Horizontal(hit.Normal).Mul(capsule.Radius))
	return Target{Position: mgl32.Vec3{back.X(), b.Position().Y(), back.Z()}}, true
}
