package teleport

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement/movementtest"
	"github.com/oomph-ac/locomotion/overlay"
)

type recorder struct {
	actions []overlay.Action
}

func (r *recorder) Request(a overlay.Action) {
	r.actions = append(r.actions, a)
}

type fixedFinder struct {
	target Target
	ok     bool
	calls  int
}

func (f *fixedFinder) FindTarget(*overlay.Context, float32) (Target, bool) {
	f.calls++
	return f.target, f.ok
}

var (
	pressAim    = input.Of(mgl32.Vec2{}, map[input.Action]input.Button{input.ActionAim: {Pressed: true, Held: true}})
	holdAim     = input.Of(mgl32.Vec2{}, map[input.Action]input.Button{input.ActionAim: {Held: true}})
	executeAim  = input.Of(mgl32.Vec2{}, map[input.Action]input.Button{input.ActionAim: {Held: true}, input.ActionExecute: {Pressed: true, Held: true}})
	cancelAim   = input.Of(mgl32.Vec2{}, map[input.Action]input.Button{input.ActionAim: {Held: true}, input.ActionCancel: {Pressed: true, Held: true}})
	releasedAim = input.Of(mgl32.Vec2{}, map[input.Action]input.Button{input.ActionAim: {Released: true}})
)

type fixture struct {
	h      *movementtest.Harness
	c      *overlay.Coordinator
	ctx    *overlay.Context
	r      *recorder
	o      *Overlay
	finder *fixedFinder
}

func newFixture(t *testing.T) *fixture {
	h := movementtest.New()
	finder := &fixedFinder{target: Target{Position: mgl32.Vec3{0, 0, 10}}, ok: true}
	o := New(DefaultConfig(), finder)
	c := overlay.NewCoordinator(nil)
	if err := c.Register(o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := &recorder{}
	return &fixture{h: h, c: c, ctx: overlay.NewContext(h.Ctx, r, c), r: r, o: o, finder: finder}
}

func (f *fixture) frame(in input.Snapshot) {
	f.h.Frame(in, 0.25)
	f.c.Update(f.ctx, 0.25)
}

func TestTeleportExecuteRequestsTeleport(t *testing.T) {
	f := newFixture(t)
	f.frame(pressAim)
	if !f.c.Active(ID) {
		t.Fatalf("expected aim to activate the teleport")
	}
	if _, ok := f.o.Target(); !ok {
		t.Fatalf("expected a target after activation")
	}

	f.frame(executeAim)
	if len(f.r.actions) != 1 {
		t.Fatalf("expected one request, got %d", len(f.r.actions))
	}
	tp, ok := f.r.actions[0].(overlay.Teleport)
	if !ok {
		t.Fatalf("expected a teleport action, got %T", f.r.actions[0])
	}
	if tp.Source != ID || tp.Position != f.finder.target.Position {
		t.Fatalf("unexpected teleport %+v", tp)
	}
	if f.o.Charges() != DefaultConfig().MaxCharges-1 {
		t.Fatalf("expected a charge to be used, got %d", f.o.Charges())
	}
}

func TestTeleportReleaseAndCancelDeactivate(t *testing.T) {
	f := newFixture(t)
	f.frame(pressAim)
	f.frame(holdAim)
	if !f.c.Active(ID) {
		t.Fatalf("expected the teleport to stay active while aiming")
	}
	f.frame(releasedAim)
	if f.c.Active(ID) {
		t.Fatalf("expected releasing aim to deactivate the teleport")
	}
	if _, ok := f.o.Target(); ok {
		t.Fatalf("expected the target to be cleared")
	}

	f.frame(pressAim)
	f.frame(cancelAim)
	if f.c.Active(ID) {
		t.Fatalf("expected cancel to deactivate the teleport")
	}
	if len(f.r.actions) != 0 {
		t.Fatalf("expected no teleport without execute, got %d", len(f.r.actions))
	}
}

func TestTeleportChargesRecharge(t *testing.T) {
	f := newFixture(t)
	f.frame(pressAim)
	f.frame(executeAim)
	f.frame(executeAim)
	if f.o.Charges() != 0 {
		t.Fatalf("expected no charges left, got %d", f.o.Charges())
	}
	f.frame(executeAim)
	if len(f.r.actions) != 2 {
		t.Fatalf("expected execute without charges to be ignored, got %d requests", len(f.r.actions))
	}
	f.frame(releasedAim)

	f.frame(pressAim)
	if f.c.Active(ID) {
		t.Fatalf("expected aim without charges to be ignored")
	}

	// The first charge was used at t=0.5 and comes back after the recharge time.
	for f.h.Ctx.Time < 4.5 {
		f.frame(input.Snapshot{})
	}
	if f.o.Charges() != 1 {
		t.Fatalf("expected one charge back at t=%v, got %d", f.h.Ctx.Time, f.o.Charges())
	}
	for f.h.Ctx.Time < 8.5 {
		f.frame(input.Snapshot{})
	}
	if f.o.Charges() != DefaultConfig().MaxCharges {
		t.Fatalf("expected full charges, got %d", f.o.Charges())
	}
}

func TestRaycastFinder(t *testing.T) {
	h := movementtest.New()
	ctx := overlay.NewContext(h.Ctx, nil, nil)
	finder := RaycastFinder{LedgeProbeHeight: 1.5}

	target, ok := finder.FindTarget(ctx, 10)
	if !ok || target.IsLedge || target.Position != (mgl32.Vec3{0, 0, 10}) {
		t.Fatalf("expected the point at full range without a hit, got %+v", target)
	}

	h.Body.AddRay(game.Forward, body.RaycastHit{Point: mgl32.Vec3{0, 1.6, 5}, Normal: mgl32.Vec3{0, 0, -1}, Distance: 5})
	target, _ = finder.FindTarget(ctx, 10)
	if target.IsLedge {
		t.Fatalf("expected no ledge without ground above the wall")
	}
	want := mgl32.Vec3{0, 0, 5 - game.DefaultCapsuleRadius}
	if !target.Position.ApproxEqual(want) {
		t.Fatalf("expected the target to back off the wall to %v, got %v", want, target.Position)
	}

	h.Body.AddRay(mgl32.Vec3{0, -1, 0}, body.RaycastHit{Point: mgl32.Vec3{0, 2, 5.35}, Normal: game.Up, Distance: 1})
	target, _ = finder.FindTarget(ctx, 10)
	if !target.IsLedge || target.Position != (mgl32.Vec3{0, 2, 5.35}) {
		t.Fatalf("expected the ledge above the wall, got %+v", target)
	}

	h.Body.ClearRays()
	h.Body.AddRay(game.Forward, body.RaycastHit{Point: mgl32.Vec3{0, 0.2, 4}, Normal: game.Up, Distance: 4})
	target, _ = finder.FindTarget(ctx, 10)
	if target.IsLedge || target.Position != (mgl32.Vec3{0, 0.2, 4}) {
		t.Fatalf("expected a walkable hit to be used directly, got %+v", target)
	}
}
