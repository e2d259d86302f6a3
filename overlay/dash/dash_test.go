package dash

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
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

func execute(move mgl32.Vec2, aim bool) input.Snapshot {
	b := input.NewBuilder()
	b.SetMove(move)
	if aim {
		b.Set(input.ActionAim, true)
	}
	b.Tap(input.ActionExecute)
	return b.Snapshot()
}

func TestDashRequestsImpulse(t *testing.T) {
	h := movementtest.New()
	r := &recorder{}
	c := overlay.NewCoordinator(nil)
	o := New(DefaultConfig())
	if err := c.Register(o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := overlay.NewContext(h.Ctx, r, c)

	h.Frame(execute(mgl32.Vec2{1, 0}, false), 0.1)
	c.Update(ctx, 0.1)
	if len(r.actions) != 1 {
		t.Fatalf("expected one dash request, got %d", len(r.actions))
	}
	d, ok := r.actions[0].(overlay.StartDash)
	if !ok || d.Source != ID || d.Speed != DefaultConfig().Speed {
		t.Fatalf("unexpected action %+v", r.actions[0])
	}
	if !game.Float32ApproxEq(d.Direction.X(), 1) {
		t.Fatalf("expected to dash along the move direction, got %v", d.Direction)
	}

	h.Frame(input.Snapshot{}, 0.1)
	c.Update(ctx, 0.1)
	if c.Active(ID) {
		t.Fatalf("expected the dash to end after its impulse")
	}
}

func TestDashCooldownAndAim(t *testing.T) {
	h := movementtest.New()
	r := &recorder{}
	o := New(DefaultConfig())
	ctx := overlay.NewContext(h.Ctx, r, nil)

	h.Frame(execute(mgl32.Vec2{}, true), 0.25)
	if o.WantsToActivate(ctx) {
		t.Fatalf("expected execute while aiming to be left to the teleport")
	}

	h.Frame(execute(mgl32.Vec2{}, false), 0.25)
	if !o.WantsToActivate(ctx) {
		t.Fatalf("expected execute to dash")
	}
	o.Activate(ctx)

	h.Frame(execute(mgl32.Vec2{}, false), 0.25)
	if o.WantsToActivate(ctx) {
		t.Fatalf("expected the cooldown to block a second dash")
	}
	for i := 0; i < 4; i++ {
		h.Frame(input.Snapshot{}, 0.25)
	}
	h.Frame(execute(mgl32.Vec2{}, false), 0.25)
	if !o.WantsToActivate(ctx) {
		t.Fatalf("expected a dash once the cooldown ran out")
	}
}
