package wallrun

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/anim"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/movement/movementtest"
)

func forward(jump bool) input.Snapshot {
	b := input.NewBuilder()
	b.SetMove(mgl32.Vec2{0, 1})
	if jump {
		b.Tap(input.ActionJump)
	}
	return b.Snapshot()
}

// besideWall returns a harness moving along +Z with a wall half a unit to its right.
func besideWall(vel mgl32.Vec3) *movementtest.Harness {
	h := movementtest.New()
	h.Body.Vel = vel
	h.Body.AddRay(mgl32.Vec3{1, 0, 0}, body.RaycastHit{
		Point:    mgl32.Vec3{0.5, 0.9, 0},
		Normal:   mgl32.Vec3{-1, 0, 0},
		Distance: 0.5,
	})
	h.Frame(forward(false), 0.0625)
	return h
}

func TestEntryConditions(t *testing.T) {
	tests := []struct {
		name string
		vel  mgl32.Vec3
		in   input.Snapshot
		air  bool
		want bool
	}{
		{name: "along wall", vel: mgl32.Vec3{0, 0, 6}, in: forward(false), want: true},
		{name: "shallow approach", vel: mgl32.Vec3{2, 0, 5}, in: forward(false), want: true},
		{name: "steep approach", vel: mgl32.Vec3{6, 0, 2}, in: forward(false)},
		{name: "too slow", vel: mgl32.Vec3{0, 0, 3}, in: forward(false)},
		{name: "no intent", vel: mgl32.Vec3{0, 0, 6}, in: input.Snapshot{}},
		{name: "airborne", vel: mgl32.Vec3{0, 0, 6}, in: forward(false), air: true},
		{name: "airborne jump", vel: mgl32.Vec3{0, 0, 6}, in: forward(true), air: true, want: true},
	}
	for _, tt := range tests {
		h := besideWall(tt.vel)
		if tt.air {
			h.Body.Airborne()
		}
		h.Frame(tt.in, 0.0625)

		m := New(DefaultConfig())
		if got := m.WantsToActivate(h.Ctx); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestIgnoresFloorLikeSurfaces(t *testing.T) {
	h := movementtest.New()
	h.Body.Vel = mgl32.Vec3{0, 0, 6}
	h.Body.AddRay(mgl32.Vec3{1, 0, 0}, body.RaycastHit{Normal: mgl32.Vec3{-0.5, 0.8, 0}.Normalize(), Distance: 0.5})
	h.Frame(forward(false), 0.0625)
	if New(DefaultConfig()).WantsToActivate(h.Ctx) {
		t.Fatalf("expected a sloped surface to not count as a wall")
	}
}

func TestRunVelocity(t *testing.T) {
	h := besideWall(mgl32.Vec3{0, 0, 6})
	m := New(DefaultConfig())
	m.OnEnterState(h.Ctx)
	if m.Wall().Side != anim.WallRight || h.Anim.WallRunning != anim.WallRight {
		t.Fatalf("expected a wall on the right, got %v", m.Wall().Side)
	}
	if h.Ctx.Char.Gravity {
		t.Fatalf("expected gravity to be suspended while running")
	}

	h.Step(m, 0.0625)
	want := mgl32.Vec3{2, 3 - 20*(1-0.85)*0.0625, 8}
	for i := range want {
		if !game.Float32ApproxEq(game.Round32(h.Body.Vel[i], 4), game.Round32(want[i], 4)) {
			t.Fatalf("expected velocity %v, got %v", want, h.Body.Vel)
		}
	}

	// The entry lift only applies once.
	h.Body.Vel[1] = 0
	h.Step(m, 0.0625)
	if h.Body.Vel.Y() >= 0 {
		t.Fatalf("expected compensated gravity to pull down slowly, got %v", h.Body.Vel)
	}
}

func TestSteeringAwayStopsAdhesion(t *testing.T) {
	h := besideWall(mgl32.Vec3{0, 0, 6})
	m := New(DefaultConfig())
	m.OnEnterState(h.Ctx)

	b := input.NewBuilder()
	b.SetMove(mgl32.Vec2{-1, 0.5})
	h.Frame(b.Snapshot(), 0.0625)
	h.Step(m, 0.0625)
	if h.Body.Vel.X() != 0 {
		t.Fatalf("expected no pull towards the wall, got %v", h.Body.Vel)
	}
}

func TestStandardGravity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StandardGravity = true
	h := besideWall(mgl32.Vec3{0, 0, 6})
	h.Body.Airborne()
	h.Frame(forward(true), 0.0625)
	m := New(cfg)
	m.OnEnterState(h.Ctx)
	if !h.Ctx.Char.Gravity {
		t.Fatalf("expected gravity to stay enabled")
	}
	h.Step(m, 0.0625)
	if !game.Float32ApproxEq(h.Body.Vel.Y(), -1.25) {
		t.Fatalf("expected full gravity, got %v", h.Body.Vel)
	}
}

func TestWallJump(t *testing.T) {
	h := besideWall(mgl32.Vec3{0, 0, 6})
	h.Frame(forward(true), 0.0625)
	m := New(DefaultConfig())
	m.OnEnterState(h.Ctx)

	m.Tick(h.Ctx, 0.0625)
	if len(h.Facade.Jumps) != 0 {
		t.Fatalf("expected the entry jump press to be ignored")
	}

	h.Frame(forward(true), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if len(h.Facade.Jumps) != 1 {
		t.Fatalf("expected a wall jump, got %d requests", len(h.Facade.Jumps))
	}
	req := h.Facade.Jumps[0]
	if !req.Wall || req.Bullet || req.WallNormal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("unexpected wall jump request %+v", req)
	}
	if _, ok := h.Ctx.Char.Mail.TakeAirborneState(); ok {
		t.Fatalf("expected no forced falling state after a wall jump")
	}
	if d := h.Facade.Deactivations; len(d) != 1 || d[0].Reason != "jump" {
		t.Fatalf("unexpected deactivations %+v", d)
	}
}

func TestForceBulletJump(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ForceBulletJump = true
	h := besideWall(mgl32.Vec3{0, 0, 6})
	m := New(cfg)
	m.OnEnterState(h.Ctx)

	h.Frame(forward(true), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if len(h.Facade.Jumps) != 1 || !h.Facade.Jumps[0].Bullet || !h.Facade.Jumps[0].Wall {
		t.Fatalf("expected a bullet wall jump, got %+v", h.Facade.Jumps)
	}
}

func TestExitsFallWithCooldown(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(h *movementtest.Harness)
		in     input.Snapshot
		dt     float32
		reason string
	}{
		{name: "wall lost", setup: func(h *movementtest.Harness) { h.Body.ClearRays() }, in: forward(false), dt: 0.0625, reason: "wall lost"},
		{name: "timeout", in: forward(false), dt: 2, reason: "timeout"},
		{name: "momentum", in: input.Snapshot{}, dt: 0.0625, reason: "momentum lost"},
		{name: "grounded", in: forward(false), dt: 0.25, reason: "grounded"},
	}
	for _, tt := range tests {
		h := besideWall(mgl32.Vec3{0, 0, 6})
		m := New(DefaultConfig())
		m.OnEnterState(h.Ctx)
		if tt.setup != nil {
			tt.setup(h)
		}

		h.Frame(tt.in, tt.dt)
		m.Tick(h.Ctx, tt.dt)
		if d := h.Facade.Deactivations; len(d) != 1 || d[0].Reason != tt.reason {
			t.Fatalf("%s: unexpected deactivations %+v", tt.name, d)
		}
		if s, ok := h.Ctx.Char.Mail.TakeAirborneState(); !ok || s != movement.StateFalling {
			t.Fatalf("%s: expected falling to be forced", tt.name)
		}

		m.OnExitState(h.Ctx)
		if !m.Exiting() || !h.Ctx.Char.Gravity {
			t.Fatalf("%s: expected the exit cooldown and gravity to be restored", tt.name)
		}
		h.Frame(forward(false), 0.0625)
		if m.WantsToActivate(h.Ctx) {
			t.Fatalf("%s: expected re-entry to be suppressed during the cooldown", tt.name)
		}
	}
}

func TestGroundGrace(t *testing.T) {
	h := besideWall(mgl32.Vec3{0, 0, 6})
	m := New(DefaultConfig())
	m.OnEnterState(h.Ctx)

	h.Frame(forward(false), 0.125)
	m.Tick(h.Ctx, 0.125)
	if len(h.Facade.Deactivations) != 0 {
		t.Fatalf("expected ground contact to be ignored right after entry, got %+v", h.Facade.Deactivations)
	}
}
