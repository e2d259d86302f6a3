package airborne

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/movement/movementtest"
)

func jumpPress() input.Snapshot {
	b := input.NewBuilder()
	b.Tap(input.ActionJump)
	return b.Snapshot()
}

func enterFalling(t *testing.T, cfg Config) (*Module, *movementtest.Harness) {
	h := movementtest.New()
	h.Body.Airborne()
	h.Observe()

	m := New(cfg)
	if !m.WantsToActivate(h.Ctx) {
		t.Fatalf("expected airborne module to want control without ground")
	}
	m.OnEnterState(h.Ctx)
	if m.State() != movement.StateFalling {
		t.Fatalf("expected falling, got %v", m.State())
	}
	return m, h
}

func TestEnterWithJumpRequest(t *testing.T) {
	h := movementtest.New()
	m := New(DefaultConfig())

	h.Ctx.Facade.ExecuteJump(movement.JumpRequest{})
	if !m.WantsToActivate(h.Ctx) {
		t.Fatalf("expected a pending jump to make the module want control")
	}
	m.OnEnterState(h.Ctx)
	if m.State() != movement.StateJumping {
		t.Fatalf("expected jumping, got %v", m.State())
	}
	if !h.Ctx.Char.Jump.JumpConsumed || h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("unexpected jump flags %+v", h.Ctx.Char.Jump)
	}
	if h.Anim.Jumps != 1 {
		t.Fatalf("expected one jump trigger, got %d", h.Anim.Jumps)
	}

	h.Step(m, 0.25)
	// Walk tier regular jump: up 7, forward 0.5 along facing, then a quarter second of gravity.
	if !game.Float32ApproxEq(h.Body.Vel.Y(), 2) || !game.Float32ApproxEq(h.Body.Vel.Z(), 0.5) {
		t.Fatalf("unexpected launch velocity %v", h.Body.Vel)
	}
}

func TestJumpTierFromGroundedSpeed(t *testing.T) {
	h := movementtest.New()
	m := New(DefaultConfig())
	h.Ctx.Char.Jump.LastGroundedSpeed = 9

	h.Ctx.Facade.ExecuteJump(movement.JumpRequest{})
	m.OnEnterState(h.Ctx)
	h.Step(m, 0.125)
	// Sprint tier: up 8 minus 2.5 of gravity.
	if !game.Float32ApproxEq(h.Body.Vel.Y(), 5.5) || !game.Float32ApproxEq(h.Body.Vel.Z(), 1.5) {
		t.Fatalf("unexpected sprint launch velocity %v", h.Body.Vel)
	}
}

func TestCoyoteJump(t *testing.T) {
	m, h := enterFalling(t, DefaultConfig())

	h.Frame(jumpPress(), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if m.State() != movement.StateJumping {
		t.Fatalf("expected coyote jump inside the grace window, got %v", m.State())
	}
	if h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("expected coyote jump to leave the double jump armed")
	}
}

func TestCoyoteWindowBoundary(t *testing.T) {
	tests := []struct {
		name   string
		coyote float32
		dt     float32
		ticks  int
	}{
		{"sixteenth", 0.125, 0.0625, 2},
		{"fifty hertz", 0.1, 0.02, 5},
		{"sixty hertz", 0.1, float32(1.0 / 60), 6},
		{"twenty hertz", 0.15, 0.05, 3},
	}
	for _, test := range tests {
		cfg := DefaultConfig()
		cfg.CoyoteTime = test.coyote

		// A press on the tick the window closes still counts as a ground jump.
		m, h := enterFalling(t, cfg)
		for i := 1; i < test.ticks; i++ {
			h.Frame(input.Snapshot{}, test.dt)
			m.Tick(h.Ctx, test.dt)
		}
		h.Frame(jumpPress(), test.dt)
		m.Tick(h.Ctx, test.dt)
		if m.State() != movement.StateJumping || h.Ctx.Char.Jump.DoubleJumpConsumed {
			t.Fatalf("%s: expected a coyote jump at the boundary, got %v %+v", test.name, m.State(), h.Ctx.Char.Jump)
		}

		// One tick later the ground jump is gone and the press becomes the double jump.
		m, h = enterFalling(t, cfg)
		for i := 0; i < test.ticks; i++ {
			h.Frame(input.Snapshot{}, test.dt)
			m.Tick(h.Ctx, test.dt)
		}
		h.Frame(jumpPress(), test.dt)
		m.Tick(h.Ctx, test.dt)
		if m.State() != movement.StateDoubleJumping || !h.Ctx.Char.Jump.DoubleJumpConsumed {
			t.Fatalf("%s: expected a double jump one tick after the boundary, got %v %+v", test.name, m.State(), h.Ctx.Char.Jump)
		}
	}
}

func TestCrouchHandoffReleasedOnEntry(t *testing.T) {
	h := movementtest.New()
	h.Body.Airborne()
	h.Observe()
	m := New(DefaultConfig())

	h.Ctx.Char.Crouched = true
	h.Body.Cap.Height = 1
	h.Ctx.Char.Mail.PostStartCrouched()
	m.OnEnterState(h.Ctx)
	if h.Ctx.Char.Crouched || h.Body.Cap != h.Ctx.Char.NeutralCapsule {
		t.Fatalf("expected the capsule to stand up, got %+v", h.Body.Cap)
	}
	if h.Ctx.Char.Mail.TakeStartCrouched() {
		t.Fatalf("expected the crouch handoff to be dropped")
	}
}

func TestCoyoteExpiresIntoDoubleJump(t *testing.T) {
	m, h := enterFalling(t, DefaultConfig())

	for i := 0; i < 3; i++ {
		h.Frame(input.Snapshot{}, 0.0625)
		m.Tick(h.Ctx, 0.0625)
	}
	if !h.Ctx.Char.Jump.JumpConsumed {
		t.Fatalf("expected the ground jump to be forfeited after the coyote window")
	}

	h.Frame(jumpPress(), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if m.State() != movement.StateDoubleJumping || !h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("expected a double jump, got %v %+v", m.State(), h.Ctx.Char.Jump)
	}

	h.Step(m, 0.0625)
	h.Frame(jumpPress(), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if !game.Float32ApproxEq(h.Ctx.Char.Jump.BufferedJump, DefaultConfig().JumpBufferTime) {
		t.Fatalf("expected the third jump press to be buffered, got %v", h.Ctx.Char.Jump.BufferedJump)
	}
}

func TestDoubleJumpDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DoubleJumpEnabled = false
	m, h := enterFalling(t, cfg)
	h.Ctx.Char.Jump.JumpConsumed = true

	h.Frame(jumpPress(), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if m.State() != movement.StateFalling {
		t.Fatalf("expected no double jump when disabled, got %v", m.State())
	}
}

func TestDoubleJumpNeedsNoGround(t *testing.T) {
	m, h := enterFalling(t, DefaultConfig())
	h.Ctx.Char.Jump.JumpConsumed = true
	h.Body.Ground.FoundAnyGround = true

	h.Frame(jumpPress(), 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if m.State() != movement.StateFalling {
		t.Fatalf("expected no double jump with ground detected, got %v", m.State())
	}
}

func TestDemoteToFalling(t *testing.T) {
	h := movementtest.New()
	m := New(DefaultConfig())
	h.Body.Vel = mgl32.Vec3{0, -5, 0}
	h.Observe()

	h.Ctx.Facade.ExecuteJump(movement.JumpRequest{})
	m.OnEnterState(h.Ctx)
	m.Tick(h.Ctx, 0.0625)
	if m.State() != movement.StateJumping {
		t.Fatalf("expected no demotion on the jump tick, got %v", m.State())
	}

	h.Step(m, 0.0625)
	h.Body.Airborne()
	h.Body.Vel = mgl32.Vec3{0, -1, 0}
	h.Frame(input.Snapshot{}, 0.0625)
	m.Tick(h.Ctx, 0.0625)
	if m.State() != movement.StateFalling {
		t.Fatalf("expected demotion once falling, got %v", m.State())
	}
}

func TestLandingRequestsDeactivation(t *testing.T) {
	m, h := enterFalling(t, DefaultConfig())
	ground := float32(0)
	h.Body.GroundY = &ground
	h.Body.Pos = mgl32.Vec3{0, 0.1, 0}
	h.Body.Vel = mgl32.Vec3{0, -5, 0}
	h.Ctx.Char.Jump.JumpConsumed = true
	h.Ctx.Char.Jump.DoubleJumpConsumed = true

	h.Step(m, 0.0625)
	if !h.Facade.Deactivated(movement.TagAirborne) {
		t.Fatalf("expected landing to request deactivation")
	}
	if h.Ctx.Char.Jump.JumpConsumed || h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("expected landing to re-arm jumps, got %+v", h.Ctx.Char.Jump)
	}
	if h.Anim.Lands != 1 {
		t.Fatalf("expected one land trigger, got %d", h.Anim.Lands)
	}

	h.Step(m, 0.0625)
	if len(h.Facade.Deactivations) != 1 {
		t.Fatalf("expected a single landing request, got %d", len(h.Facade.Deactivations))
	}
}

func TestSpecialJumpKeepsFlagsOnExit(t *testing.T) {
	h := movementtest.New()
	m := New(DefaultConfig())

	h.Ctx.Facade.ExecuteJump(movement.JumpRequest{Bullet: true})
	m.OnEnterState(h.Ctx)
	if m.State() != movement.StateBulletJumping {
		t.Fatalf("expected bullet jumping, got %v", m.State())
	}
	m.OnExitState(h.Ctx)
	if !h.Ctx.Char.Jump.JumpConsumed || !h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("expected bullet jump flags to survive exit, got %+v", h.Ctx.Char.Jump)
	}

	h.Ctx.Facade.ExecuteJump(movement.JumpRequest{})
	m.OnEnterState(h.Ctx)
	m.OnExitState(h.Ctx)
	if h.Ctx.Char.Jump.JumpConsumed || h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("expected plain jump flags to reset on exit, got %+v", h.Ctx.Char.Jump)
	}
}

func TestWallJumpPushesOutward(t *testing.T) {
	h := movementtest.New()
	m := New(DefaultConfig())

	h.Ctx.Facade.ExecuteJump(movement.JumpRequest{Wall: true, WallNormal: mgl32.Vec3{1, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}})
	m.OnEnterState(h.Ctx)
	if m.State() != movement.StateWallJumping {
		t.Fatalf("expected wall jumping, got %v", m.State())
	}
	if h.Ctx.Char.Jump.DoubleJumpConsumed {
		t.Fatalf("expected a plain wall jump to keep the double jump")
	}
	h.Step(m, 0.0625)
	if !game.Float32ApproxEq(h.Body.Vel.X(), 6) || !game.Float32ApproxEq(h.Body.Vel.Z(), 2) {
		t.Fatalf("unexpected wall jump velocity %v", h.Body.Vel)
	}
}

func TestForcedAirborneState(t *testing.T) {
	h := movementtest.New()
	h.Body.Airborne()
	h.Observe()
	m := New(DefaultConfig())

	h.Ctx.Char.Mail.PostAirborneState(movement.StateWallJumping)
	m.OnEnterState(h.Ctx)
	if m.State() != movement.StateWallJumping {
		t.Fatalf("expected forced sub-state, got %v", m.State())
	}
}
