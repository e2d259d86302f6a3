// Package airborne implements the airborne module: falling and the jump sub-state machine
// covering regular, coyote, double, wall and bullet jumps.
package airborne

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
)

// Priority is the arbitration priority of the airborne module.
const Priority = 10

type launch struct {
	kind movement.JumpKind
	tier movement.SpeedTier
	req  movement.JumpRequest
}

// Module is the airborne movement module.
type Module struct {
	movement.Base
	cfg Config

	active bool
	state  movement.State
	// special is true if the airborne phase was entered by a wall or bullet jump.
	special bool
	landed  bool

	// impulse is the launch waiting for the next physics step.
	impulse  *launch
	jumped   bool
	jumpTick uint64

	coyoteLeft, bufferLeft float32
}

// New returns an airborne module using cfg.
func New(cfg Config) *Module {
	return &Module{cfg: cfg, state: movement.StateFalling}
}

// Config returns the configuration of the module.
func (m *Module) Config() Config {
	return m.cfg
}

func (m *Module) Tag() movement.Tag { return movement.TagAirborne }
func (m *Module) Priority() int { return Priority }
func (m *Module) State() movement.State { return m.state }

// WantsToActivate returns true while a jump is pending or the body has no stable ground.
func (m *Module) WantsToActivate(ctx *movement.Context) bool {
	if _, ok := ctx.Char.Mail.PeekJump(); ok {
		return true
	}
	return !ctx.World.IsGrounded
}

func (m *Module) OnEnterState(ctx *movement.Context) {
	m.active, m.landed, m.special = true, false, false
	m.impulse, m.jumped = nil, false
	ctx.ReleaseCrouchHandoff()
	ctx.Anim.SetGrounded(false)

	if req, ok := ctx.Char.Mail.TakeJump(); ok {
		ctx.Char.Mail.TakeAirborneState()
		m.special = req.Kind().Special()
		m.launch(ctx, req.Kind(), req)
		return
	}
	if s, ok := ctx.Char.Mail.TakeAirborneState(); ok && s.Airborne() {
		m.state = s
		return
	}
	m.state = movement.StateFalling
}

func (m *Module) OnExitState(ctx *movement.Context) {
	m.active = false
	m.impulse = nil
	if !m.special {
		// Plain falls and jumps re-arm right away so chaining into another module does not
		// lose the double jump.
		ctx.Char.Jump.ResetConsumed()
	}
}

// Tick advances the coyote and jump buffer timers every frame, and handles jump input while
// the module is active.
func (m *Module) Tick(ctx *movement.Context, dt float32) {
	j := &ctx.Char.Jump
	defer m.report(j)
	if j.BufferedJump > 0 {
		j.BufferedJump = max(0, j.BufferedJump-dt)
	}
	if ctx.World.IsGrounded {
		j.TimeSinceLastAbleToJump = 0
	} else {
		j.TimeSinceLastAbleToJump += dt
		if j.TimeSinceLastAbleToJump > m.cfg.CoyoteTime && !j.JumpConsumed {
			j.JumpConsumed = true
		}
	}
	if !m.active {
		return
	}

	if ctx.Input.Pressed(input.ActionJump) && !m.jumpedThisTick(ctx) {
		switch {
		case j.TimeSinceLastAbleToJump <= m.cfg.CoyoteTime && !j.JumpConsumed:
			m.launch(ctx, movement.JumpRegular, movement.JumpRequest{})
		case j.JumpConsumed && !j.DoubleJumpConsumed && m.cfg.DoubleJumpEnabled && !ctx.World.FoundAnyGround:
			m.launch(ctx, movement.JumpDouble, movement.JumpRequest{})
		default:
			j.BufferJump(m.cfg.JumpBufferTime)
		}
	}

	if m.state != movement.StateFalling && !m.jumpedThisTick(ctx) && m.impulse == nil &&
		ctx.World.Velocity.Y() < -m.cfg.DemoteVelocity {
		m.state = movement.StateFalling
	}
}

func (m *Module) report(j *movement.JumpState) {
	m.coyoteLeft, m.bufferLeft = 0, j.BufferedJump
	if !j.JumpConsumed {
		m.coyoteLeft = max(0, m.cfg.CoyoteTime-j.TimeSinceLastAbleToJump)
	}
}

func (m *Module) jumpedThisTick(ctx *movement.Context) bool {
	return m.jumped && m.jumpTick == ctx.Tick
}

func (m *Module) launch(ctx *movement.Context, kind movement.JumpKind, req movement.JumpRequest) {
	j := &ctx.Char.Jump
	j.JumpConsumed = true
	if kind == movement.JumpDouble || kind == movement.JumpBullet {
		j.DoubleJumpConsumed = true
	}
	j.BufferedJump = 0

	m.state = kind.State()
	m.impulse = &launch{kind: kind, tier: m.cfg.Tier(j.LastGroundedSpeed), req: req}
	m.jumped, m.jumpTick = true, ctx.Tick
	ctx.Anim.TriggerJump()
}

func (m *Module) UpdateRotation(ctx *movement.Context, rot mgl32.Quat, _ float32) mgl32.Quat {
	return ctx.Char.ApplyYaw(rot)
}

func (m *Module) UpdateVelocity(ctx *movement.Context, vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	if m.impulse != nil {
		vel = m.apply(ctx, vel, *m.impulse)
		m.impulse = nil
	}
	if ctx.Char.Gravity {
		vel[1] = max(vel[1]-m.cfg.Gravity*dt, -m.cfg.TerminalVelocity)
	}
	if !ctx.Input.HasMove() {
		return vel
	}

	hz := game.Horizontal(vel)
	limit := max(m.cfg.AirMaxSpeed, hz.Len())
	wish := game.MoveDirection(ctx.Body.Rotation(), ctx.Input.Move)
	hz = game.ClampLength(hz.Add(wish.Mul(m.cfg.AirAcceleration*dt)), limit)
	return mgl32.Vec3{hz.X(), vel.Y(), hz.Z()}
}

func (m *Module) apply(ctx *movement.Context, vel mgl32.Vec3, l launch) mgl32.Vec3 {
	speed := m.cfg.Jumps.Speed(l.kind, l.tier)
	up := speed.Up * multiplier(l.req.UpMultiplier)
	forward := speed.Forward * multiplier(l.req.ForwardMultiplier)

	dir := game.SafeNormalize(game.Horizontal(l.req.Direction))
	if dir.LenSqr() == 0 {
		if ctx.Input.HasMove() {
			dir = game.SafeNormalize(game.MoveDirection(ctx.Body.Rotation(), ctx.Input.Move))
		} else {
			dir = game.ForwardOf(ctx.Body.Rotation())
		}
	}

	hz := game.Horizontal(vel).Add(dir.Mul(forward))
	if l.req.Wall {
		hz = hz.Add(game.SafeNormalize(game.Horizontal(l.req.WallNormal)).Mul(m.cfg.WallJumpOutwardSpeed))
	}
	return mgl32.Vec3{hz.X(), up, hz.Z()}
}

func multiplier(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// PostGroundingUpdate detects landing once the physics step has settled grounding.
func (m *Module) PostGroundingUpdate(ctx *movement.Context, _ float32) {
	if m.landed || m.impulse != nil {
		return
	}
	if !ctx.Body.Grounding().Stable || ctx.Body.Velocity().Y() > 0 {
		return
	}
	m.landed = true
	ctx.Char.Jump.Land()
	ctx.Anim.SetGrounded(true)
	ctx.Anim.TriggerLand()
	ctx.Facade.RequestDeactivation(movement.TagAirborne, "landed")
}

func (m *Module) SpeedLimit(*movement.Context) movement.SpeedLimit {
	return movement.SpeedLimit{Max: m.cfg.MaxHorizontalSpeed, Mode: movement.LimitFlat}
}

// Timers reports the coyote window and the jump buffer.
func (m *Module) Timers() []movement.Timer {
	return []movement.Timer{
		{Name: "coyote", Remaining: m.coyoteLeft},
		{Name: "jump_buffer", Remaining: m.bufferLeft},
	}
}
