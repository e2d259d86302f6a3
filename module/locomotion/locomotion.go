// Package locomotion implements grounded movement: idling, walking, jogging, sprinting and
// crouching. It is the default module every other module falls back to.
package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
)

// Priority is the arbitration priority of the locomotion module.
const Priority = 0

// Module is the grounded locomotion module.
type Module struct {
	movement.Base
	cfg Config

	active bool
	state  movement.State
	speed  game.Smoother
	// dir is the last horizontal direction of travel, kept so the character decelerates
	// along it once input is released.
	dir mgl32.Vec3
}

// New returns a locomotion module using cfg.
func New(cfg Config) *Module {
	return &Module{cfg: cfg, state: movement.StateIdle, speed: game.Smoother{Rate: cfg.Acceleration}}
}

func (m *Module) Tag() movement.Tag { return movement.TagLocomotion }
func (m *Module) Priority() int { return Priority }
func (m *Module) State() movement.State { return m.state }

// Speed returns the current smoothed ground speed.
func (m *Module) Speed() float32 {
	return m.speed.Current
}

func (m *Module) WantsToActivate(ctx *movement.Context) bool {
	return ctx.World.IsGrounded
}

func (m *Module) OnEnterState(ctx *movement.Context) {
	m.active = true
	ctx.Char.Mail.TakeAirborneState()

	vel := ctx.World.Velocity
	m.speed.Snap(game.HorizontalSpeed(vel))
	m.dir = game.SafeNormalize(game.Horizontal(vel))
	if m.dir.LenSqr() == 0 {
		m.dir = game.ForwardOf(ctx.Body.Rotation())
	}

	m.setCrouched(ctx, ctx.Char.Mail.TakeStartCrouched())
	m.state = m.resolveState(ctx)
	ctx.Anim.SetGrounded(true)
}

func (m *Module) OnExitState(ctx *movement.Context) {
	m.active = false
	if ctx.Char.Crouched {
		m.setCrouched(ctx, false)
	}
}

func (m *Module) setCrouched(ctx *movement.Context, crouched bool) {
	if ctx.Char.Crouched == crouched {
		return
	}
	ctx.Char.Crouched = crouched
	c := ctx.Char.NeutralCapsule
	if crouched {
		c = body.Capsule{Height: m.cfg.CrouchHeight, Radius: c.Radius}
	}
	ctx.Body.SetCapsule(c)
	ctx.Anim.SetCrouching(crouched)
}

func (m *Module) Tick(ctx *movement.Context, _ float32) {
	if !m.active {
		return
	}
	in := ctx.Input
	if in.Held(input.ActionCrouch) != ctx.Char.Crouched {
		m.setCrouched(ctx, in.Held(input.ActionCrouch))
	}
	m.state = m.resolveState(ctx)
	m.speed.SetTarget(m.stateSpeed(in.HasMove()))

	ctx.Char.Jump.LastGroundedSpeed = ctx.World.HorizontalSpeed()
	if in.Pressed(input.ActionJump) || ctx.Char.Jump.TakeBufferedJump() {
		ctx.Facade.ExecuteJump(movement.JumpRequest{})
	}

	ctx.Anim.SetGrounded(true)
	ctx.Anim.SetLocomotionSpeeds(m.speed.Current/m.cfg.SprintSpeed, in.Move)
}

func (m *Module) resolveState(ctx *movement.Context) movement.State {
	in := ctx.Input
	switch {
	case ctx.Char.Crouched:
		return movement.StateCrouching
	case !in.HasMove():
		return movement.StateIdle
	case in.Held(input.ActionSprint):
		return movement.StateSprinting
	case in.Move.Len() >= m.cfg.JogThreshold:
		return movement.StateJogging
	}
	return movement.StateWalking
}

func (m *Module) stateSpeed(moving bool) float32 {
	switch m.state {
	case movement.StateCrouching:
		if moving {
			return m.cfg.CrouchSpeed
		}
		return 0
	case movement.StateWalking:
		return m.cfg.WalkSpeed
	case movement.StateJogging:
		return m.cfg.JogSpeed
	case movement.StateSprinting:
		return m.cfg.SprintSpeed
	}
	return 0
}

func (m *Module) UpdateRotation(ctx *movement.Context, rot mgl32.Quat, _ float32) mgl32.Quat {
	return ctx.Char.ApplyYaw(rot)
}

func (m *Module) UpdateVelocity(ctx *movement.Context, vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	if hz := game.HorizontalSpeed(vel); hz > m.speed.Current+game.SpeedEpsilon {
		// An external impulse sped the body up. Decelerate from there instead of snapping.
		m.speed.Current = hz
	}
	if ctx.Input.HasMove() {
		m.dir = game.SafeNormalize(game.MoveDirection(ctx.Body.Rotation(), ctx.Input.Move))
	}
	speed := m.speed.Advance(dt)
	return game.TangentForward(m.dir, ctx.Body.Slope().Normal).Mul(speed)
}

func (m *Module) SpeedLimit(*movement.Context) movement.SpeedLimit {
	return movement.SpeedLimit{Max: max(m.speed.Target, m.speed.Current), Mode: movement.LimitSlope}
}
