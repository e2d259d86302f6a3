// Package slide implements the crouch slide and its bullet jump exit.
package slide

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
)

// Priority is the arbitration priority of the slide module.
const Priority = 20

// Module is the slide movement module.
type Module struct {
	movement.Base
	cfg Config

	active bool
	// handoff is true when the slide ended with crouch held and the crouched capsule is left
	// to locomotion.
	handoff bool

	elapsed    float32
	cooldown   float32
	entrySpeed float32
	slopeBonus float32
	speed      float32
	dir        mgl32.Vec3
}

// New returns a slide module using cfg.
func New(cfg Config) *Module {
	cfg.FrictionCurve = cfg.FrictionCurve.Sorted()
	return &Module{cfg: cfg}
}

func (m *Module) Tag() movement.Tag { return movement.TagSlide }
func (m *Module) Priority() int { return Priority }
func (m *Module) State() movement.State { return movement.StateSliding }

// Speed returns the current slide speed.
func (m *Module) Speed() float32 {
	return m.speed
}

// WantsToActivate returns true on a slide initiation edge while every entry condition holds.
// An initiation edge seen during the cooldown is consumed.
func (m *Module) WantsToActivate(ctx *movement.Context) bool {
	mail := &ctx.Char.Mail
	if !ctx.Input.Pressed(input.ActionCrouch) && !mail.SlideLatched() {
		return false
	}
	if m.cooldown > 0 {
		mail.ConsumeSlide()
		return false
	}
	if !ctx.World.IsGrounded || ctx.World.SlopeAngle > m.cfg.MaxSlopeAngle {
		return false
	}
	minSpeed := m.cfg.MinEntrySpeed
	if ctx.Input.Held(input.ActionSprint) {
		minSpeed = m.cfg.MinEntrySpeedSprinting
	}
	return ctx.World.HorizontalSpeed() >= minSpeed
}

func (m *Module) OnEnterState(ctx *movement.Context) {
	m.active, m.handoff = true, false
	m.elapsed, m.slopeBonus = 0, 0
	ctx.Char.Mail.ConsumeSlide()
	ctx.Char.Mail.TakeStartCrouched()

	m.entrySpeed = ctx.World.HorizontalSpeed()
	m.speed = m.entrySpeed
	m.dir = game.SafeNormalize(game.Horizontal(ctx.World.Velocity))
	if m.dir.LenSqr() == 0 {
		m.dir = game.ForwardOf(ctx.Body.Rotation())
	}

	ctx.Char.Crouched = true
	ctx.Body.SetCapsule(body.Capsule{Height: m.cfg.CrouchHeight, Radius: ctx.Char.NeutralCapsule.Radius})
	ctx.Anim.SetSliding(true)
	ctx.Anim.SetCrouching(true)
}

func (m *Module) OnExitState(ctx *movement.Context) {
	m.active = false
	m.cooldown = m.cfg.Cooldown
	ctx.Anim.SetSliding(false)
	if !m.handoff {
		ctx.Char.Crouched = false
		ctx.Body.SetCapsule(ctx.Char.NeutralCapsule)
		ctx.Anim.SetCrouching(false)
	}
}

func (m *Module) Tick(ctx *movement.Context, dt float32) {
	in := ctx.Input
	if !m.active && in.Pressed(input.ActionCrouch) && m.cooldown <= 0 {
		ctx.Char.Mail.LatchSlide(m.cfg.InputBufferTime)
	}
	if m.cooldown > 0 {
		m.cooldown = max(0, m.cooldown-dt)
	}
	if !m.active {
		return
	}

	m.elapsed += dt
	ctx.Char.Jump.LastGroundedSpeed = m.speed

	switch {
	case in.Pressed(input.ActionJump):
		req := movement.JumpRequest{Direction: m.dir}
		if m.speed >= m.cfg.BulletJumpThreshold {
			req.Bullet = true
			req.UpMultiplier = m.cfg.BulletUpMultiplier
			req.ForwardMultiplier = m.cfg.BulletForwardMultiplier
		}
		ctx.Facade.ExecuteJump(req)
		m.exit(ctx, "jump")
	case in.Pressed(input.ActionCancel):
		m.exit(ctx, "cancelled")
	case !ctx.World.IsGrounded:
		m.exit(ctx, "surface lost")
	case m.elapsed >= m.cfg.MaxDuration:
		if in.Held(input.ActionCrouch) {
			m.handoff = true
			ctx.Char.Mail.PostStartCrouched()
		}
		m.exit(ctx, "timeout")
	}
}

func (m *Module) exit(ctx *movement.Context, reason string) {
	ctx.Facade.RequestDeactivation(movement.TagSlide, reason)
}

func (m *Module) UpdateRotation(ctx *movement.Context, rot mgl32.Quat, _ float32) mgl32.Quat {
	return ctx.Char.ApplyYaw(rot)
}

func (m *Module) UpdateVelocity(ctx *movement.Context, _ mgl32.Vec3, dt float32) mgl32.Vec3 {
	slope := ctx.Body.Slope()
	if slope.Angle > 1 {
		downhill := game.SafeNormalize(game.Horizontal(slope.Normal))
		align := m.dir.Dot(downhill)
		m.slopeBonus += align * m.cfg.SlopeAcceleration * math32.Sin(mgl32.DegToRad(slope.Angle)) * dt
	}

	t := float32(0)
	if m.cfg.MaxDuration > 0 {
		t = m.elapsed / m.cfg.MaxDuration
	}
	m.speed = max(m.cfg.MinExitSpeed, m.entrySpeed*m.cfg.FrictionCurve.Evaluate(t)+m.slopeBonus)
	return game.TangentForward(m.dir, slope.Normal).Mul(m.speed)
}

func (m *Module) SpeedLimit(*movement.Context) movement.SpeedLimit {
	return movement.SpeedLimit{Max: m.speed, Mode: movement.LimitSlope}
}

// Timers reports the slide duration left and the cooldown.
func (m *Module) Timers() []movement.Timer {
	left := float32(0)
	if m.active {
		left = max(0, m.cfg.MaxDuration-m.elapsed)
	}
	return []movement.Timer{
		{Name: "slide", Remaining: left},
		{Name: "slide_cooldown", Remaining: m.cooldown},
	}
}
