// Package stick implements holding on to steep surfaces and crawling along them.
package stick

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
)

// Priority is the arbitration priority of the surface stick module.
const Priority = 40

// Module is the surface stick movement module.
type Module struct {
	movement.Base
	cfg Config

	active   bool
	surface  body.RaycastHit
	elapsed  float32
	cooldown float32
}

// New returns a surface stick module using cfg.
func New(cfg Config) *Module {
	return &Module{cfg: cfg}
}

func (m *Module) Tag() movement.Tag { return movement.TagStick }
func (m *Module) Priority() int { return Priority }
func (m *Module) State() movement.State { return movement.StateSticking }

// Surface returns the surface currently held.
func (m *Module) Surface() body.RaycastHit {
	return m.surface
}

func (m *Module) probe(ctx *movement.Context) (body.RaycastHit, bool) {
	dir := game.ForwardOf(ctx.Body.Rotation())
	if m.active {
		dir = game.SafeNormalize(m.surface.Normal.Mul(-1))
	}
	origin := ctx.Body.Position().Add(game.Up.Mul(ctx.Body.Capsule().Height * 0.5))
	hit, ok := ctx.Body.Raycast(origin, dir, m.cfg.Reach)
	if !ok || game.SlopeAngle(hit.Normal) < m.cfg.MinSurfaceAngle {
		return body.RaycastHit{}, false
	}
	return hit, true
}

func (m *Module) WantsToActivate(ctx *movement.Context) bool {
	if m.cooldown > 0 || ctx.World.IsGrounded || !ctx.Input.Held(input.ActionJump) {
		return false
	}
	_, ok := m.probe(ctx)
	return ok
}

func (m *Module) OnEnterState(ctx *movement.Context) {
	m.surface, _ = m.probe(ctx)
	m.active = true
	m.elapsed = 0
	ctx.ReleaseCrouchHandoff()
	ctx.Char.Gravity = false
	ctx.Anim.SetGrounded(false)
}

func (m *Module) OnExitState(ctx *movement.Context) {
	m.active = false
	m.cooldown = m.cfg.Cooldown
	ctx.Char.Gravity = true
}

func (m *Module) Tick(ctx *movement.Context, dt float32) {
	if m.cooldown > 0 {
		m.cooldown = max(0, m.cooldown-dt)
	}
	if !m.active {
		return
	}
	m.elapsed += dt
	in := ctx.Input

	hit, ok := m.probe(ctx)
	if ok {
		m.surface = hit
	}
	var reason string
	switch {
	case !ok:
		reason = "surface lost"
	case !in.Held(input.ActionJump):
		reason = "released"
	case in.Pressed(input.ActionCancel):
		reason = "cancelled"
	case ctx.World.IsGrounded:
		reason = "grounded"
	case m.elapsed >= m.cfg.MaxDuration:
		reason = "timeout"
	default:
		return
	}
	ctx.Facade.RequestDeactivation(movement.TagStick, reason)
}

// UpdateRotation faces the held surface.
func (m *Module) UpdateRotation(ctx *movement.Context, rot mgl32.Quat, _ float32) mgl32.Quat {
	ctx.Char.TakeYaw()
	in := game.SafeNormalize(game.Horizontal(m.surface.Normal.Mul(-1)))
	if in.LenSqr() == 0 {
		return rot
	}
	return game.YawRotation(mgl32.RadToDeg(math32.Atan2(in.X(), in.Z())))
}

// UpdateVelocity crawls along the surface plane. Forward input climbs, strafing moves
// sideways.
func (m *Module) UpdateVelocity(ctx *movement.Context, _ mgl32.Vec3, _ float32) mgl32.Vec3 {
	n := game.SafeNormalize(m.surface.Normal)
	side := game.RightOf(ctx.Body.Rotation())
	wish := side.Mul(ctx.Input.Move.X()).Add(game.Up.Mul(ctx.Input.Move.Y()))
	crawl := game.ClampLength(game.ProjectOnPlane(wish, n), 1).Mul(m.cfg.CrawlSpeed)
	return crawl.Sub(n.Mul(m.cfg.Pull))
}

func (m *Module) SpeedLimit(*movement.Context) movement.SpeedLimit {
	return movement.SpeedLimit{Max: m.cfg.CrawlSpeed + m.cfg.Pull, Mode: movement.LimitFlat}
}

// Timers reports the hold time left and the cooldown.
func (m *Module) Timers() []movement.Timer {
	left := float32(0)
	if m.active {
		left = max(0, m.cfg.MaxDuration-m.elapsed)
	}
	return []movement.Timer{
		{Name: "stick", Remaining: left},
		{Name: "stick_cooldown", Remaining: m.cooldown},
	}
}
