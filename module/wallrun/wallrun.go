// Package wallrun implements running along vertical walls and jumping off them.
package wallrun

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/anim"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
)

// Priority is the arbitration priority of the wall run module.
const Priority = 30

// Wall is a wall detected beside the body.
type Wall struct {
	Side   anim.WallSide
	Point  mgl32.Vec3
	Normal mgl32.Vec3
	// Tangent is the horizontal direction along the wall closest to the reference
	// direction it was computed from.
	Tangent mgl32.Vec3
}

// Module is the wall run movement module.
type Module struct {
	movement.Base
	cfg Config

	active    bool
	wall      Wall
	elapsed   float32
	cooldown  float32
	enterTick uint64
	lift      bool
}

// New returns a wall run module using cfg.
func New(cfg Config) *Module {
	return &Module{cfg: cfg}
}

func (m *Module) Tag() movement.Tag { return movement.TagWallRun }
func (m *Module) Priority() int { return Priority }
func (m *Module) State() movement.State { return movement.StateWallRunning }

// Wall returns the wall currently run along. It is only meaningful while running.
func (m *Module) Wall() Wall {
	return m.wall
}

// Exiting returns true during the cooldown window after a run ended.
func (m *Module) Exiting() bool {
	return !m.active && m.cooldown > 0
}

// Detect searches for a runnable wall on either side of the body. ref is the horizontal
// direction the tangent is aligned to.
func (m *Module) Detect(ctx *movement.Context, ref mgl32.Vec3) (Wall, bool) {
	rot := ctx.Body.Rotation()
	right := game.RightOf(rot)
	origin := ctx.Body.Position().Add(game.Up.Mul(ctx.Body.Capsule().Height * 0.5))

	sides := [...]struct {
		side anim.WallSide
		dir  mgl32.Vec3
	}{{anim.WallRight, right}, {anim.WallLeft, right.Mul(-1)}}
	if m.active && m.wall.Side == anim.WallLeft {
		sides[0], sides[1] = sides[1], sides[0]
	}

	for _, s := range sides {
		hit, ok := ctx.Body.Raycast(origin, s.dir, m.cfg.DetectionDistance)
		if !ok || math32.Abs(hit.Normal.Y()) >= game.WallNormalMaxY {
			continue
		}
		normal := game.SafeNormalize(game.Horizontal(hit.Normal))
		tangent := game.SafeNormalize(game.ProjectOnPlane(game.Horizontal(ref), normal))
		if tangent.LenSqr() == 0 {
			tangent = game.SafeNormalize(normal.Cross(game.Up))
		}
		return Wall{Side: s.side, Point: hit.Point, Normal: normal, Tangent: tangent}, true
	}
	return Wall{}, false
}

func (m *Module) WantsToActivate(ctx *movement.Context) bool {
	if m.cooldown > 0 {
		return false
	}
	in := ctx.Input
	if in.Move.Y() < m.cfg.MinForwardIntent {
		return false
	}
	if !ctx.World.IsGrounded && !in.Pressed(input.ActionJump) && !m.active {
		return false
	}
	vel := game.Horizontal(ctx.World.Velocity)
	if vel.Len() < m.cfg.MinEntrySpeed {
		return false
	}
	wall, ok := m.Detect(ctx, vel)
	if !ok {
		return false
	}
	return game.AngleBetween(vel, wall.Tangent) <= m.cfg.MaxEntryAngle
}

func (m *Module) OnEnterState(ctx *movement.Context) {
	m.active = true
	m.elapsed = 0
	m.enterTick = ctx.Tick
	m.lift = ctx.World.IsGrounded
	m.wall, _ = m.Detect(ctx, game.Horizontal(ctx.World.Velocity))
	ctx.ReleaseCrouchHandoff()

	ctx.Char.Gravity = m.cfg.StandardGravity
	ctx.Char.Jump.LastGroundedSpeed = m.cfg.RunSpeed
	ctx.Anim.SetGrounded(false)
	ctx.Anim.SetWallRunning(m.wall.Side)
}

func (m *Module) OnExitState(ctx *movement.Context) {
	m.active = false
	m.lift = false
	m.cooldown = m.cfg.ExitCooldown
	ctx.Char.Gravity = true
	ctx.Anim.SetWallRunning(anim.WallNone)
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

	wall, ok := m.Detect(ctx, m.wall.Tangent)
	if ok {
		m.wall = wall
	}
	switch {
	case in.Pressed(input.ActionJump) && ctx.Tick != m.enterTick:
		ctx.Facade.ExecuteJump(movement.JumpRequest{
			Wall:       true,
			Bullet:     m.cfg.ForceBulletJump,
			WallNormal: m.wall.Normal,
			Direction:  m.wall.Tangent,
		})
		ctx.Facade.RequestDeactivation(movement.TagWallRun, "jump")
	case !ok:
		m.fall(ctx, "wall lost")
	case m.elapsed >= m.cfg.MaxDuration:
		m.fall(ctx, "timeout")
	case in.Move.Y() < m.cfg.MinForwardIntent:
		m.fall(ctx, "momentum lost")
	case ctx.World.IsGrounded && m.elapsed > m.cfg.GroundGrace:
		m.fall(ctx, "grounded")
	}
}

func (m *Module) fall(ctx *movement.Context, reason string) {
	ctx.Char.Mail.PostAirborneState(movement.StateFalling)
	ctx.Facade.RequestDeactivation(movement.TagWallRun, reason)
}

// UpdateRotation faces the run direction. Look yaw is dropped while running.
func (m *Module) UpdateRotation(ctx *movement.Context, rot mgl32.Quat, _ float32) mgl32.Quat {
	ctx.Char.TakeYaw()
	if m.wall.Tangent.LenSqr() == 0 {
		return rot
	}
	return game.YawRotation(mgl32.RadToDeg(math32.Atan2(m.wall.Tangent.X(), m.wall.Tangent.Z())))
}

func (m *Module) UpdateVelocity(ctx *movement.Context, vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	vy := vel.Y()
	if m.lift {
		vy = max(vy, m.cfg.EntryLift)
		m.lift = false
	}
	g := m.cfg.Gravity
	if !m.cfg.StandardGravity {
		g *= 1 - m.cfg.GravityCompensation
	}
	vy -= g * dt

	hz := m.wall.Tangent.Mul(m.cfg.RunSpeed)
	wish := game.MoveDirection(ctx.Body.Rotation(), ctx.Input.Move)
	if wish.Dot(m.wall.Normal) <= m.cfg.SteerAwayThreshold {
		hz = hz.Sub(m.wall.Normal.Mul(m.cfg.AdhesionForce))
	}
	return mgl32.Vec3{hz.X(), vy, hz.Z()}
}

func (m *Module) SpeedLimit(*movement.Context) movement.SpeedLimit {
	return movement.SpeedLimit{Max: m.cfg.RunSpeed + m.cfg.AdhesionForce, Mode: movement.LimitFlat}
}

// Timers reports the run time left and the exit cooldown.
func (m *Module) Timers() []movement.Timer {
	left := float32(0)
	if m.active {
		left = max(0, m.cfg.MaxDuration-m.elapsed)
	}
	return []movement.Timer{
		{Name: "wallrun", Remaining: left},
		{Name: "wallrun_exit", Remaining: m.cooldown},
	}
}
