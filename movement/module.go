package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// Module is one exclusive movement behaviour competing for control of the physics body.
// The Arbiter owns every lifecycle call: a module never activates itself or another module.
type Module interface {
	// Tag returns the unique tag of the module.
	Tag() Tag
	// Priority returns the static priority of the module. Higher wins.
	Priority() int
	// State returns the semantic state the module is currently in.
	State() State

	// WantsToActivate reports whether the module wants control this tick. It is called on
	// modules in descending priority order until one returns true, and must not change
	// arbitration state. Per-module timers may be read and updated.
	WantsToActivate(ctx *Context) bool
	// OnEnterState is called once when the module gains control. The module must be ready to
	// run physics when it returns.
	OnEnterState(ctx *Context)
	// OnExitState is called once when the module loses control. Exclusive resources changed
	// by the module are restored here unless handed off through the mailbox.
	OnExitState(ctx *Context)

	// Tick runs once per logic frame for every module, active or not.
	Tick(ctx *Context, dt float32)

	// UpdateRotation and UpdateVelocity run once per physics step while active, rotation first.
	UpdateRotation(ctx *Context, rot mgl32.Quat, dt float32) mgl32.Quat
	UpdateVelocity(ctx *Context, vel mgl32.Vec3, dt float32) mgl32.Vec3

	// BeforeCharacterUpdate runs before the physics integration step while active.
	BeforeCharacterUpdate(ctx *Context, dt float32)
	// PostGroundingUpdate runs after integration, once grounding is authoritative. Landing is
	// only ever detected here.
	PostGroundingUpdate(ctx *Context, dt float32)
	// AfterCharacterUpdate runs last in the physics step while active.
	AfterCharacterUpdate(ctx *Context, dt float32)

	// SpeedLimit returns the speed cap the controller enforces after UpdateVelocity.
	SpeedLimit(ctx *Context) SpeedLimit
}

// LimitMode selects how a SpeedLimit is applied to a velocity.
type LimitMode uint8

const (
	// LimitNone leaves the velocity untouched.
	LimitNone LimitMode = iota
	// LimitFlat clamps horizontal speed and leaves vertical speed untouched.
	LimitFlat
	// LimitSlope clamps the full velocity when it is aligned to a slope, and falls back to
	// LimitFlat elsewhere.
	LimitSlope
)

// SpeedLimit is a module's self-reported speed cap.
type SpeedLimit struct {
	Max  float32
	Mode LimitMode
}

// NoLimit is the zero SpeedLimit.
var NoLimit = SpeedLimit{}

// Apply clamps vel to the limit. onSlope is true while the body stands on a slope.
func (l SpeedLimit) Apply(vel mgl32.Vec3, onSlope bool) mgl32.Vec3 {
	switch l.Mode {
	case LimitFlat:
		return game.ClampHorizontal(vel, l.Max)
	case LimitSlope:
		if onSlope {
			return game.ClampLength(vel, l.Max)
		}
		return game.ClampHorizontal(vel, l.Max)
	}
	return vel
}

// Base implements every optional hook of Module as a no-op. Modules embed it and override
// what they need.
type Base struct{}

func (Base) OnEnterState(*Context) {}
func (Base) OnExitState(*Context) {}
func (Base) Tick(*Context, float32) {}

func (Base) UpdateRotation(_ *Context, rot mgl32.Quat, _ float32) mgl32.Quat {
	return rot
}

func (Base) UpdateVelocity(_ *Context, vel mgl32.Vec3, _ float32) mgl32.Vec3 {
	return vel
}

func (Base) BeforeCharacterUpdate(*Context, float32) {}
func (Base) PostGroundingUpdate(*Context, float32) {}
func (Base) AfterCharacterUpdate(*Context, float32) {}

func (Base) SpeedLimit(*Context) SpeedLimit {
	return NoLimit
}

// Timer is a named countdown a module exposes to UI and debug consumers.
type Timer struct {
	Name      string
	Remaining float32
}

// TimerReporter is implemented by modules that expose cooldowns or windows.
type TimerReporter interface {
	Timers() []Timer
}
