package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/anim"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/sirupsen/logrus"
)

// Facade is the narrow view of the controller modules use to signal intent without holding
// references to each other.
type Facade interface {
	// ExecuteJump posts a jump execution intent for the airborne module.
	ExecuteJump(req JumpRequest)
	// RequestDeactivation asks for the module with the given tag to lose control. It has
	// no effect unless that module is active.
	RequestDeactivation(tag Tag, reason string)
}

// Character is the per-character state shared between modules.
type Character struct {
	Jump JumpState
	Mail Mailbox

	// Crouched is true while the capsule is in its crouched shape.
	Crouched bool
	// Gravity is false while a module suspends gravity.
	Gravity bool

	// NeutralCapsule is the capsule modules restore when giving up control.
	NeutralCapsule body.Capsule

	// PendingYaw is the look yaw in degrees accumulated by logic ticks and not yet applied
	// by a physics step.
	PendingYaw float32
}

// NewCharacter returns shared state with gravity enabled and the given neutral capsule.
func NewCharacter(neutral body.Capsule) *Character {
	return &Character{Gravity: true, NeutralCapsule: neutral}
}

// RestoreNeutral resets the exclusive resources a module may have changed.
func (c *Character) RestoreNeutral(b body.Body) {
	c.Crouched = false
	c.Gravity = true
	b.SetCapsule(c.NeutralCapsule)
}

// TakeYaw returns the rotation matching the pending look yaw and clears it.
func (c *Character) TakeYaw() mgl32.Quat {
	yaw := c.PendingYaw
	c.PendingYaw = 0
	return game.YawRotation(yaw)
}

// ApplyYaw applies the pending look yaw to rot.
func (c *Character) ApplyYaw(rot mgl32.Quat) mgl32.Quat {
	return c.TakeYaw().Mul(rot).Normalize()
}

// Context is passed to every module call. Input and World are fixed for the whole logic
// tick.
type Context struct {
	Input input.Snapshot
	World WorldState

	Body   body.Body
	Anim   anim.Sink
	Char   *Character
	Facade Facade
	Log    *logrus.Logger

	// Tick counts logic ticks, Time is the logical time in seconds.
	Tick uint64
	Time float64

	active Tag
}

// ActiveTag returns the tag of the module in control.
func (ctx *Context) ActiveTag() Tag {
	return ctx.active
}

// IsActive returns true if the module with tag t is in control.
func (ctx *Context) IsActive(t Tag) bool {
	return t != TagNone && ctx.active == t
}

// ReleaseCrouchHandoff drops a crouch left by a slide for locomotion and stands the capsule
// back up. Modules other than locomotion call it when they gain control.
func (ctx *Context) ReleaseCrouchHandoff() {
	handoff := ctx.Char.Mail.TakeStartCrouched()
	if !handoff && !ctx.Char.Crouched {
		return
	}
	ctx.Char.Crouched = false
	ctx.Body.SetCapsule(ctx.Char.NeutralCapsule)
	if ctx.Anim != nil {
		ctx.Anim.SetCrouching(false)
	}
}
