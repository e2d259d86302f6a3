package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/overlay"
)

// ExecuteJump posts a jump request and marks the arbitration stale so the airborne module
// can take over within the same logic tick.
func (c *Controller) ExecuteJump(req movement.JumpRequest) {
	c.char.Mail.PostJump(req)
	c.arbiter.Invalidate()
	c.log.Debugf("jump requested: %v", req.Kind())
}

// RequestDeactivation asks for the module with the given tag to give up control.
func (c *Controller) RequestDeactivation(tag movement.Tag, reason string) {
	c.arbiter.RequestDeactivation(tag, movement.CauseSelf, reason)
}

// ForceDeactivate removes the active module. Inside a physics step the removal is applied
// at the start of the next logic tick.
func (c *Controller) ForceDeactivate(reason string) {
	if c.arbiter.InPhysics() {
		c.arbiter.RequestDeactivation(c.arbiter.ActiveTag(), movement.CauseForced, reason)
		return
	}
	c.arbiter.ForceDeactivate(c.ctx, reason)
}

// StartCrouched makes the next locomotion phase start crouched.
func (c *Controller) StartCrouched() {
	c.char.Mail.PostStartCrouched()
}

// ConsumeSlideInitiation drops a latched slide request.
func (c *Controller) ConsumeSlideInitiation() {
	c.char.Mail.ConsumeSlide()
}

// ForceAirborneState sets the sub-state the next airborne phase starts in.
func (c *Controller) ForceAirborneState(s movement.State) {
	c.char.Mail.PostAirborneState(s)
}

// NotifyJumpConsumed marks the ground jump as used, so only a double jump is left.
func (c *Controller) NotifyJumpConsumed() {
	c.char.Jump.JumpConsumed = true
}

// Request performs an action issued by an overlay. Actions requested during a physics step
// or while overlays are being ticked are deferred until that pass ends.
func (c *Controller) Request(a overlay.Action) {
	if c.arbiter.InPhysics() || c.inOverlayPass {
		c.deferred = append(c.deferred, a)
		return
	}
	c.perform(a)
}

func (c *Controller) flush() {
	for len(c.deferred) > 0 {
		a := c.deferred[0]
		c.deferred = c.deferred[1:]
		c.perform(a)
	}
	c.deferred = nil
}

func (c *Controller) perform(a overlay.Action) {
	switch a := a.(type) {
	case overlay.Teleport:
		c.body.SetPosition(a.Position)
		c.body.SetVelocity(mgl32.Vec3{})
		c.log.Debugf("teleported to %v (ledge=%v)", a.Position, a.IsLedge)
	case overlay.StartDash:
		dir := game.SafeNormalize(game.Horizontal(a.Direction))
		if a.Speed <= 0 || dir.LenSqr() == 0 {
			c.log.Debugf("ignored dash from %q without direction or speed", a.Source)
			break
		}
		c.body.SetVelocity(c.body.Velocity().Add(dir.Mul(a.Speed)))
		c.log.Debugf("dash along %v at %v", dir, a.Speed)
	default:
		c.log.Warnf("unknown overlay action %T", a)
		return
	}
	c.overlays.ForceDeactivate(c.octx, a.Requester())
}
