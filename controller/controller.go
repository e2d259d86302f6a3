// Package controller drives the movement arbiter and the overlay coordinator over a physics
// body, and exposes the derived movement state to gameplay code.
package controller

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/anim"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/overlay"
	"github.com/sirupsen/logrus"
)

type options struct {
	log       *logrus.Logger
	observers movement.Observers
	sink      anim.Sink
	def       movement.Tag
}

// Option configures a Controller.
type Option func(o *options)

// WithLogger sets the logger of the controller and everything it drives.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithObserver adds an observer notified of every movement transition.
func WithObserver(obs movement.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithAnimationSink sets the sink animation signals are sent to.
func WithAnimationSink(s anim.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithDefault sets the tag of the module taking control when nothing else wants it.
func WithDefault(t movement.Tag) Option {
	return func(o *options) {
		o.def = t
	}
}

// Controller owns one character. It is not safe for concurrent use: Update and FixedUpdate
// must be called from the same goroutine.
type Controller struct {
	body body.Body
	char *movement.Character
	log  *logrus.Logger
	anim anim.Sink

	ctx  *movement.Context
	octx *overlay.Context

	arbiter  *movement.Arbiter
	overlays *overlay.Coordinator

	deferred      []overlay.Action
	inOverlayPass bool

	published      bool
	publishedState movement.State
}

// New creates a controller over b. modules must contain the default module, which is the
// locomotion module unless WithDefault says otherwise.
func New(b body.Body, modules []movement.Module, overlays []overlay.Overlay, opts ...Option) (*Controller, error) {
	if b == nil {
		return nil, oerror.ErrMissingBody
	}
	o := options{def: movement.TagLocomotion}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.New()
		o.log.SetOutput(io.Discard)
	}
	if o.sink == nil {
		o.sink = anim.NopSink{}
	}

	c := &Controller{
		body: b,
		char: movement.NewCharacter(b.Capsule()),
		log:  o.log,
		anim: o.sink,
	}
	arbiter, err := movement.NewArbiter(modules, o.def, movement.WithLogger(o.log), movement.WithObserver(o.observers))
	if err != nil {
		return nil, err
	}
	c.arbiter = arbiter

	c.overlays = overlay.NewCoordinator(o.log)
	for _, ov := range overlays {
		if err := c.overlays.Register(ov); err != nil {
			return nil, err
		}
	}

	c.ctx = &movement.Context{
		Body:   b,
		Anim:   o.sink,
		Char:   c.char,
		Facade: c,
		Log:    o.log,
	}
	c.ctx.World = movement.Observe(b, movement.WorldState{})
	c.octx = overlay.NewContext(c.ctx, c, c.overlays)
	return c, nil
}

// Body returns the body the controller drives.
func (c *Controller) Body() body.Body {
	return c.body
}

// Character returns the shared character state.
func (c *Controller) Character() *movement.Character {
	return c.char
}

// Arbiter returns the movement arbiter.
func (c *Controller) Arbiter() *movement.Arbiter {
	return c.arbiter
}

// Overlays returns the overlay coordinator.
func (c *Controller) Overlays() *overlay.Coordinator {
	return c.overlays
}

// Logger returns the logger of the controller.
func (c *Controller) Logger() *logrus.Logger {
	return c.log
}

// Update runs one logic tick with the input of this frame.
func (c *Controller) Update(in input.Snapshot, dt float32) {
	assert.IsTrue(!c.arbiter.InPhysics(), "controller update called from inside a physics step")
	ctx := c.ctx
	ctx.Tick++
	ctx.Time += float64(dt)
	ctx.Input = in
	ctx.World = movement.Observe(c.body, ctx.World)
	c.char.PendingYaw += in.Look.X()

	c.arbiter.Update(ctx, dt)
	if _, ok := c.char.Mail.PeekJump(); ok {
		c.char.Mail.TakeJump()
		c.log.Debugf("dropped jump request nothing consumed")
	}

	c.inOverlayPass = true
	c.overlays.Update(c.octx, dt)
	c.inOverlayPass = false
	c.flush()

	if c.arbiter.Active() == nil {
		// An overlay forced the active module out. Resolve a successor now instead of
		// running the next physics step without one.
		c.arbiter.Evaluate(ctx)
	}
	c.char.Mail.Advance(dt)
	c.publish()
}

// FixedUpdate runs one physics step. Actions requested during the step are performed once
// it ends.
func (c *Controller) FixedUpdate(dt float32) {
	c.arbiter.FixedTick(c.ctx, dt, c.limitSpeed)
	c.flush()
}

// limitSpeed is the speed-limit pass applied to the velocity the active module produced.
func (c *Controller) limitSpeed(m movement.Module, vel mgl32.Vec3) mgl32.Vec3 {
	onSlope := c.body.Grounding().Stable && c.body.Slope().Angle > 1
	return m.SpeedLimit(c.ctx).Apply(vel, onSlope)
}

func (c *Controller) publish() {
	state := c.State()
	if c.published && state == c.publishedState {
		return
	}
	c.published, c.publishedState = true, state
	c.anim.SetMovementState(uint8(state))
}

// ActiveTag returns the tag of the module in control.
func (c *Controller) ActiveTag() movement.Tag {
	return c.arbiter.ActiveTag()
}

// State returns the semantic state of the module in control.
func (c *Controller) State() movement.State {
	if m := c.arbiter.Active(); m != nil {
		return m.State()
	}
	return movement.StateNone
}

func (c *Controller) IsSliding() bool {
	return c.ActiveTag() == movement.TagSlide
}

// IsCrouching is true while sliding or crouch walking.
func (c *Controller) IsCrouching() bool {
	switch c.ActiveTag() {
	case movement.TagSlide:
		return true
	case movement.TagLocomotion:
		return c.State() == movement.StateCrouching
	}
	return false
}

func (c *Controller) IsSprinting() bool {
	return c.ActiveTag() == movement.TagLocomotion && c.State() == movement.StateSprinting
}

func (c *Controller) IsWallRunning() bool {
	return c.ActiveTag() == movement.TagWallRun
}

func (c *Controller) IsAirborne() bool {
	return c.ActiveTag() == movement.TagAirborne
}

func (c *Controller) IsSticking() bool {
	return c.ActiveTag() == movement.TagStick
}

// IsGrounded is true while a grounded module is in control.
func (c *Controller) IsGrounded() bool {
	t := c.ActiveTag()
	return t == movement.TagLocomotion || t == movement.TagSlide
}
