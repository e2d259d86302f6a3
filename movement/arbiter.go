package movement

import (
	"io"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/sirupsen/logrus"
)

// VelocityFilter is applied to the velocity returned by the active module's UpdateVelocity
// before it is handed to the body.
type VelocityFilter func(m Module, vel mgl32.Vec3) mgl32.Vec3

// Option configures an Arbiter.
type Option func(a *Arbiter)

// WithObserver sets the observer notified of every transition.
func WithObserver(o Observer) Option {
	return func(a *Arbiter) {
		a.observer = o
	}
}

// WithLogger sets the logger the arbiter writes diagnostics to.
func WithLogger(log *logrus.Logger) Option {
	return func(a *Arbiter) {
		if log != nil {
			a.log = log
		}
	}
}

type removal struct {
	tag    Tag
	cause  Cause
	reason string
}

// Arbiter decides which single module controls the body. Exactly one module is active
// after every evaluation, except for the rest of a logic tick in which the default module
// removed itself.
type Arbiter struct {
	modules []Module
	def     Module

	active  Module
	desired Module

	// retired holds the modules that lost control during this logic tick. They are skipped
	// by polling until the next tick starts.
	retired map[Tag]struct{}
	pending []removal
	dirty   bool

	inPhysics  bool
	evaluating bool

	observer Observer
	log      *logrus.Logger
}

// NewArbiter creates an arbiter over modules. Modules are polled in descending priority,
// ties keep registration order. def is the tag of the module taking over when nothing else
// wants control.
func NewArbiter(modules []Module, def Tag, opts ...Option) (*Arbiter, error) {
	if len(modules) == 0 {
		return nil, oerror.ErrNoModules
	}

	a := &Arbiter{
		modules: make([]Module, len(modules)),
		retired: make(map[Tag]struct{}),
		log:     discardLogger(),
	}
	copy(a.modules, modules)

	seen := make(map[Tag]struct{}, len(modules))
	for _, m := range a.modules {
		if m == nil {
			return nil, oerror.Wrap(oerror.ErrInvalidConfig, "nil movement module")
		}
		if _, ok := seen[m.Tag()]; ok {
			return nil, oerror.Wrap(oerror.ErrDuplicateTag, "tag %v", m.Tag())
		}
		seen[m.Tag()] = struct{}{}
		if m.Tag() == def {
			a.def = m
		}
	}
	if a.def == nil {
		return nil, oerror.Wrap(oerror.ErrMissingDefault, "tag %v", def)
	}

	sort.SliceStable(a.modules, func(i, j int) bool {
		return a.modules[i].Priority() > a.modules[j].Priority()
	})
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Modules returns the registered modules in polling order.
func (a *Arbiter) Modules() []Module {
	return a.modules
}

// Module returns the module registered with tag t.
func (a *Arbiter) Module(t Tag) (Module, bool) {
	for _, m := range a.modules {
		if m.Tag() == t {
			return m, true
		}
	}
	return nil, false
}

// Active returns the module in control, or nil.
func (a *Arbiter) Active() Module {
	return a.active
}

// ActiveTag returns the tag of the module in control, or TagNone.
func (a *Arbiter) ActiveTag() Tag {
	if a.active == nil {
		return TagNone
	}
	return a.active.Tag()
}

// Desired returns the module that won the last poll, or nil if none wanted control.
func (a *Arbiter) Desired() Module {
	return a.desired
}

// IsActive returns true if the module with tag t is in control.
func (a *Arbiter) IsActive(t Tag) bool {
	return a.active != nil && a.active.Tag() == t
}

// InPhysics returns true while a physics step is running.
func (a *Arbiter) InPhysics() bool {
	return a.inPhysics
}

// Invalidate marks the current resolution stale so the arbiter evaluates again before the
// logic tick ends. It is used when a module posts a request another module reacts to.
func (a *Arbiter) Invalidate() {
	a.dirty = true
}

// Update runs a full logic tick: physics-phase removals are applied, modules are polled,
// every module is ticked, and removals requested while ticking are applied followed by a
// second evaluation.
//
// Only removals requested during this logic tick keep a module out of polling. A module
// that removed itself during a physics step may win again straight away, such as the
// airborne module taking a buffered jump right after landing.
func (a *Arbiter) Update(ctx *Context, dt float32) {
	assert.IsTrue(!a.inPhysics, "arbiter update called from inside a physics step")
	ctx.active = a.ActiveTag()

	a.drain(ctx)
	clear(a.retired)
	a.Evaluate(ctx)
	a.Tick(ctx, dt)
	if len(a.pending) > 0 || a.dirty {
		a.dirty = false
		a.drain(ctx)
		a.Evaluate(ctx)
	}
}

// Evaluate polls the modules and switches control if needed.
func (a *Arbiter) Evaluate(ctx *Context) {
	assert.IsTrue(!a.inPhysics, "arbiter evaluation called from inside a physics step")
	assert.IsTrue(!a.evaluating, "arbiter evaluation called recursively")
	a.evaluating = true
	defer func() { a.evaluating = false }()

	a.desired = nil
	for _, m := range a.modules {
		if _, ok := a.retired[m.Tag()]; ok {
			continue
		}
		if m.WantsToActivate(ctx) {
			a.desired = m
			break
		}
	}

	switch {
	case a.desired == nil && a.active == nil:
		if _, ok := a.retired[a.def.Tag()]; ok {
			// The default gave up control this tick and takes it back on the next one.
			a.log.Debugf("default module %v retired this tick, leaving control empty", a.def.Tag())
			return
		}
		a.switchTo(ctx, a.def, CauseFallback, "")
	case a.desired == nil || a.desired == a.active:
	case a.active == nil:
		a.switchTo(ctx, a.desired, CausePriority, "")
	case a.desired.Priority() > a.active.Priority():
		a.switchTo(ctx, a.desired, CausePriority, "")
	case a.desired.Priority() == a.active.Priority():
		a.switchTo(ctx, a.desired, CauseRetrigger, "")
	}
}

// Tick runs the per-frame logic of every module, active or not.
func (a *Arbiter) Tick(ctx *Context, dt float32) {
	assert.IsTrue(!a.inPhysics, "module tick called from inside a physics step")
	for _, m := range a.modules {
		m.Tick(ctx, dt)
	}
}

// FixedTick runs one physics step for the module active at the start of the step. Requests
// raised during the step are applied at the start of the next logic tick, before polling.
func (a *Arbiter) FixedTick(ctx *Context, dt float32, filter VelocityFilter) {
	assert.IsTrue(!a.inPhysics, "physics step started from inside a physics step")
	a.inPhysics = true
	defer func() { a.inPhysics = false }()

	m := a.active
	ctx.active = a.ActiveTag()
	if m == nil {
		ctx.Body.Integrate(dt)
		return
	}

	m.BeforeCharacterUpdate(ctx, dt)
	ctx.Body.SetRotation(m.UpdateRotation(ctx, ctx.Body.Rotation(), dt))
	vel := m.UpdateVelocity(ctx, ctx.Body.Velocity(), dt)
	if filter != nil {
		vel = filter(m, vel)
	}
	ctx.Body.SetVelocity(vel)
	ctx.Body.Integrate(dt)
	m.PostGroundingUpdate(ctx, dt)
	m.AfterCharacterUpdate(ctx, dt)
}

// RequestDeactivation queues the removal of the module with tag t. The request is dropped
// if that module is not in control.
func (a *Arbiter) RequestDeactivation(t Tag, cause Cause, reason string) {
	if !a.IsActive(t) {
		a.log.Debugf("ignored deactivation of inactive module %v (%s)", t, reason)
		return
	}
	for _, r := range a.pending {
		if r.tag == t {
			return
		}
	}
	a.pending = append(a.pending, removal{tag: t, cause: cause, reason: reason})
}

// ForceDeactivate removes the active module immediately. The next evaluation resolves a new
// module.
func (a *Arbiter) ForceDeactivate(ctx *Context, reason string) {
	assert.IsTrue(!a.inPhysics, "forced deactivation from inside a physics step")
	if a.active == nil {
		return
	}
	a.exit(ctx, CauseForced, reason)
}

func (a *Arbiter) drain(ctx *Context) {
	pending := a.pending
	a.pending = nil
	for _, r := range pending {
		if !a.IsActive(r.tag) {
			continue
		}
		a.exit(ctx, r.cause, r.reason)
	}
}

func (a *Arbiter) exit(ctx *Context, cause Cause, reason string) {
	old := a.active
	fromState := old.State()
	old.OnExitState(ctx)
	a.active = nil
	ctx.active = TagNone
	a.retired[old.Tag()] = struct{}{}

	a.emit(ctx, Transition{
		From:      old.Tag(),
		To:        TagNone,
		FromState: fromState,
		Cause:     cause,
		Reason:    reason,
	})
}

func (a *Arbiter) switchTo(ctx *Context, m Module, cause Cause, reason string) {
	t := Transition{To: m.Tag(), Cause: cause, Reason: reason}
	if old := a.active; old != nil {
		t.From, t.FromState = old.Tag(), old.State()
		old.OnExitState(ctx)
		a.retired[old.Tag()] = struct{}{}
	}
	a.active = m
	ctx.active = m.Tag()
	m.OnEnterState(ctx)
	t.ToState = m.State()
	a.emit(ctx, t)
}

func (a *Arbiter) emit(ctx *Context, t Transition) {
	t.Tick, t.Time = ctx.Tick, ctx.Time
	a.log.WithFields(logrus.Fields{
		"from":  t.From,
		"to":    t.To,
		"cause": t.Cause,
		"tick":  t.Tick,
	}).Debug("movement transition")
	if a.observer != nil {
		a.observer.OnTransition(t)
	}
}
