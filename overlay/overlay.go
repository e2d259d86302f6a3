package overlay

import (
	"io"

	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/sirupsen/logrus"
)

// Overlay is an optional ability running alongside the active movement module. Any number
// of overlays may be active at once. Overlays never touch the body directly: every mutation
// goes through Context.Request.
type Overlay interface {
	ID() string
	// WantsToActivate is polled every logic tick while the overlay is inactive.
	WantsToActivate(ctx *Context) bool
	Activate(ctx *Context)
	// Tick runs every logic tick while the overlay is active.
	Tick(ctx *Context, dt float32)
	Deactivate(ctx *Context)
}

// Context is the view of the current logic tick an overlay gets. The body can only be read;
// changes to it are requested as actions.
type Context struct {
	src *movement.Context

	requester Requester
	coord     *Coordinator
}

var discard = func() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}()

// NewContext returns a context reading the tick state from ctx. Actions are routed to r.
func NewContext(ctx *movement.Context, r Requester, c *Coordinator) *Context {
	return &Context{src: ctx, requester: r, coord: c}
}

// Input returns the input of the current logic tick.
func (ctx *Context) Input() input.Snapshot {
	return ctx.src.Input
}

// World returns the world state observed at the start of the current logic tick.
func (ctx *Context) World() movement.WorldState {
	return ctx.src.World
}

// Body returns a read-only view of the physics body, or nil if there is none.
func (ctx *Context) Body() body.View {
	if ctx.src.Body == nil {
		return nil
	}
	return body.ReadOnly(ctx.src.Body)
}

// ActiveTag returns the tag of the movement module in control.
func (ctx *Context) ActiveTag() movement.Tag {
	return ctx.src.ActiveTag()
}

func (ctx *Context) Tick() uint64 {
	return ctx.src.Tick
}

// Time returns the logical time in seconds.
func (ctx *Context) Time() float64 {
	return ctx.src.Time
}

func (ctx *Context) Log() *logrus.Logger {
	if ctx.src.Log == nil {
		return discard
	}
	return ctx.src.Log
}

// Request routes an action to the controller.
func (ctx *Context) Request(a Action) {
	if ctx.requester != nil {
		ctx.requester.Request(a)
	}
}

// Deactivate asks for the overlay with the given id to be deactivated once the current pass
// over the overlays ends.
func (ctx *Context) Deactivate(id string) {
	if ctx.coord != nil {
		ctx.coord.ForceDeactivate(ctx, id)
	}
}
