package overlay

import (
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/sirupsen/logrus"
)

type entry struct {
	overlay Overlay
	active  bool
}

// Coordinator runs the registered overlays in registration order. Changes requested while
// it iterates over the overlays are buffered and applied once the pass ends, deactivations
// before activations.
type Coordinator struct {
	entries *orderedmap.OrderedMap[string, *entry]

	iterating    bool
	toActivate   []string
	toDeactivate []string

	log *logrus.Logger
}

// NewCoordinator returns an empty coordinator. A nil logger discards output.
func NewCoordinator(log *logrus.Logger) *Coordinator {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Coordinator{
		entries: orderedmap.NewOrderedMap[string, *entry](),
		log:     log,
	}
}

// Register adds an inactive overlay.
func (c *Coordinator) Register(o Overlay) error {
	if o == nil {
		return oerror.Wrap(oerror.ErrInvalidConfig, "nil overlay")
	}
	if _, ok := c.entries.Get(o.ID()); ok {
		return oerror.Wrap(oerror.ErrDuplicateOverlay, "id %q", o.ID())
	}
	c.entries.Set(o.ID(), &entry{overlay: o})
	return nil
}

// Overlay returns the overlay registered with id.
func (c *Coordinator) Overlay(id string) (Overlay, bool) {
	e, ok := c.entries.Get(id)
	if !ok {
		return nil, false
	}
	return e.overlay, true
}

// IDs returns the ids of every registered overlay in registration order.
func (c *Coordinator) IDs() []string {
	return c.entries.Keys()
}

// Active returns true if the overlay with id is active.
func (c *Coordinator) Active(id string) bool {
	e, ok := c.entries.Get(id)
	return ok && e.active
}

// ActiveIDs returns the ids of the active overlays in registration order.
func (c *Coordinator) ActiveIDs() []string {
	var ids []string
	for el := c.entries.Front(); el != nil; el = el.Next() {
		if el.Value.active {
			ids = append(ids, el.Key)
		}
	}
	return ids
}

// Update ticks every active overlay and polls every inactive one.
func (c *Coordinator) Update(ctx *Context, dt float32) {
	c.iterating = true
	for el := c.entries.Front(); el != nil; el = el.Next() {
		e := el.Value
		if e.active {
			e.overlay.Tick(ctx, dt)
			continue
		}
		if e.overlay.WantsToActivate(ctx) {
			c.toActivate = append(c.toActivate, el.Key)
		}
	}
	c.iterating = false
	c.flush(ctx)
}

// ForceDeactivate deactivates the overlay with id. During a pass the deactivation is applied
// when the pass ends.
func (c *Coordinator) ForceDeactivate(ctx *Context, id string) {
	if !c.Active(id) {
		c.log.Debugf("ignored deactivation of inactive overlay %q", id)
		return
	}
	if c.iterating {
		c.toDeactivate = append(c.toDeactivate, id)
		return
	}
	c.deactivate(ctx, id)
}

// DeactivateAll deactivates every active overlay.
func (c *Coordinator) DeactivateAll(ctx *Context) {
	for _, id := range c.ActiveIDs() {
		c.ForceDeactivate(ctx, id)
	}
}

func (c *Coordinator) flush(ctx *Context) {
	deactivate, activate := c.toDeactivate, c.toActivate
	c.toDeactivate, c.toActivate = nil, nil

	for _, id := range deactivate {
		c.deactivate(ctx, id)
	}
	for _, id := range activate {
		e, ok := c.entries.Get(id)
		if !ok || e.active {
			continue
		}
		e.active = true
		e.overlay.Activate(ctx)
		c.log.Debugf("overlay %q activated", id)
	}
}

func (c *Coordinator) deactivate(ctx *Context, id string) {
	e, ok := c.entries.Get(id)
	if !ok || !e.active {
		return
	}
	e.active = false
	e.overlay.Deactivate(ctx)
	c.log.Debugf("overlay %q deactivated", id)
}
