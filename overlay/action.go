package overlay

import "github.com/go-gl/mathgl/mgl32"

// Action is a body mutation an overlay asks the controller to perform. The set of actions
// is closed.
type Action interface {
	// Requester returns the id of the overlay that issued the action.
	Requester() string
	action()
}

// Teleport moves the body to Position and stops it.
type Teleport struct {
	Position mgl32.Vec3
	// IsLedge is true if the target is the top of a ledge rather than open ground.
	IsLedge bool
	Source  string
}

func (t Teleport) Requester() string { return t.Source }
func (Teleport) action() {}

// StartDash adds an impulse of Speed along Direction to the body.
type StartDash struct {
	Direction mgl32.Vec3
	Speed     float32
	Source    string
}

func (d StartDash) Requester() string { return d.Source }
func (StartDash) action() {}

// Requester receives the actions overlays issue.
type Requester interface {
	Request(a Action)
}
