// Package bodysim is a small kinematic body moving through a world of static boxes. It
// stands in for a physics engine in tools and integration tests.
package bodysim

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
)

// World is a set of static collision boxes. It is safe for concurrent use.
type World struct {
	mu    sync.RWMutex
	boxes []cube.BBox
}

// NewWorld returns a world containing boxes.
func NewWorld(boxes ...cube.BBox) *World {
	return &World{boxes: append([]cube.BBox(nil), boxes...)}
}

// Add adds a box to the world.
func (w *World) Add(bb cube.BBox) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.boxes = append(w.boxes, bb)
}

// Boxes returns a copy of every box in the world.
func (w *World) Boxes() []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]cube.BBox(nil), w.boxes...)
}

// Nearby returns the boxes intersecting bb.
func (w *World) Nearby(bb cube.BBox) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var list []cube.BBox
	for _, box := range w.boxes {
		if box.IntersectsWith(bb) {
			list = append(list, box)
		}
	}
	return list
}

// Raycast returns the closest box hit by a ray of the given length.
func (w *World) Raycast(origin, dir mgl32.Vec3, distance float32) (body.RaycastHit, bool) {
	dir = game.SafeNormalize(dir)
	if dir.LenSqr() == 0 || distance <= 0 {
		return body.RaycastHit{}, false
	}
	end := origin.Add(dir.Mul(distance))

	w.mu.RLock()
	defer w.mu.RUnlock()

	var (
		hit   body.RaycastHit
		found bool
	)
	for _, box := range w.boxes {
		if game.AABBVectorDistance(box, origin) > distance {
			continue
		}
		res, ok := trace.BBoxIntercept(box, origin, end)
		if !ok {
			continue
		}
		d := res.Position().Sub(origin).Len()
		if found && d >= hit.Distance {
			continue
		}
		hit = body.RaycastHit{Point: res.Position(), Normal: game.FaceNormal(res.Face()), Distance: d}
		found = true
	}
	return hit, found
}
