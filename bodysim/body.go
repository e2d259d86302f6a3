package bodysim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
)

const (
	// DefaultStepHeight is the tallest ledge walked onto without jumping.
	DefaultStepHeight = float32(0.5)
	// groundProbe is how far below the feet ground is searched for.
	groundProbe = float32(0.05)
)

var _ body.Body = (*Body)(nil)

// Body is a kinematic box body. The capsule is approximated by its bounding box.
type Body struct {
	world *World

	pos mgl32.Vec3
	rot mgl32.Quat
	vel mgl32.Vec3

	capsule body.Capsule
	ground  body.Grounding
	slope   body.Slope

	StepHeight float32
}

// New returns a body standing at pos in w.
func New(w *World, pos mgl32.Vec3, capsule body.Capsule) *Body {
	b := &Body{
		world:      w,
		pos:        pos,
		rot:        mgl32.QuatIdent(),
		capsule:    capsule,
		StepHeight: DefaultStepHeight,
	}
	b.probeGround()
	return b
}

// World returns the world the body moves in.
func (b *Body) World() *World {
	return b.world
}

// BBox returns the collision box of the body at its current position.
func (b *Body) BBox() cube.BBox {
	return game.AABBFromDimensions(b.capsule.Radius*2, b.capsule.Height).Translate(b.pos)
}

func (b *Body) Position() mgl32.Vec3 { return b.pos }
func (b *Body) Rotation() mgl32.Quat { return b.rot }
func (b *Body) Velocity() mgl32.Vec3 { return b.vel }
func (b *Body) Capsule() body.Capsule { return b.capsule }
func (b *Body) Grounding() body.Grounding { return b.ground }
func (b *Body) Slope() body.Slope { return b.slope }

func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
	b.probeGround()
}

func (b *Body) SetRotation(rot mgl32.Quat) { b.rot = rot.Normalize() }
func (b *Body) SetVelocity(vel mgl32.Vec3) { b.vel = vel }
func (b *Body) SetCapsule(c body.Capsule) { b.capsule = c }

func (b *Body) Raycast(origin, dir mgl32.Vec3, distance float32) (body.RaycastHit, bool) {
	return b.world.Raycast(origin, dir, distance)
}

// Integrate moves the body by its velocity, resolving collisions with the world, and
// refreshes grounding.
func (b *Body) Integrate(dt float32) {
	delta := b.vel.Mul(dt)
	bb := b.BBox()
	boxes := b.world.Nearby(bb.Extend(delta).Extend(mgl32.Vec3{0, b.StepHeight, 0}))

	moved, _ := sweep(boxes, bb, delta)
	blockedHz := moved.X() != delta.X() || moved.Z() != delta.Z()
	stepped := false
	if b.ground.Stable && blockedHz && b.StepHeight > 0 && delta.Y() <= 0 {
		if step, _ := stepUp(boxes, bb, delta, b.StepHeight); game.Vec3HzDistSqr(step) > game.Vec3HzDistSqr(moved) {
			moved, stepped = step, true
		}
	}
	b.pos = b.pos.Add(moved)

	if moved.X() != delta.X() {
		b.vel[0] = 0
	}
	if moved.Z() != delta.Z() {
		b.vel[2] = 0
	}
	if moved.Y() != delta.Y() && !stepped {
		b.vel[1] = 0
	}
	b.probeGround()
}

func (b *Body) probeGround() {
	feet := b.BBox()
	found := false
	for _, box := range b.world.Nearby(feet.Translate(mgl32.Vec3{0, -groundProbe, 0})) {
		if box.Max().Y() <= feet.Min().Y()+groundProbe {
			found = true
			break
		}
	}
	b.ground = body.Grounding{
		Stable:         found && b.vel.Y() <= game.SpeedEpsilon,
		FoundAnyGround: found,
		Normal:         game.Up,
	}
	b.slope = body.Slope{Normal: game.Up}
}
