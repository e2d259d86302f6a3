package body

import "github.com/go-gl/mathgl/mgl32"

// Capsule holds the collider dimensions of the character.
type Capsule struct {
	Height float32
	Radius float32
}

// Grounding is the grounding status reported by the physics body after its last
// integration step.
type Grounding struct {
	// Stable is true if the body rests on walkable ground.
	Stable bool
	// FoundAnyGround is true if any ground, walkable or not, is below the body.
	FoundAnyGround bool
	// Normal is the normal of the ground below the body.
	Normal mgl32.Vec3
}

// Slope describes the surface under the body.
type Slope struct {
	Normal mgl32.Vec3
	// Angle is the angle between Normal and up, in degrees.
	Angle float32
}

// RaycastHit is the result of a successful raycast.
type RaycastHit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// View is the read-only part of a Body.
type View interface {
	Position() mgl32.Vec3
	Rotation() mgl32.Quat
	Velocity() mgl32.Vec3
	Capsule() Capsule

	Grounding() Grounding
	Slope() Slope

	// Raycast casts a ray from origin along dir for at most distance units.
	Raycast(origin, dir mgl32.Vec3, distance float32) (RaycastHit, bool)
}

// Body bridges the physics engine owning the character's rigidbody. The movement core never
// integrates motion itself: it transforms velocity and rotation and asks the body to step.
type Body interface {
	View

	SetPosition(pos mgl32.Vec3)
	SetRotation(rot mgl32.Quat)
	SetVelocity(vel mgl32.Vec3)
	SetCapsule(c Capsule)

	// Integrate moves the body by its velocity for dt seconds and refreshes grounding.
	Integrate(dt float32)
}

// ReadOnly returns a View of b that cannot be converted back to a Body.
func ReadOnly(b Body) View {
	return readOnly{b: b}
}

type readOnly struct {
	b Body
}

func (r readOnly) Position() mgl32.Vec3 { return r.b.Position() }
func (r readOnly) Rotation() mgl32.Quat { return r.b.Rotation() }
func (r readOnly) Velocity() mgl32.Vec3 { return r.b.Velocity() }
func (r readOnly) Capsule() Capsule { return r.b.Capsule() }
func (r readOnly) Grounding() Grounding { return r.b.Grounding() }
func (r readOnly) Slope() Slope { return r.b.Slope() }

func (r readOnly) Raycast(origin, dir mgl32.Vec3, distance float32) (RaycastHit, bool) {
	return r.b.Raycast(origin, dir, distance)
}
