// Package bodytest provides a scriptable body.Body for tests. Grounding and raycast results
// are set directly instead of being derived from geometry.
package bodytest

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
)

// Ray is a scripted raycast result matched by direction.
type Ray struct {
	Dir mgl32.Vec3
	Hit body.RaycastHit
}

type Stub struct {
	Pos mgl32.Vec3
	Rot mgl32.Quat
	Vel mgl32.Vec3
	Cap body.Capsule

	Ground body.Grounding
	Surf   body.Slope
	Rays   []Ray

	// GroundY, when set, makes Integrate ground the body once it reaches that height.
	GroundY *float32

	Integrations int
	History      []mgl32.Vec3
}

// New returns a stub standing on flat ground at the origin.
func New() *Stub {
	return &Stub{
		Rot:    mgl32.QuatIdent(),
		Cap:    body.Capsule{Height: game.DefaultCapsuleHeight, Radius: game.DefaultCapsuleRadius},
		Ground: body.Grounding{Stable: true, FoundAnyGround: true, Normal: game.Up},
		Surf:   body.Slope{Normal: game.Up},
	}
}

// Airborne marks the stub as having no ground below it.
func (s *Stub) Airborne() *Stub {
	s.Ground = body.Grounding{Normal: game.Up}
	return s
}

// Grounded marks the stub as standing on flat ground.
func (s *Stub) Grounded() *Stub {
	s.Ground = body.Grounding{Stable: true, FoundAnyGround: true, Normal: game.Up}
	s.Surf = body.Slope{Normal: game.Up}
	return s
}

// AddRay scripts a raycast hit for rays cast roughly along dir.
func (s *Stub) AddRay(dir mgl32.Vec3, hit body.RaycastHit) {
	s.Rays = append(s.Rays, Ray{Dir: game.SafeNormalize(dir), Hit: hit})
}

// ClearRays removes all scripted raycast hits.
func (s *Stub) ClearRays() {
	s.Rays = nil
}

func (s *Stub) Position() mgl32.Vec3 { return s.Pos }
func (s *Stub) SetPosition(pos mgl32.Vec3) { s.Pos = pos }
func (s *Stub) Rotation() mgl32.Quat { return s.Rot }
func (s *Stub) SetRotation(rot mgl32.Quat) { s.Rot = rot }
func (s *Stub) Velocity() mgl32.Vec3 { return s.Vel }
func (s *Stub) SetVelocity(vel mgl32.Vec3) { s.Vel = vel }
func (s *Stub) Capsule() body.Capsule { return s.Cap }
func (s *Stub) SetCapsule(c body.Capsule) { s.Cap = c }
func (s *Stub) Grounding() body.Grounding { return s.Ground }
func (s *Stub) Slope() body.Slope { return s.Surf }

func (s *Stub) Raycast(origin, dir mgl32.Vec3, distance float32) (body.RaycastHit, bool) {
	dir = game.SafeNormalize(dir)
	for _, r := range s.Rays {
		if r.Dir.Dot(dir) > 0.95 && r.Hit.Distance <= distance {
			return r.Hit, true
		}
	}
	return body.RaycastHit{}, false
}

func (s *Stub) Integrate(dt float32) {
	s.Integrations++
	s.Pos = s.Pos.Add(s.Vel.Mul(dt))
	s.History = append(s.History, s.Vel)
	if s.GroundY == nil {
		return
	}
	if s.Pos.Y() <= *s.GroundY && s.Vel.Y() <= 0 {
		s.Pos[1] = *s.GroundY
		s.Vel[1] = 0
		s.Grounded()
	} else if s.Pos.Y() > *s.GroundY {
		s.Airborne()
	}
}
