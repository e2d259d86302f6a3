package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/game"
)

// WorldState is the snapshot of the world every module sees during one logic tick. It is
// taken once before polling and never refreshed mid-tick.
type WorldState struct {
	IsGrounded          bool
	FoundAnyGround      bool
	WasGroundedLastTick bool
	IsOnSlope           bool
	GroundNormal        mgl32.Vec3
	SlopeNormal         mgl32.Vec3
	SlopeAngle          float32
	Velocity            mgl32.Vec3
}

// slopeEpsilon is the angle in degrees under which ground counts as flat.
const slopeEpsilon = float32(1)

// Observe takes a new WorldState from the body. prev is the state of the previous tick.
func Observe(b body.View, prev WorldState) WorldState {
	g, s := b.Grounding(), b.Slope()
	normal := s.Normal
	if normal.LenSqr() < 1e-6 {
		normal = game.Up
	}
	return WorldState{
		IsGrounded:          g.Stable,
		FoundAnyGround:      g.FoundAnyGround || g.Stable,
		WasGroundedLastTick: prev.IsGrounded,
		IsOnSlope:           g.Stable && s.Angle > slopeEpsilon,
		GroundNormal:        g.Normal,
		SlopeNormal:         normal,
		SlopeAngle:          s.Angle,
		Velocity:            b.Velocity(),
	}
}

// JustLeftGround returns true on the first tick without stable ground.
func (w WorldState) JustLeftGround() bool {
	return w.WasGroundedLastTick && !w.IsGrounded
}

// HorizontalSpeed returns the horizontal speed of the body at the start of the tick.
func (w WorldState) HorizontalSpeed() float32 {
	return game.HorizontalSpeed(w.Velocity)
}
