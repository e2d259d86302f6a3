package controller

import (
	"bytes"
	"encoding/binary"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/internal"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/zeebo/xxh3"
)

// Snapshot is a read-only copy of the movement state at the end of a logic tick.
type Snapshot struct {
	Tag   movement.Tag
	State movement.State

	Sliding, Crouching, Sprinting bool
	WallRunning, Airborne         bool
	Sticking, Grounded            bool

	Position        mgl32.Vec3
	Velocity        mgl32.Vec3
	Speed           float32
	HorizontalSpeed float32

	Jump     movement.JumpState
	Timers   []movement.Timer
	Overlays []string
	Tick     uint64
}

// Snapshot returns the current movement state.
func (c *Controller) Snapshot() Snapshot {
	vel := c.body.Velocity()
	s := Snapshot{
		Tag:             c.ActiveTag(),
		State:           c.State(),
		Sliding:         c.IsSliding(),
		Crouching:       c.IsCrouching(),
		Sprinting:       c.IsSprinting(),
		WallRunning:     c.IsWallRunning(),
		Airborne:        c.IsAirborne(),
		Sticking:        c.IsSticking(),
		Grounded:        c.IsGrounded(),
		Position:        c.body.Position(),
		Velocity:        vel,
		Speed:           vel.Len(),
		HorizontalSpeed: game.HorizontalSpeed(vel),
		Jump:            c.char.Jump,
		Overlays:        c.overlays.ActiveIDs(),
		Tick:            c.ctx.Tick,
	}
	for _, m := range c.arbiter.Modules() {
		if r, ok := m.(movement.TimerReporter); ok {
			s.Timers = append(s.Timers, r.Timers()...)
		}
	}
	for _, id := range c.overlays.IDs() {
		o, _ := c.overlays.Overlay(id)
		if r, ok := o.(movement.TimerReporter); ok {
			s.Timers = append(s.Timers, r.Timers()...)
		}
	}
	return s
}

// SnapshotData returns the headline fields of a snapshot in a stable order.
func SnapshotData(s Snapshot) *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("tag", s.Tag)
	data.Set("state", s.State)
	data.Set("pos", game.RoundVec32(s.Position, 3))
	data.Set("vel", game.RoundVec32(s.Velocity, 3))
	data.Set("hz_speed", game.Round32(s.HorizontalSpeed, 3))
	data.Set("jump_consumed", s.Jump.JumpConsumed)
	data.Set("double_jump_consumed", s.Jump.DoubleJumpConsumed)
	for _, t := range s.Timers {
		if t.Remaining > 0 {
			data.Set(t.Name, game.Round32(t.Remaining, 2))
		}
	}
	if len(s.Overlays) > 0 {
		data.Set("overlays", s.Overlays)
	}
	return data
}

// Digest hashes the snapshot. Two runs fed the same inputs produce the same digest on every
// tick.
func (s Snapshot) Digest() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()
	le := binary.LittleEndian

	_ = binary.Write(buf, le, s.Tick)
	_ = binary.Write(buf, le, [2]uint8{uint8(s.Tag), uint8(s.State)})
	_ = binary.Write(buf, le, [7]bool{s.Sliding, s.Crouching, s.Sprinting, s.WallRunning, s.Airborne, s.Sticking, s.Grounded})
	_ = binary.Write(buf, le, [3]float32(s.Position))
	_ = binary.Write(buf, le, [3]float32(s.Velocity))
	_ = binary.Write(buf, le, [2]float32{s.Speed, s.HorizontalSpeed})

	j := s.Jump
	_ = binary.Write(buf, le, [2]bool{j.JumpConsumed, j.DoubleJumpConsumed})
	_ = binary.Write(buf, le, [3]float32{j.TimeSinceLastAbleToJump, j.LastGroundedSpeed, j.BufferedJump})

	for _, t := range s.Timers {
		buf.WriteString(t.Name)
		buf.WriteByte(0)
		_ = binary.Write(buf, le, t.Remaining)
	}
	for _, id := range s.Overlays {
		buf.WriteString(id)
		buf.WriteByte(0)
	}
	return xxh3.Hash(buf.Bytes())
}
