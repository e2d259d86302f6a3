package anim

import "github.com/go-gl/mathgl/mgl32"

// Recorder is a Sink that remembers the last value of every signal and counts triggers.
type Recorder struct {
	Grounded    bool
	Crouching   bool
	Sliding     bool
	WallRunning WallSide
	Normalized  float32
	Local       mgl32.Vec2
	State       uint8

	Jumps, Lands int
	States       []uint8
}

func (r *Recorder) SetGrounded(grounded bool) { r.Grounded = grounded }
func (r *Recorder) SetCrouching(crouching bool) { r.Crouching = crouching }
func (r *Recorder) SetSliding(sliding bool) { r.Sliding = sliding }
func (r *Recorder) SetWallRunning(side WallSide) { r.WallRunning = side }
func (r *Recorder) TriggerJump() { r.Jumps++ }
func (r *Recorder) TriggerLand() { r.Lands++ }

func (r *Recorder) SetLocomotionSpeeds(normalized float32, local mgl32.Vec2) {
	r.Normalized, r.Local = normalized, local
}

func (r *Recorder) SetMovementState(state uint8) {
	r.State = state
	r.States = append(r.States, state)
}
