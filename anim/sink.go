package anim

import "github.com/go-gl/mathgl/mgl32"

// WallSide identifies which side of the character a wall is on.
type WallSide int8

const (
	WallNone  WallSide = 0
	WallLeft  WallSide = -1
	WallRight WallSide = 1
)

// Sink receives fire-and-forget animation signals. The movement core never reads animation
// state back.
type Sink interface {
	SetGrounded(grounded bool)
	SetCrouching(crouching bool)
	SetSliding(sliding bool)
	SetWallRunning(side WallSide)
	SetLocomotionSpeeds(normalized float32, local mgl32.Vec2)
	TriggerJump()
	TriggerLand()
	SetMovementState(state uint8)
}

// NopSink is a Sink that discards every signal.
type NopSink struct{}

func (NopSink) SetGrounded(bool) {}
func (NopSink) SetCrouching(bool) {}
func (NopSink) SetSliding(bool) {}
func (NopSink) SetWallRunning(WallSide) {}
func (NopSink) SetLocomotionSpeeds(float32, mgl32.Vec2) {}
func (NopSink) TriggerJump() {}
func (NopSink) TriggerLand() {}
func (NopSink) SetMovementState(uint8) {}
