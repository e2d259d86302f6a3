package movement

import "github.com/go-gl/mathgl/mgl32"

// JumpKind selects a row of the jump speed table.
type JumpKind uint8

const (
	JumpRegular JumpKind = iota
	JumpDouble
	JumpWall
	JumpBullet

	JumpKindCount
)

func (k JumpKind) String() string {
	switch k {
	case JumpRegular:
		return "regular"
	case JumpDouble:
		return "double"
	case JumpWall:
		return "wall"
	case JumpBullet:
		return "bullet"
	}
	return "unknown"
}

// State returns the airborne sub-state a jump of this kind enters.
func (k JumpKind) State() State {
	switch k {
	case JumpDouble:
		return StateDoubleJumping
	case JumpWall:
		return StateWallJumping
	case JumpBullet:
		return StateBulletJumping
	}
	return StateJumping
}

// Special returns true for jumps that keep the consumed flags armed until landing.
func (k JumpKind) Special() bool {
	return k == JumpWall || k == JumpBullet
}

// SpeedTier is the grounded speed class used to select jump speeds.
type SpeedTier uint8

const (
	TierWalk SpeedTier = iota
	TierJog
	TierSprint

	SpeedTierCount
)

func (t SpeedTier) String() string {
	switch t {
	case TierWalk:
		return "walk"
	case TierJog:
		return "jog"
	case TierSprint:
		return "sprint"
	}
	return "unknown"
}

// JumpRequest is an explicit intent to jump, posted through the facade by the module that
// detected the jump input and consumed by the airborne module.
type JumpRequest struct {
	Bullet bool
	Wall   bool

	// WallNormal points away from the wall for wall jumps.
	WallNormal mgl32.Vec3
	// Direction is the horizontal direction forward speed is applied along. A zero
	// direction means the body's facing.
	Direction mgl32.Vec3

	// Multipliers scale the table speeds; zero means 1.
	UpMultiplier      float32
	ForwardMultiplier float32
}

// Kind classifies the request: bullet jumps win over wall jumps, which win over plain jumps.
func (r JumpRequest) Kind() JumpKind {
	switch {
	case r.Bullet:
		return JumpBullet
	case r.Wall:
		return JumpWall
	}
	return JumpRegular
}

// JumpState is the long-lived jump bookkeeping of a character.
type JumpState struct {
	JumpConsumed       bool
	DoubleJumpConsumed bool

	// TimeSinceLastAbleToJump is the time since the body last stood on stable ground.
	TimeSinceLastAbleToJump float32
	// LastGroundedSpeed is the horizontal speed the body last had on the ground. It selects
	// the speed tier of the next jump.
	LastGroundedSpeed float32

	// BufferedJump is the remaining time during which an early jump press is honoured on
	// landing.
	BufferedJump float32
}

// ResetConsumed re-arms both the regular and the double jump.
func (j *JumpState) ResetConsumed() {
	j.JumpConsumed = false
	j.DoubleJumpConsumed = false
}

// Land resets the jump state after touching stable ground.
func (j *JumpState) Land() {
	j.ResetConsumed()
	j.TimeSinceLastAbleToJump = 0
}

// BufferJump remembers a jump press for window seconds.
func (j *JumpState) BufferJump(window float32) {
	j.BufferedJump = window
}

// TakeBufferedJump consumes a buffered jump, returning true if one was pending.
func (j *JumpState) TakeBufferedJump() bool {
	if j.BufferedJump <= 0 {
		return false
	}
	j.BufferedJump = 0
	return true
}
