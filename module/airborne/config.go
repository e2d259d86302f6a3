package airborne

import (
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/movement"
)

// JumpSpeed is the launch speed of a single jump.
type JumpSpeed struct {
	Up      float32
	Forward float32
}

// TierSpeeds holds the launch speeds of one jump kind for every grounded speed tier.
type TierSpeeds struct {
	Walk   JumpSpeed
	Jog    JumpSpeed
	Sprint JumpSpeed
}

// JumpTable holds the launch speeds of every jump kind.
type JumpTable struct {
	Regular TierSpeeds
	Double  TierSpeeds
	Wall    TierSpeeds
	Bullet  TierSpeeds
}

// Speed returns the launch speed of a jump of kind k from speed tier t.
func (j JumpTable) Speed(k movement.JumpKind, t movement.SpeedTier) JumpSpeed {
	var row TierSpeeds
	switch k {
	case movement.JumpDouble:
		row = j.Double
	case movement.JumpWall:
		row = j.Wall
	case movement.JumpBullet:
		row = j.Bullet
	default:
		row = j.Regular
	}
	switch t {
	case movement.TierSprint:
		return row.Sprint
	case movement.TierJog:
		return row.Jog
	}
	return row.Walk
}

type Config struct {
	Gravity          float32
	TerminalVelocity float32
	// AirAcceleration is the horizontal acceleration move input gives while airborne.
	AirAcceleration float32
	// AirMaxSpeed is the horizontal speed air control can reach on its own.
	AirMaxSpeed float32
	// MaxHorizontalSpeed caps horizontal speed gained from jumps and impulses.
	MaxHorizontalSpeed float32

	CoyoteTime     float32
	JumpBufferTime float32

	DoubleJumpEnabled bool
	// DemoteVelocity is the downward speed past which jump sub-states become falling.
	DemoteVelocity float32
	// WallJumpOutwardSpeed is the speed a wall jump pushes away from the wall with.
	WallJumpOutwardSpeed float32

	// SprintSpeedTier and JogSpeedTier are the grounded speeds from which jumps use the
	// sprint and jog rows of the table.
	SprintSpeedTier float32
	JogSpeedTier    float32

	Jumps JumpTable
}

// DefaultConfig returns the default airborne configuration.
func DefaultConfig() Config {
	return Config{
		Gravity:              game.DefaultGravity,
		TerminalVelocity:     game.DefaultTerminalVelocity,
		AirAcceleration:      12,
		AirMaxSpeed:          6,
		MaxHorizontalSpeed:   24,
		CoyoteTime:           0.125,
		JumpBufferTime:       0.15,
		DoubleJumpEnabled:    true,
		DemoteVelocity:       0.5,
		WallJumpOutwardSpeed: 6,
		SprintSpeedTier:      8,
		JogSpeedTier:         4.5,
		Jumps: JumpTable{
			Regular: TierSpeeds{
				Walk:   JumpSpeed{Up: 7, Forward: 0.5},
				Jog:    JumpSpeed{Up: 7.5, Forward: 1},
				Sprint: JumpSpeed{Up: 8, Forward: 1.5},
			},
			Double: TierSpeeds{
				Walk:   JumpSpeed{Up: 6.5, Forward: 1},
				Jog:    JumpSpeed{Up: 7, Forward: 1.5},
				Sprint: JumpSpeed{Up: 7.5, Forward: 2},
			},
			Wall: TierSpeeds{
				Walk:   JumpSpeed{Up: 7, Forward: 2},
				Jog:    JumpSpeed{Up: 7.5, Forward: 3},
				Sprint: JumpSpeed{Up: 8, Forward: 4},
			},
			Bullet: TierSpeeds{
				Walk:   JumpSpeed{Up: 5, Forward: 6},
				Jog:    JumpSpeed{Up: 5.5, Forward: 8},
				Sprint: JumpSpeed{Up: 6, Forward: 10},
			},
		},
	}
}

// Tier returns the speed tier of a grounded speed.
func (c Config) Tier(speed float32) movement.SpeedTier {
	switch {
	case speed >= c.SprintSpeedTier:
		return movement.TierSprint
	case speed >= c.JogSpeedTier:
		return movement.TierJog
	}
	return movement.TierWalk
}
