package locomotion

import "github.com/oomph-ac/locomotion/game"

type Config struct {
	WalkSpeed   float32
	JogSpeed    float32
	SprintSpeed float32
	CrouchSpeed float32

	// Acceleration is the rate in units per second squared the speed moves towards the
	// speed of the current state.
	Acceleration float32
	// JogThreshold is the move axis magnitude from which the character jogs instead of
	// walking.
	JogThreshold float32

	CrouchHeight float32
}

// DefaultConfig returns the default locomotion configuration.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:    2.5,
		JogSpeed:     5,
		SprintSpeed:  8.5,
		CrouchSpeed:  2,
		Acceleration: 30,
		JogThreshold: 0.5,
		CrouchHeight: game.CrouchCapsuleHeight,
	}
}
