package slide

import "github.com/oomph-ac/locomotion/game"

type Config struct {
	// MinEntrySpeed is the horizontal speed needed to start a slide. MinEntrySpeedSprinting
	// replaces it while sprint is held.
	MinEntrySpeed          float32
	MinEntrySpeedSprinting float32
	// MaxSlopeAngle is the steepest slope in degrees a slide can start on.
	MaxSlopeAngle float32

	MaxDuration float32
	Cooldown    float32
	// InputBufferTime is how long a slide press stays armed when the slide cannot start yet.
	InputBufferTime float32

	// FrictionCurve scales the entry speed over the normalized slide time.
	FrictionCurve game.Curve
	// SlopeAcceleration is the acceleration gained sliding straight down a vertical drop.
	// Real slopes scale it by the sine of their angle.
	SlopeAcceleration float32
	MinExitSpeed      float32

	BulletJumpThreshold     float32
	BulletUpMultiplier      float32
	BulletForwardMultiplier float32

	CrouchHeight float32
}

// DefaultConfig returns the default slide configuration.
func DefaultConfig() Config {
	return Config{
		MinEntrySpeed:          4.5,
		MinEntrySpeedSprinting: 3.5,
		MaxSlopeAngle:          40,
		MaxDuration:            1.2,
		Cooldown:               0.5,
		InputBufferTime:        0.2,
		FrictionCurve: game.Curve{
			{Time: 0, Value: 1.15},
			{Time: 0.5, Value: 0.85},
			{Time: 1, Value: 0.5},
		},
		SlopeAcceleration:       12,
		MinExitSpeed:            2.5,
		BulletJumpThreshold:     6,
		BulletUpMultiplier:      1.1,
		BulletForwardMultiplier: 1.3,
		CrouchHeight:            game.CrouchCapsuleHeight,
	}
}
