package wallrun

import "github.com/oomph-ac/locomotion/game"

type Config struct {
	// DetectionDistance is how far from the body's center walls are searched for.
	DetectionDistance float32
	MinEntrySpeed     float32
	// MaxEntryAngle is the largest angle in degrees between the velocity and the wall
	// tangent a wall run can start at.
	MaxEntryAngle float32
	RunSpeed      float32
	MaxDuration   float32
	ExitCooldown  float32

	Gravity float32
	// GravityCompensation is the share of gravity cancelled while running.
	GravityCompensation float32
	// StandardGravity disables the compensation.
	StandardGravity bool

	// AdhesionForce is the speed the body is pulled towards the wall with.
	AdhesionForce float32
	// SteerAwayThreshold is the move direction component away from the wall above which
	// adhesion stops.
	SteerAwayThreshold float32
	// MinForwardIntent is the forward move axis needed to start and keep running.
	MinForwardIntent float32

	// GroundGrace is the time after entry during which ground contact does not end the run.
	GroundGrace float32
	// EntryLift is the upward speed given when a run starts from the ground.
	EntryLift float32
	// ForceBulletJump turns every wall jump into a bullet jump.
	ForceBulletJump bool
}

// DefaultConfig returns the default wall run configuration.
func DefaultConfig() Config {
	return Config{
		DetectionDistance:   0.9,
		MinEntrySpeed:       4,
		MaxEntryAngle:       50,
		RunSpeed:            8,
		MaxDuration:         1.75,
		ExitCooldown:        0.35,
		Gravity:             game.DefaultGravity,
		GravityCompensation: 0.85,
		AdhesionForce:       2,
		SteerAwayThreshold:  0.5,
		MinForwardIntent:    0.3,
		GroundGrace:         0.2,
		EntryLift:           3,
	}
}
