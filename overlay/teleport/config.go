package teleport

// ID is the overlay id of the teleport overlay.
const ID = "teleport"

type Config struct {
	// Range is the longest distance a teleport can cover.
	Range float32
	// MaxCharges is the number of teleports that can be stored.
	MaxCharges int
	// RechargeTime is the time in seconds it takes to regain one charge.
	RechargeTime float32
	// LedgeProbeHeight is how far above a wall hit ledges are searched for.
	LedgeProbeHeight float32
}

// DefaultConfig returns the default teleport configuration.
func DefaultConfig() Config {
	return Config{
		Range:            15,
		MaxCharges:       2,
		RechargeTime:     4,
		LedgeProbeHeight: 1.5,
	}
}
