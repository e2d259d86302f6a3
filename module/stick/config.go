package stick

type Config struct {
	// Reach is how far in front of the body surfaces can be grabbed.
	Reach float32
	// MinSurfaceAngle is the smallest angle in degrees from up a surface needs to be
	// stuck to.
	MinSurfaceAngle float32
	CrawlSpeed      float32
	// Pull is the speed the body is held against the surface with.
	Pull        float32
	MaxDuration float32
	Cooldown    float32
}

// DefaultConfig returns the default surface stick configuration.
func DefaultConfig() Config {
	return Config{
		Reach:           0.75,
		MinSurfaceAngle: 70,
		CrawlSpeed:      2.5,
		Pull:            1,
		MaxDuration:     3,
		Cooldown:        0.5,
	}
}
