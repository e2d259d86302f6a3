package dash

// ID is the overlay id of the dash overlay.
const ID = "dash"

type Config struct {
	// Speed is the horizontal speed added by a dash.
	Speed float32
	// Cooldown is the time in seconds between two dashes.
	Cooldown float32
}

// DefaultConfig returns the default dash configuration.
func DefaultConfig() Config {
	return Config{Speed: 15, Cooldown: 1}
}
