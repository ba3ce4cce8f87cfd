package core

// RuntimeConfig contains settings resolved by the platform at startup.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int32 // Generator seed
	// SeedSet is true when Seed was given explicitly; otherwise the
	// platform derives one from the current time.
	SeedSet bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
