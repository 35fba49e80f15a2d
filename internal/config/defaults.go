package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.sigil",
		SLIP39: SLIP39Config{
			IterationExponent: 0,
			Extendable:        true,
			GroupThreshold:    1,
		},
		Security: SecurityConfig{
			AutoLockSeconds:     0, // Disabled for MVP
			RequireConfirmAbove: 0, // Disabled for MVP
			MemoryLock:          true,
			SessionEnabled:      true,
			SessionTTLMinutes:   15,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.sigil/sigil.log",
		},
	}
}
