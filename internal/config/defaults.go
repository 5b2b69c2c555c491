package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "",
			SQLiteFile: "life_log.db",
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Display: DisplayConfig{
			Language:   "en",
			JSONIndent: "  ",
		},
	}
}
