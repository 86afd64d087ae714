package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".coleweb.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:   "CoLE",
		Port:       8080,
		PopupDelay: 5 * time.Second,
		ExportDir:  "dist",
		Prefs: PrefsConfig{
			Backend:    PrefsCookie,
			SQLitePath: ".coleweb/prefs.db",
			RedisURL:   "redis://localhost:6379/0",
			RedisTTL:   365 * 24 * time.Hour,
		},
	}
}
