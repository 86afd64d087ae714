package config

import "time"

// PrefsBackend selects where visitor preferences are persisted.
type PrefsBackend string

const (
	PrefsCookie PrefsBackend = "cookie"
	PrefsMemory PrefsBackend = "memory"
	PrefsSQLite PrefsBackend = "sqlite"
	PrefsRedis  PrefsBackend = "redis"
)

// Config is the top-level coleweb configuration, corresponding to .coleweb.yml.
type Config struct {
	SiteName        string        `yaml:"site_name" koanf:"site_name"`
	Port            int           `yaml:"port" koanf:"port"`
	PopupDelay      time.Duration `yaml:"popup_delay" koanf:"popup_delay"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	CookieSecure    bool          `yaml:"cookie_secure" koanf:"cookie_secure"`
	ExportDir       string        `yaml:"export_dir" koanf:"export_dir"`
	Prefs           PrefsConfig   `yaml:"prefs" koanf:"prefs"`
}

// PrefsConfig holds preference storage settings.
type PrefsConfig struct {
	Backend    PrefsBackend  `yaml:"backend" koanf:"backend"`
	SQLitePath string        `yaml:"sqlite_path" koanf:"sqlite_path"`
	RedisURL   string        `yaml:"redis_url" koanf:"redis_url"`
	RedisTTL   time.Duration `yaml:"redis_ttl" koanf:"redis_ttl"`
}
