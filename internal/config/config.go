package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// descends into a nested key: COLEWEB_PREFS__BACKEND -> prefs.backend.
const EnvPrefix = "COLEWEB_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (COLEWEB_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps COLEWEB_PREFS__REDIS_URL to prefs.redis_url.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized prefs.backend values.
var validBackends = map[PrefsBackend]bool{
	PrefsCookie: true,
	PrefsMemory: true,
	PrefsSQLite: true,
	PrefsRedis:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.PopupDelay < 0 {
		return fmt.Errorf("popup_delay must be non-negative")
	}

	if !validBackends[c.Prefs.Backend] {
		return fmt.Errorf("invalid prefs.backend %q: must be one of cookie, memory, sqlite, redis", c.Prefs.Backend)
	}

	switch c.Prefs.Backend {
	case PrefsSQLite:
		if c.Prefs.SQLitePath == "" {
			return fmt.Errorf("prefs.sqlite_path is required for the sqlite backend")
		}
	case PrefsRedis:
		if c.Prefs.RedisURL == "" {
			return fmt.Errorf("prefs.redis_url is required for the redis backend")
		}
		if c.Prefs.RedisTTL < 0 {
			return fmt.Errorf("prefs.redis_ttl must be non-negative")
		}
	}

	return nil
}
