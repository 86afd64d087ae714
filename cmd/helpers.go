package cmd

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/ziadkadry99/coleweb/internal/config"
	"github.com/ziadkadry99/coleweb/internal/db"
	"github.com/ziadkadry99/coleweb/internal/prefs"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `coleweb init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// nopCloser is returned when a backend holds no resources.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createPrefsProvider builds the theme preference backend named in cfg. The
// returned closer releases any connection it opened.
func createPrefsProvider(cfg *config.Config) (prefs.Provider, io.Closer, error) {
	switch cfg.Prefs.Backend {
	case config.PrefsCookie, "":
		return prefs.CookieProvider{Secure: cfg.CookieSecure}, nopCloser{}, nil
	case config.PrefsMemory:
		return prefs.SharedProvider{KV: prefs.NewMemoryKV()}, nopCloser{}, nil
	case config.PrefsSQLite:
		database, err := db.Open(cfg.Prefs.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening preference database: %w", err)
		}
		return prefs.SharedProvider{KV: prefs.NewSQLiteKV(database)}, database, nil
	case config.PrefsRedis:
		kv, err := prefs.NewRedisKV(cfg.Prefs.RedisURL, cfg.Prefs.RedisTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return prefs.SharedProvider{KV: kv}, kv, nil
	default:
		return nil, nil, fmt.Errorf("unknown preference backend %q", cfg.Prefs.Backend)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
