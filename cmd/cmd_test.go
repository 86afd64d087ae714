package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/ziadkadry99/coleweb/internal/config"
	"github.com/ziadkadry99/coleweb/internal/prefs"
)

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "platform: macOS\ncard: macos\n"},
		{"Mozilla/5.0 (Android 14)", "platform: Android\ncard: linux\n"},
		{"curl/8.4.0", "platform: Unknown OS\ncard: none\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"classify", tt.ua})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("classify %q: %v", tt.ua, err)
		}
		if out.String() != tt.want {
			t.Errorf("classify %q = %q, want %q", tt.ua, out.String(), tt.want)
		}
	}
}

func TestCreatePrefsProvider(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		backend config.PrefsBackend
		shared  bool
	}{
		{"cookie", config.PrefsCookie, false},
		{"memory", config.PrefsMemory, true},
		{"sqlite", config.PrefsSQLite, true},
		{"redis", config.PrefsRedis, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Prefs.Backend = tt.backend
			cfg.Prefs.SQLitePath = filepath.Join(t.TempDir(), "prefs.db")
			cfg.Prefs.RedisURL = "redis://" + mr.Addr() + "/0"

			provider, closer, err := createPrefsProvider(cfg)
			if err != nil {
				t.Fatalf("createPrefsProvider: %v", err)
			}
			defer closer.Close()

			_, shared := provider.(prefs.SharedProvider)
			if shared != tt.shared {
				t.Errorf("shared = %v, want %v", shared, tt.shared)
			}
		})
	}
}

func TestCreatePrefsProviderUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Prefs.Backend = "etcd"
	if _, _, err := createPrefsProvider(cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestCreatePrefsProviderRedisDown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Prefs.Backend = config.PrefsRedis
	cfg.Prefs.RedisURL = "redis://127.0.0.1:1/0"
	if _, _, err := createPrefsProvider(cfg); err == nil {
		t.Error("expected error when redis is unreachable")
	}
}

func TestExportRejectsUnknownProgressStyle(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "--progress", "fancy", "--output", t.TempDir()})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), `unknown progress style "fancy"`) {
		t.Errorf("expected progress style error, got %v", err)
	}
}
