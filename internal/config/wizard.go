package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// backendChoices are offered by the wizard in this order.
var backendChoices = []struct {
	Backend PrefsBackend
	Label   string
}{
	{PrefsCookie, "cookie — stored in the visitor's browser (no server state)"},
	{PrefsMemory, "memory — kept in process, lost on restart"},
	{PrefsSQLite, "sqlite — local database file"},
	{PrefsRedis, "redis  — shared across instances"},
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to coleweb! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Preference backend.
	labels := make([]string, len(backendChoices))
	for i, c := range backendChoices {
		labels[i] = c.Label
	}
	backendPrompt := promptui.Select{
		Label: "Where should theme preferences be stored?",
		Items: labels,
	}
	idx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend selection: %w", err)
	}
	cfg.Prefs.Backend = backendChoices[idx].Backend

	// 4. Backend-specific location.
	switch cfg.Prefs.Backend {
	case PrefsSQLite:
		p := promptui.Prompt{Label: "SQLite database path", Default: cfg.Prefs.SQLitePath}
		if cfg.Prefs.SQLitePath, err = p.Run(); err != nil {
			return nil, fmt.Errorf("sqlite path: %w", err)
		}
	case PrefsRedis:
		p := promptui.Prompt{Label: "Redis URL", Default: cfg.Prefs.RedisURL}
		if cfg.Prefs.RedisURL, err = p.Run(); err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// validatePort is the promptui validator for the port prompt.
func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
