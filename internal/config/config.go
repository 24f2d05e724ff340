// ABOUTME: Viewer configuration loaded with koanf: defaults, YAML file, PDFVIEW_* env
// ABOUTME: Nested env keys use a double underscore (PDFVIEW_SCALE__SMALL -> scale.small)

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

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "PDFVIEW_"

// Load reads configuration from the given YAML file (missing is fine), then
// overlays environment variable overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps PDFVIEW_SWIPE__VERTICAL_THRESHOLD to swipe.vertical_threshold.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validEngines = map[string]bool{
	EngineAuto:    true,
	EnginePoppler: true,
	EngineImages:  true,
}

var validBackends = map[string]bool{
	PrefsSQLite: true,
	PrefsFile:   true,
	PrefsMemory: true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Document) == "" {
		return fmt.Errorf("document is required")
	}
	if !validEngines[c.Engine] {
		return fmt.Errorf("invalid engine %q: must be one of auto, poppler, images", c.Engine)
	}
	if c.Scale.Small <= 0 || c.Scale.Default <= 0 {
		return fmt.Errorf("scale factors must be positive (small=%v, default=%v)", c.Scale.Small, c.Scale.Default)
	}
	if c.Scale.Breakpoint <= 0 {
		return fmt.Errorf("scale.breakpoint must be positive")
	}
	if c.Swipe.Threshold <= 0 || c.Swipe.VerticalThreshold <= 0 {
		return fmt.Errorf("swipe thresholds must be positive")
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("cell size must be positive (%dx%d)", c.Cell.Width, c.Cell.Height)
	}
	if !validBackends[c.Prefs.Backend] {
		return fmt.Errorf("invalid prefs.backend %q: must be one of sqlite, file, memory", c.Prefs.Backend)
	}
	return nil
}

// PrefsPath returns the configured preference store path, falling back to
// the backend's default location.
func (c *Config) PrefsPath() string {
	if c.Prefs.Path != "" {
		return c.Prefs.Path
	}
	return DefaultPrefsPath(c.Prefs.Backend)
}
