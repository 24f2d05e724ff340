// ABOUTME: Config types and defaults for the document viewer
// ABOUTME: Defaults mirror the viewer's fixed constants (scale 1.2/1.5 at 768, swipe 50)

package config

// Engine names.
const (
	EngineAuto    = "auto"
	EnginePoppler = "poppler"
	EngineImages  = "images"
)

// Preference store backends.
const (
	PrefsSQLite = "sqlite"
	PrefsFile   = "file"
	PrefsMemory = "memory"
)

// DefaultDocument is the document opened when none is given.
const DefaultDocument = "document.pdf"

// Config is the top-level pdfview configuration, corresponding to config.yaml.
type Config struct {
	Document string        `yaml:"document" koanf:"document"`
	Engine   string        `yaml:"engine" koanf:"engine"`
	Poppler  PopplerConfig `yaml:"poppler" koanf:"poppler"`
	Scale    ScaleConfig   `yaml:"scale" koanf:"scale"`
	Swipe    SwipeConfig   `yaml:"swipe" koanf:"swipe"`
	Cell     CellConfig    `yaml:"cell" koanf:"cell"`
	Prefs    PrefsConfig   `yaml:"prefs" koanf:"prefs"`
	Theme    ThemeConfig   `yaml:"theme" koanf:"theme"`
	Log      LogConfig     `yaml:"log" koanf:"log"`

	// Keys remaps viewer actions (next, prev, first, last, theme, help,
	// close, quit) to Bubble Tea key names.
	Keys map[string][]string `yaml:"keys,omitempty" koanf:"keys"`
}

// PopplerConfig locates the poppler utilities used to rasterize PDFs.
type PopplerConfig struct {
	PDFInfo  string `yaml:"pdfinfo" koanf:"pdfinfo"`
	PDFToPPM string `yaml:"pdftoppm" koanf:"pdftoppm"`
}

// ScaleConfig is the two-tier responsive scale policy.
type ScaleConfig struct {
	Small      float64 `yaml:"small" koanf:"small"`
	Default    float64 `yaml:"default" koanf:"default"`
	Breakpoint int     `yaml:"breakpoint" koanf:"breakpoint"`
}

// SwipeConfig holds gesture thresholds in virtual pixels.
type SwipeConfig struct {
	Threshold         float64 `yaml:"threshold" koanf:"threshold"`
	VerticalThreshold float64 `yaml:"vertical_threshold" koanf:"vertical_threshold"`
}

// CellConfig is the virtual pixel size of one terminal cell.
type CellConfig struct {
	Width  int `yaml:"width" koanf:"width"`
	Height int `yaml:"height" koanf:"height"`
}

// PrefsConfig selects where the theme preference is persisted.
type PrefsConfig struct {
	Backend string `yaml:"backend" koanf:"backend"`
	Path    string `yaml:"path" koanf:"path"`
}

// ThemeConfig points at optional JSON palette overrides.
type ThemeConfig struct {
	LightFile string `yaml:"light_file" koanf:"light_file"`
	DarkFile  string `yaml:"dark_file" koanf:"dark_file"`
}

// LogConfig controls log verbosity and destination.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	File  string `yaml:"file" koanf:"file"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Document: DefaultDocument,
		Engine:   EngineAuto,
		Poppler: PopplerConfig{
			PDFInfo:  "pdfinfo",
			PDFToPPM: "pdftoppm",
		},
		Scale: ScaleConfig{
			Small:      1.2,
			Default:    1.5,
			Breakpoint: 768,
		},
		Swipe: SwipeConfig{
			Threshold:         50,
			VerticalThreshold: 50,
		},
		Cell: CellConfig{
			Width:  8,
			Height: 16,
		},
		Prefs: PrefsConfig{
			Backend: PrefsSQLite,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
