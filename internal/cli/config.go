package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/seitarof/gen-shape/internal/logger"
)

const (
	defaultPath     = "."
	defaultFilename = "shape_gen.go"
)

// Config stores options for a single generation run. Everything except the
// config file path and version switch can come from a TOML file.
type Config struct {
	Path     string   `toml:"path"`
	Types    []string `toml:"types"`
	Filename string   `toml:"filename"`
	Jobs     int      `toml:"jobs"`
	LogLevel string   `toml:"log_level"`
	NoColor  bool     `toml:"no_color"`

	ConfigFile  string `toml:"-"`
	ShowVersion bool   `toml:"-"`
}

// DefaultConfig returns the options used when neither flags nor a config
// file set them.
func DefaultConfig() *Config {
	return &Config{
		Path:     defaultPath,
		Filename: defaultFilename,
		Jobs:     runtime.GOMAXPROCS(0),
		LogLevel: string(logger.WarnLevel),
	}
}

// LoadFile overlays the TOML file at path onto c. Unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate normalizes c and rejects options the runner cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("--path is required")
	}
	if strings.TrimSpace(c.Filename) == "" {
		return fmt.Errorf("--filename is required")
	}
	if !strings.HasSuffix(c.Filename, ".go") {
		return fmt.Errorf("--filename %q must end in .go", c.Filename)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("--jobs must not be negative, got %d", c.Jobs)
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.GOMAXPROCS(0)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("--log-level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	c.Types = splitCommaList(strings.Join(c.Types, ","))
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() logger.LogLevel {
	level, ok := logger.ParseLevel(c.LogLevel)
	if !ok {
		return logger.WarnLevel
	}
	return level
}

// outputFile is the resolved path the generator writes to.
type outputFile string

func (f outputFile) OutputFilename() string {
	return string(f)
}
