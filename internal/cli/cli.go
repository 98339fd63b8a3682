package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config. Flags that are set
// explicitly win over the --config file, which wins over defaults.
func ParseArgs(args []string) (*Config, error) {
	flags := DefaultConfig()

	fs := pflag.NewFlagSet("gen-shape", pflag.ContinueOnError)
	fs.StringVarP(&flags.Path, "path", "p", flags.Path, "package pattern to scan for //shape: directives")
	fs.StringSliceVarP(&flags.Types, "type", "t", nil, "type names to derive (repeatable or comma-separated); all marked types by default")
	fs.StringVarP(&flags.Filename, "filename", "o", flags.Filename, "output file name, relative to the package directory")
	fs.IntVarP(&flags.Jobs, "jobs", "j", flags.Jobs, "declarations derived in parallel")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored diagnostics")
	fs.StringVarP(&flags.ConfigFile, "config", "c", "", "TOML file with default options")
	fs.BoolVarP(&flags.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.ShowVersion {
		return flags, nil
	}

	cfg := DefaultConfig()
	if flags.ConfigFile != "" {
		if err := cfg.LoadFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}
	overlayChanged(fs, cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overlayChanged(fs *pflag.FlagSet, cfg, flags *Config) {
	cfg.ConfigFile = flags.ConfigFile
	if fs.Changed("path") {
		cfg.Path = flags.Path
	}
	if fs.Changed("type") {
		cfg.Types = flags.Types
	}
	if fs.Changed("filename") {
		cfg.Filename = flags.Filename
	}
	if fs.Changed("jobs") {
		cfg.Jobs = flags.Jobs
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if fs.Changed("no-color") {
		cfg.NoColor = flags.NoColor
	}
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
