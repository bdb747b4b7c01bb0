// Package config resolves root options from flags and an optional TOML file.
//
// Precedence is defaults, then the file named by -config, then flags that
// were set explicitly on the command line. Without -config no file is read.
package config

import (
	"flag"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todolist/internal/logging"
)

var (
	Themes      = []string{"classic", "neon", "mono"}
	ColorModes  = []string{"auto", "always", "never"}
	IDModes     = []string{"count", "max"}
	OutputModes = []string{"text", "json", "yaml"}
)

// Config holds the root options shared by every subcommand.
type Config struct {
	Group    bool   `toml:"group"`
	Theme    string `toml:"theme"`
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
	IDs      string `toml:"ids"`
	Output   string `toml:"output"`

	// Path is the config file that was read, if any.
	Path string `toml:"-"`
}

// Default returns the built-in options.
func Default() Config {
	return Config{
		Theme:    "classic",
		Color:    "auto",
		LogLevel: logging.DefaultLevel,
		IDs:      "count",
		Output:   "text",
	}
}

// Parse registers the root flags on fs, parses args and returns the resolved
// config together with the remaining arguments (subcommand first).
func Parse(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	def := Default()
	var (
		configPath = fs.String("config", "", "read options from a TOML `file`")
		group      = fs.Bool("group", def.Group, "group output by pending/done")
		theme      = fs.String("theme", def.Theme, "color theme: classic, neon or mono")
		color      = fs.String("color", def.Color, "color output: auto, always or never")
		logLevel   = fs.String("log-level", def.LogLevel, "log level: debug, info, warn, error")
		ids        = fs.String("ids", def.IDs, "id assignment for new todos: count or max")
		output     = fs.String("o", def.Output, "output format for get: text, json or yaml")
	)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := def
	if *configPath != "" {
		fileCfg, err := LoadFile(*configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = fileCfg
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "group":
			cfg.Group = *group
		case "theme":
			cfg.Theme = *theme
		case "color":
			cfg.Color = *color
		case "log-level":
			cfg.LogLevel = *logLevel
		case "ids":
			cfg.IDs = *ids
		case "o":
			cfg.Output = *output
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, fs.Args(), nil
}

// LoadFile reads a TOML file on top of the defaults. Unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, nil
}

// Validate checks every enumerated option.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(c.Theme)
	if err := oneOf("theme", c.Theme, Themes); err != nil {
		return err
	}
	if err := oneOf("color", c.Color, ColorModes); err != nil {
		return err
	}
	if err := oneOf("ids", c.IDs, IDModes); err != nil {
		return err
	}
	if err := oneOf("output", c.Output, OutputModes); err != nil {
		return err
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

func oneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q (want %s)", name, value, strings.Join(allowed, ", "))
}
