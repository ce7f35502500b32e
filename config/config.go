// Package config resolves runtime settings from defaults, an optional TOML file and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/led-invaders/constants"
	"github.com/lixenwraith/led-invaders/input"
)

// Config holds every runtime setting
type Config struct {
	Frontend string        `toml:"frontend"`
	Tick     time.Duration `toml:"tick"`
	Keymap   string        `toml:"keymap"`
	Debug    bool          `toml:"debug"`
	Scale    float64       `toml:"scale"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Frontend: constants.FrontendTerminal,
		Tick:     constants.TickInterval,
		Scale:    1,
	}
}

// Load reads a TOML file over the defaults
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Parse builds a Config from command-line args
// Precedence: flags set on the command line, then the -config file, then defaults
func Parse(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	def := Default()
	var over Config
	path := fs.String("config", "", "path to a TOML config file")
	fs.StringVar(&over.Frontend, "frontend", def.Frontend, "frontend: terminal or window")
	fs.DurationVar(&over.Tick, "tick", def.Tick, "delay between game ticks")
	fs.StringVar(&over.Keymap, "keymap", def.Keymap, "path to a TOML keymap override")
	fs.BoolVar(&over.Debug, "debug", def.Debug, "write a debug log under logs/")
	fs.Float64Var(&over.Scale, "scale", def.Scale, "window frontend scale factor")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = over.Frontend
		case "tick":
			cfg.Tick = over.Tick
		case "keymap":
			cfg.Keymap = over.Keymap
		case "debug":
			cfg.Debug = over.Debug
		case "scale":
			cfg.Scale = over.Scale
		}
	})

	return cfg, cfg.Validate()
}

// Validate checks value ranges
func (c Config) Validate() error {
	var errs []error
	switch c.Frontend {
	case constants.FrontendTerminal, constants.FrontendWindow:
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	if c.Tick < constants.MinTickInterval {
		errs = append(errs, fmt.Errorf("tick %v below minimum %v", c.Tick, constants.MinTickInterval))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	return errors.Join(errs...)
}

// KeyTable returns the default bindings merged with the keymap file, if any
func (c Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if c.Keymap == "" {
		return base, nil
	}

	data, err := os.ReadFile(c.Keymap)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", c.Keymap, err)
	}
	return input.MergeKeyTable(base, override), nil
}
