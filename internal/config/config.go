package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds driver-side settings: everything outside the simulation core.
// Values come from defaults, then an optional TOML file, then flags.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Sim     SimConfig     `toml:"sim"`
	Brush   BrushConfig   `toml:"brush"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Scale int `toml:"scale"`
	TPS   int `toml:"tps"`
}

type SimConfig struct {
	Seed     int64  `toml:"seed"`
	SavePath string `toml:"save_path"`
}

type BrushConfig struct {
	Radius   float64 `toml:"radius"`
	Material string  `toml:"material"`
}

type ServerConfig struct {
	BindAddress string `toml:"bind_address"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Window:  WindowConfig{Scale: 3, TPS: 60},
		Sim:     SimConfig{Seed: 1337, SavePath: "save0.bin"},
		Brush:   BrushConfig{Radius: 10, Material: "sand"},
		Server:  ServerConfig{BindAddress: "localhost:5000"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads a TOML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Bind attaches the commonly-overridden settings to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Window.Scale, "scale", c.Window.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Window.TPS, "tps", c.Window.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for the simulation RNG")
	fs.StringVar(&c.Sim.SavePath, "save", c.Sim.SavePath, "path used by save/load")
	fs.StringVar(&c.Server.BindAddress, "addr", c.Server.BindAddress, "bind address for the frame streamer")
}

// ParseFlags resolves the configuration from defaults, an optional TOML file
// (-config), and command-line overrides, in that order of precedence.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()
	path := fs.String("config", "", "optional TOML config file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		return cfg, nil
	}

	loaded, err := Load(*path)
	if err != nil {
		return nil, err
	}
	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			loaded.Window.Scale = cfg.Window.Scale
		case "tps":
			loaded.Window.TPS = cfg.Window.TPS
		case "seed":
			loaded.Sim.Seed = cfg.Sim.Seed
		case "save":
			loaded.Sim.SavePath = cfg.Sim.SavePath
		case "addr":
			loaded.Server.BindAddress = cfg.Server.BindAddress
		}
	})
	return loaded, nil
}
