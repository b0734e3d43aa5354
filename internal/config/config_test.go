package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Window.Scale != 3 || cfg.Window.TPS != 60 {
		t.Fatalf("unexpected window defaults: %+v", cfg.Window)
	}
	if cfg.Sim.Seed != 1337 {
		t.Fatalf("unexpected seed default: %d", cfg.Sim.Seed)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandfall.toml")
	data := `
[window]
scale = 5

[sim]
seed = 99
save_path = "world.bin"

[server]
bind_address = "0.0.0.0:8080"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Scale != 5 {
		t.Errorf("scale = %d, want 5", cfg.Window.Scale)
	}
	if cfg.Window.TPS != 60 {
		t.Errorf("tps = %d, want default 60", cfg.Window.TPS)
	}
	if cfg.Sim.Seed != 99 || cfg.Sim.SavePath != "world.bin" {
		t.Errorf("sim = %+v", cfg.Sim)
	}
	if cfg.Server.BindAddress != "0.0.0.0:8080" {
		t.Errorf("bind address = %q", cfg.Server.BindAddress)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandfall.toml")
	data := `
[window]
scale = 5
tps = 30
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseFlags(fs, []string{"-config", path, "-tps", "120"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Window.Scale != 5 {
		t.Errorf("scale = %d, want 5 from the file", cfg.Window.Scale)
	}
	if cfg.Window.TPS != 120 {
		t.Errorf("tps = %d, want 120 from the flag", cfg.Window.TPS)
	}
}
