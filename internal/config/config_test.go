package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Input != "robot_icon.svg" {
		t.Errorf("expected Input=robot_icon.svg, got %s", cfg.Input)
	}
	if cfg.Output != "robot_icon_1024.png" {
		t.Errorf("expected Output=robot_icon_1024.png, got %s", cfg.Output)
	}
	if cfg.Size != 1024 {
		t.Errorf("expected Size=1024, got %d", cfg.Size)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("ICONGEN_INPUT", "")
	t.Setenv("ICONGEN_OUTPUT", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "icongen.yaml")

	cfg := DefaultConfig()
	cfg.Input = "logo.svg"
	cfg.Size = 512
	cfg.Sizes = []int{32, 512}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("ICONGEN_INPUT", "")
	t.Setenv("ICONGEN_OUTPUT", "")

	path := filepath.Join(t.TempDir(), "icongen.yaml")
	if err := os.WriteFile(path, []byte("input: custom.svg\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Input != "custom.svg" {
		t.Errorf("expected Input=custom.svg, got %s", loaded.Input)
	}
	if loaded.Size != 1024 {
		t.Errorf("expected default Size=1024, got %d", loaded.Size)
	}
	if loaded.ToolTimeout != "30s" {
		t.Errorf("expected default ToolTimeout=30s, got %s", loaded.ToolTimeout)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ICONGEN_INPUT", "env.svg")
	t.Setenv("ICONGEN_OUTPUT", "env.png")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	if cfg.Input != "env.svg" {
		t.Errorf("expected Input=env.svg, got %s", cfg.Input)
	}
	if cfg.Output != "env.png" {
		t.Errorf("expected Output=env.png, got %s", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative iconset size", func(c *Config) { c.Sizes = []int{64, -1} }},
		{"bad timeout", func(c *Config) { c.ToolTimeout = "soon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_ToolTimeoutDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ToolTimeout = "5s"
	if d := cfg.ToolTimeoutDuration(); d.Seconds() != 5 {
		t.Errorf("expected 5s, got %v", d)
	}
}
