package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/matrixcode/internal/engine"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("clock:\n  twelve_hour: true\ndisplay:\n  theme: amber\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Use12Hour() {
		t.Error("twelve_hour override not applied")
	}
	if cfg.Display.Theme != "amber" {
		t.Errorf("theme = %q, expected amber", cfg.Display.Theme)
	}
	// Untouched keys keep their defaults.
	if cfg.Grid != Default().Grid || cfg.Animation != Default().Animation {
		t.Errorf("partial file changed other sections: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local file is used when there is no user file.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("animation:\n  spawn_burst: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Animation.SpawnBurst != 5 {
		t.Errorf("local config not used: spawn_burst = %d", cfg.Animation.SpawnBurst)
	}

	// User file wins over the local one.
	if err := os.MkdirAll(filepath.Join(home, ".matrixcode"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".matrixcode", "config.yaml"), []byte("animation:\n  spawn_burst: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Animation.SpawnBurst != 2 {
		t.Errorf("user config not preferred: spawn_burst = %d", cfg.Animation.SpawnBurst)
	}
}

func TestValidate(t *testing.T) {
	known := func(id string) bool { return id == "green" }

	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero cell width", func(c *Config) { c.Display.CellWidth = 0 }, false},
		{"unknown theme", func(c *Config) { c.Display.Theme = "plaid" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate(known)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidDisplay) {
				t.Fatalf("error = %v, expected ErrInvalidDisplay", err)
			}
		})
	}

	cfg := Default()
	cfg.Display.Theme = "anything"
	if err := cfg.Validate(nil); err != nil {
		t.Errorf("nil theme check should skip theme validation: %v", err)
	}
}

func TestSeparatorRune(t *testing.T) {
	cfg := Default()
	if r := cfg.SeparatorRune(); r != ':' {
		t.Errorf("SeparatorRune() = %q, expected ':'", r)
	}
	cfg.Clock.SeparatorGlyph = "•x"
	if r := cfg.SeparatorRune(); r != '•' {
		t.Errorf("SeparatorRune() = %q, expected '•'", r)
	}
	cfg.Clock.SeparatorGlyph = ""
	if r := cfg.SeparatorRune(); r != ':' {
		t.Errorf("empty glyph: SeparatorRune() = %q, expected ':'", r)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	if opts := cfg.EngineOptions(); opts != engine.DefaultOptions() {
		t.Errorf("default config options = %+v, expected %+v", opts, engine.DefaultOptions())
	}

	cfg.Grid.Rows = 11
	cfg.Clock.Separator = true
	cfg.Clock.SeparatorGlyph = "|"
	opts := cfg.EngineOptions()
	if opts.Rows != 11 || !opts.Separator || opts.SeparatorGlyph != '|' {
		t.Errorf("EngineOptions() = %+v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("converted options invalid: %v", err)
	}
}
