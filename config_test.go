package surfview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WindowWidth != DefaultWindowWidth || cfg.WindowHeight != DefaultWindowHeight {
		t.Errorf("unexpected default window size %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Background != (RGB{0, 0, 0}) {
		t.Errorf("default background should be black, got %v", cfg.Background)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	data := []byte("title: brain\nwindow_width: 640\nbackground: [0.1, 0.1, 0.1]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Title != "brain" {
		t.Errorf("title = %q, want overridden value", cfg.Title)
	}
	if cfg.WindowWidth != 640 {
		t.Errorf("window width = %d, want 640", cfg.WindowWidth)
	}
	if cfg.WindowHeight != DefaultWindowHeight {
		t.Errorf("window height = %d, want default %d", cfg.WindowHeight, DefaultWindowHeight)
	}
	if !almostEqual(cfg.Background[0], 0.1) {
		t.Errorf("background = %v, want overridden value", cfg.Background)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window_width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a validation error for a negative window size")
	}
}
