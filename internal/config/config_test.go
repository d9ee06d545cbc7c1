package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Breakpoint != 768 {
		t.Errorf("Breakpoint: got %d, want 768", cfg.Breakpoint)
	}
	if cfg.CellWidth != 8 {
		t.Errorf("CellWidth: got %d, want 8", cfg.CellWidth)
	}
	if cfg.FeedbackDelay != 3*time.Second {
		t.Errorf("FeedbackDelay: got %s, want 3s", cfg.FeedbackDelay)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level: got %q, want info", cfg.Log.Level)
	}
	if cfg.Columns() != 96 {
		t.Errorf("Columns: got %d, want 96", cfg.Columns())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	data := []byte("breakpoint: 640\nfeedback_delay: 1500ms\ndata_dir: " + dir + "\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Breakpoint != 640 {
		t.Errorf("Breakpoint: got %d, want 640", cfg.Breakpoint)
	}
	if cfg.FeedbackDelay != 1500*time.Millisecond {
		t.Errorf("FeedbackDelay: got %s, want 1.5s", cfg.FeedbackDelay)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q, want debug", cfg.Log.Level)
	}
	if cfg.LogPath() != filepath.Join(dir, "folio.log") {
		t.Errorf("LogPath: got %q", cfg.LogPath())
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for explicit missing config file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FOLIO_BREAKPOINT", "1024")
	t.Setenv("FOLIO_LOG_LEVEL", "warn")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Breakpoint != 1024 {
		t.Errorf("Breakpoint: got %d, want 1024", cfg.Breakpoint)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level: got %q, want warn", cfg.Log.Level)
	}
}

func TestFlagsOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data-dir", "", "")
	fs.String("content", "", "")
	if err := fs.Parse([]string{"--data-dir", dataDir, "--content", "site.yaml"}); err != nil {
		t.Fatalf("setup: parse flags: %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dataDir {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, dataDir)
	}
	if cfg.Content != "site.yaml" {
		t.Errorf("Content: got %q, want site.yaml", cfg.Content)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("cell_width: 0\n"), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}
	if _, err := Load(path, nil); err == nil {
		t.Error("expected validation error for cell_width 0")
	}
}
