package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "does-not-exist.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("expected empty data-dir, got %q", cfg.DataDir)
	}
	if cfg.Notes.HideClosed {
		t.Error("expected hide-closed to default to false")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "data-dir = \"/notes/data\"\n\n[notes]\nhide-closed = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.DataDir != "/notes/data" {
		t.Errorf("expected data-dir /notes/data, got %q", cfg.DataDir)
	}
	if !cfg.Notes.HideClosed {
		t.Error("expected hide-closed true")
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data-dir = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnv, path)

	if _, err := Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}
