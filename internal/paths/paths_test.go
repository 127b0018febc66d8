package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultDataDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".local", "share", "weeklynotes")
	if dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}

func TestDefaultConfigPathUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "weeklynotes", "config.toml")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}

func TestDataDir(t *testing.T) {
	t.Run("returns override when provided", func(t *testing.T) {
		dir, err := DataDir("/custom/path")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dir != "/custom/path" {
			t.Fatalf("expected /custom/path, got %s", dir)
		}
	})

	t.Run("honors the environment variable", func(t *testing.T) {
		t.Setenv(DataDirEnv, "/env/path")

		dir, err := DataDir("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dir != "/env/path" {
			t.Fatalf("expected /env/path, got %s", dir)
		}
	})

	t.Run("falls back to the default location", func(t *testing.T) {
		t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
		t.Setenv(DataDirEnv, "")

		dir, err := DataDir("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := filepath.Join("/tmp", "test-home", ".local", "share", "weeklynotes")
		if dir != expected {
			t.Fatalf("expected %s, got %s", expected, dir)
		}
	})
}
