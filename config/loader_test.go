package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir(%q) error = %v", old, err)
		}
	})
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default format text, got %s", cfg.Output.Format)
	}
}

func TestLoader_Load_ProjectConfigInParent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	content := "output:\n  format: json\n"
	if err := os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	chdir(t, nested)

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected project config format json, got %s", cfg.Output.Format)
	}
}

func TestLoader_Load_ExplicitWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	chdir(t, dir)

	project := "output:\n  format: json\n  precision: 3\n"
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(project), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	explicitPath := filepath.Join(dir, "override.yaml")
	explicit := "output:\n  format: text\n"
	if err := os.WriteFile(explicitPath, []byte(explicit), 0644); err != nil {
		t.Fatalf("write explicit config: %v", err)
	}

	cfg, err := NewLoader(nil).Load(explicitPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("explicit config should win, got %s", cfg.Output.Format)
	}
	if cfg.OutputPrecision() != 3 {
		t.Errorf("explicit config should only override format, got precision %d", cfg.OutputPrecision())
	}
}

func TestLoader_Load_ZeroPrecision(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	chdir(t, dir)

	project := "output:\n  precision: 0\n"
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(project), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputPrecision() != 0 {
		t.Errorf("expected precision 0 from project config, got %d", cfg.OutputPrecision())
	}
}

func TestLoader_Load_ExplicitMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	if _, err := NewLoader(nil).Load("/nonexistent/gpacalc.yaml"); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoader_Load_InvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	chdir(t, dir)

	bad := "output:\n  format: xml\n"
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(bad), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	if _, err := NewLoader(nil).Load(""); err == nil {
		t.Error("expected validation error for unknown format")
	}
}
