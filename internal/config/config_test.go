package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Output.Filename != "course.md" {
		t.Errorf("default filename = %q, want course.md", cfg.Output.Filename)
	}
	if !cfg.Images.Copy || cfg.Images.Dir != "images" {
		t.Errorf("default images = %+v, want copy into images/", cfg.Images)
	}
	if cfg.Preview.Enabled {
		t.Error("preview enabled by default, want disabled")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "olx2md.yaml")
	content := `output:
  dir: /tmp/out
  filename: book.md
images:
  copy: false
preview:
  enabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Dir != "/tmp/out" || cfg.Output.Filename != "book.md" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Images.Copy {
		t.Error("images.copy = true, want false")
	}
	if !cfg.Preview.Enabled {
		t.Error("preview.enabled = false, want true")
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "olx2md.yaml")
	if err := os.WriteFile(path, []byte("nonsense: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want ErrConfigParse", err)
	}
}
