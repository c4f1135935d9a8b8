package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollectImages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"static/a.png":        "a",
		"static/sub/b.JPG":    "b",
		"static/notes.txt":    "not an image",
		"static/style.css":    "not an image",
		"course/c.png":        "outside static",
		"static/diagrams.svg": "d",
	})

	images := CollectImages(root)
	if len(images) != 3 {
		t.Fatalf("CollectImages() = %d files, want 3: %v", len(images), images)
	}
	for _, img := range images {
		img := img
		switch filepath.Base(img) {
		case "a.png", "b.JPG", "diagrams.svg":
		default:
			t.Errorf("unexpected image %q", img)
		}
	}
}

func TestCollectImages_MissingStaticDir(t *testing.T) {
	t.Parallel()

	if images := CollectImages(t.TempDir()); len(images) != 0 {
		t.Errorf("CollectImages() = %v, want none", images)
	}
}

func TestCopyImages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"static/a.png":     "aaa",
		"static/sub/b.png": "bbb",
	})

	dst := filepath.Join(t.TempDir(), "images")
	n, err := CopyImages(root, dst)
	if err != nil {
		t.Fatalf("CopyImages() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CopyImages() = %d, want 2", n)
	}

	data, err := os.ReadFile(filepath.Join(dst, "b.png"))
	if err != nil {
		t.Fatalf("copied file missing: %v", err)
	}
	if string(data) != "bbb" {
		t.Errorf("copied content = %q", data)
	}
}

func TestCopyImages_NothingToCopy(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "images")
	n, err := CopyImages(t.TempDir(), dst)
	if err != nil || n != 0 {
		t.Errorf("CopyImages() = %d, %v, want 0, nil", n, err)
	}
	// The destination directory is not created when there is nothing to copy.
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("images dir created despite empty export")
	}
}
