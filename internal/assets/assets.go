// Package assets locates and copies the image files a course export ships
// in its static/ directory, so the ../images/ links the renderer emits
// resolve next to the generated document.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Traeelyn/xml-html-to-markdown/internal/fileutil"
)

// imageExtensions are the file types copied from static/.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// CollectImages returns the image files under the export's static
// directory, in lexical walk order. A missing static directory yields nil.
func CollectImages(courseRoot string) []string {
	staticDir := filepath.Join(courseRoot, "static")
	var images []string
	_ = filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			images = append(images, path)
		}
		return nil
	})
	return images
}

// CopyImages copies the export's images into dstDir, creating it if needed,
// and returns how many files were copied. Name collisions resolve in walk
// order: last write wins.
func CopyImages(courseRoot, dstDir string) (int, error) {
	images := CollectImages(courseRoot)
	if len(images) == 0 {
		return 0, nil
	}
	if err := fileutil.EnsureDir(dstDir); err != nil {
		return 0, err
	}
	for _, src := range images {
		if err := copyFile(src, filepath.Join(dstDir, filepath.Base(src))); err != nil {
			return 0, err
		}
	}
	return len(images), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
