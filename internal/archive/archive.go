// Package archive extracts tar.gz course exports.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for archive operations.
var (
	ErrOpenArchive = errors.New("failed to open archive")
	ErrReadArchive = errors.New("failed to read archive")
	ErrUnsafePath  = errors.New("archive entry escapes destination")
)

// IsTarGz reports whether path names a gzipped tarball by extension.
func IsTarGz(path string) bool {
	return strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz")
}

// ExtractTarGz unpacks the archive at src into dst, refusing entries that
// would escape it. Non-regular entries other than directories are skipped.
func ExtractTarGz(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenArchive, err)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenArchive, err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadArchive, err)
		}

		target, err := safeJoin(dst, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := extractFile(tr, target); err != nil {
				return err
			}
		}
	}
}

func extractFile(tr *tar.Reader, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", target, err)
	}
	if _, err := io.Copy(out, tr); err != nil {
		_ = out.Close()
		return fmt.Errorf("writing file %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", target, err)
	}
	return nil
}

// safeJoin joins name under dst and rejects results outside dst.
func safeJoin(dst, name string) (string, error) {
	target := filepath.Join(dst, name)
	cleanDst := filepath.Clean(dst) + string(os.PathSeparator)
	if target != filepath.Clean(dst) && !strings.HasPrefix(target, cleanDst) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return target, nil
}
