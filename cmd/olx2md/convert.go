package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	olx2md "github.com/Traeelyn/xml-html-to-markdown"
	"github.com/Traeelyn/xml-html-to-markdown/internal/archive"
	"github.com/Traeelyn/xml-html-to-markdown/internal/assets"
	"github.com/Traeelyn/xml-html-to-markdown/internal/config"
	"github.com/Traeelyn/xml-html-to-markdown/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrWriteMarkdown = errors.New("failed to write markdown file")
	ErrWritePreview  = errors.New("failed to write preview file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// run orchestrates the conversion process.
func run(args []string) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Println("olx2md " + Version)
		return nil
	}

	if len(positional) == 0 {
		printUsage(os.Stderr)
		return ErrNoInput
	}
	input := positional[0]

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, &cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger(flags.verbose)
	defer func() { _ = log.Sync() }()

	// Archives are extracted to a temp dir that lives until the images
	// have been copied out.
	if archive.IsTarGz(input) {
		tmp, err := os.MkdirTemp("", "olx2md-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer func() { _ = os.RemoveAll(tmp) }()

		log.Debug("extracting archive", zap.String("archive", input))
		if err := archive.ExtractTarGz(input, tmp); err != nil {
			return err
		}
		input = locateCourseRoot(tmp)
	}

	conv := olx2md.NewConverter(olx2md.WithLogger(log))
	result, err := conv.Convert(ctx, olx2md.Input{
		CoursePath:  input,
		HTMLPreview: cfg.Preview.Enabled,
	})
	if err != nil {
		return err
	}

	outPath := resolveOutputPath(flags.output, cfg)
	if err := fileutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
	}
	if err := os.WriteFile(outPath, []byte(result.Markdown), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}

	if cfg.Images.Copy {
		dst := filepath.Join(filepath.Dir(outPath), cfg.Images.Dir)
		copied, err := assets.CopyImages(courseRootDir(input), dst)
		if err != nil {
			return fmt.Errorf("copying images: %w", err)
		}
		if flags.verbose && copied > 0 {
			fmt.Fprintf(os.Stderr, "Copied %d image(s) to %s\n", copied, dst)
		}
	}

	if cfg.Preview.Enabled {
		previewPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".html"
		if err := os.WriteFile(previewPath, []byte(result.HTML), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePreview, err)
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", previewPath)
		}
	}

	return nil
}

// loadConfig loads the named config, or searches the conventional
// locations when no --config was given.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

// mergeFlags merges CLI flags into config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.imagesDir != "" {
		cfg.Images.Dir = flags.imagesDir
	}
	if flags.noImages {
		cfg.Images.Copy = false
	}
	if flags.preview {
		cfg.Preview.Enabled = true
	}
}

// resolveOutputPath determines the output file. An --output naming a .md
// file wins outright; otherwise --output, then the config dir, then the
// working directory supply the directory for the configured filename.
func resolveOutputPath(output string, cfg config.Config) string {
	if output != "" && strings.EqualFold(filepath.Ext(output), ".md") {
		return output
	}
	dir := output
	if dir == "" {
		dir = cfg.Output.Dir
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, cfg.Output.Filename)
}

// locateCourseRoot finds the export root inside an extracted archive:
// either the directory itself or a single wrapping top-level directory.
func locateCourseRoot(dir string) string {
	if fileutil.DirExists(filepath.Join(dir, "course")) {
		return dir
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return dir
	}
	sub := filepath.Join(dir, entries[0].Name())
	if fileutil.DirExists(filepath.Join(sub, "course")) {
		return sub
	}
	return dir
}

// courseRootDir maps the input back to the export root: a directory is
// the root itself, a course/<name>.xml pointer file sits one level in.
func courseRootDir(input string) string {
	if fileutil.DirExists(input) {
		return input
	}
	return filepath.Dir(filepath.Dir(input))
}

// newLogger builds the diagnostics logger. Quiet runs get a no-op.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
