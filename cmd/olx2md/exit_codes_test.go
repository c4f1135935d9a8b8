package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	olx2md "github.com/Traeelyn/xml-html-to-markdown"
	"github.com/Traeelyn/xml-html-to-markdown/internal/archive"
	"github.com/Traeelyn/xml-html-to-markdown/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", errors.New("boom"), ExitGeneral},
		{"preview render", olx2md.ErrPreviewRender, ExitGeneral},

		{"no input", ErrNoInput, ExitIO},
		{"write markdown", ErrWriteMarkdown, ExitIO},
		{"write preview", ErrWritePreview, ExitIO},
		{"course not found", olx2md.ErrCourseNotFound, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"archive open", archive.ErrOpenArchive, ExitIO},
		{"archive read", archive.ErrReadArchive, ExitIO},

		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty course path", olx2md.ErrEmptyCoursePath, ExitUsage},
		{"unsafe archive path", archive.ErrUnsafePath, ExitUsage},

		{"wrapped course not found", fmt.Errorf("converting: %w", olx2md.ErrCourseNotFound), ExitIO},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
