package olx2md

import "errors"

// Sentinel errors for library operations. Everything below the converter —
// tree building and rendering — fails soft instead of returning errors;
// these cover the converter's own input validation and the preview stage.
var (
	ErrEmptyCoursePath = errors.New("course path cannot be empty")
	ErrCourseNotFound  = errors.New("no course pointer file found")
	ErrPreviewRender   = errors.New("HTML preview rendering failed")
)
