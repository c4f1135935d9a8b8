// Package olx2md converts an OLX-style e-learning course export — a
// directory tree of cross-referenced XML and HTML fragments describing
// chapters, lessons, problems, and media — into a single linear Markdown
// document with embedded quiz syntax.
//
// # Quick Start
//
// Create a converter and point it at an export directory:
//
//	conv := olx2md.NewConverter()
//	res, err := conv.Convert(ctx, olx2md.Input{
//	    CoursePath: "/path/to/export",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("course.md", []byte(res.Markdown), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Course tree building: the root pointer file and every file it
//     references (course → chapter → sequential → vertical → problem/
//     html/video) are resolved into one in-memory tree. Missing or
//     unparseable references are omitted, never fatal.
//  2. Rendering: the tree is walked depth-first. Structural nodes become
//     headings, problems become quiz Markdown, prose fragments go through
//     the HTML→Markdown converter, and images and videos become embed
//     lines.
//  3. Postprocessing: line endings are normalized and runs of blank lines
//     are compressed.
//  4. Optional HTML preview via goldmark (Input.HTMLPreview).
//
// # Quiz Markdown Dialect
//
// Problems render into a bracketed quiz syntax:
//
//	- [(x)] right   - [( )] wrong     single choice
//	- [[x]] right   - [[ ]] wrong     any number of choices
//	[[answer]]                        fill in the blank
//	[[A
//	| (B)
//	]]                                dropdown, (B) is correct
//	- [[?]] hint text                 hint
//	!?[name](https://www.youtube.com/watch?v=id)   video embed
//
// Question types without a rendering rule produce a visible
// "> **Unsupported content: ...**" banner so content loss is never silent.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := olx2md.NewConverter(
//	    olx2md.WithLogger(logger),
//	)
package olx2md
