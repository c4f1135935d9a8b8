package olx

import (
	"os"
	"path/filepath"
	"testing"
)

// writeCourse lays out a course export under dir. files maps paths relative
// to the export root to file contents.
func writeCourse(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuild_FullCourse(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"course/demo.xml":     `<course display_name="X"><chapter url_name="c1"/></course>`,
		"chapter/c1.xml":      `<chapter display_name="Y"><sequential url_name="s1"/></chapter>`,
		"sequential/s1.xml":   `<sequential display_name="Z"><vertical url_name="v1"/></sequential>`,
		"vertical/v1.xml":     `<vertical display_name="Unit"><problem url_name="p1"/><html url_name="h1"/><video url_name="vid1"/></vertical>`,
		"problem/p1.xml":      `<problem display_name="Quiz"><stringresponse answer="42"><p>Enter value</p></stringresponse></problem>`,
		"html/h1.xml":         `<html display_name="Prose" filename="h1"/>`,
		"html/h1.html":        `<p>hello</p>`,
		"video/vid1.xml":      `<video display_name="Intro" youtube_id_1_0="abc123"/>`,
		"about/overview.html": `<p>welcome</p>`,
	})

	course, ok := NewBuilder(nil).Build(filepath.Join(dir, "course", "demo.xml"), KindCourse)
	if !ok {
		t.Fatal("Build(course) ok = false, want true")
	}
	if course.Kind != KindCourse || course.DisplayName != "X" {
		t.Errorf("course = {%q %q}", course.Kind, course.DisplayName)
	}

	// about is synthesized ahead of the chapters.
	if len(course.Children) != 2 {
		t.Fatalf("course children = %d, want 2 (about + chapter)", len(course.Children))
	}
	about := course.Children[0]
	if about.Kind != KindAbout {
		t.Fatalf("first child kind = %q, want about", about.Kind)
	}
	if len(about.Children) != 1 || about.Children[0].Kind != KindHTMLContent {
		t.Error("about node has no htmlContent child")
	}

	chapter := course.Children[1]
	if chapter.Kind != KindChapter || chapter.DisplayName != "Y" {
		t.Errorf("chapter = {%q %q}", chapter.Kind, chapter.DisplayName)
	}

	sequential := chapter.Children[0]
	if sequential.Kind != KindSequential || sequential.DisplayName != "Z" {
		t.Errorf("sequential = {%q %q}", sequential.Kind, sequential.DisplayName)
	}

	// The vertical is flattened into a synthetic container.
	if len(sequential.Children) != 1 {
		t.Fatalf("sequential children = %d, want 1", len(sequential.Children))
	}
	container := sequential.Children[0]
	if container.Kind != KindVerticalContainer || container.DisplayName != "Unit" {
		t.Errorf("container = {%q %q}, want vertical-container Unit", container.Kind, container.DisplayName)
	}
	if len(container.Children) != 3 {
		t.Fatalf("container children = %d, want 3", len(container.Children))
	}

	problem := container.Children[0]
	if problem.Kind != KindProblem || problem.Question == nil {
		t.Fatal("problem node missing parsed question subtree")
	}
	if problem.Question.Children[0].Answer != "42" {
		t.Error("problem question answer not parsed")
	}

	html := container.Children[1]
	if html.Kind != KindHTML {
		t.Fatalf("second child kind = %q, want html", html.Kind)
	}
	if len(html.Children) != 1 || html.Children[0].Kind != KindHTMLContent {
		t.Fatal("html node missing htmlContent companion child")
	}
	if got := html.Children[0].File; got != filepath.Join(dir, "html", "h1.html") {
		t.Errorf("htmlContent file = %q", got)
	}

	video := container.Children[2]
	if video.Kind != KindVideo || video.Video == nil {
		t.Fatal("video node missing metadata")
	}
	if video.Video.YouTubeID != "abc123" || video.Video.DisplayName != "Intro" {
		t.Errorf("video meta = %+v", video.Video)
	}
}

func TestBuild_MissingReferencesAreOmitted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"course/demo.xml": `<course display_name="X"><chapter url_name="gone"/><chapter url_name="c1"/></course>`,
		"chapter/c1.xml":  `<chapter display_name="Y"/>`,
	})

	course, ok := NewBuilder(nil).Build(filepath.Join(dir, "course", "demo.xml"), KindCourse)
	if !ok {
		t.Fatal("Build ok = false")
	}
	// No about file, chapter "gone" missing: exactly one child survives.
	if len(course.Children) != 1 || course.Children[0].DisplayName != "Y" {
		t.Errorf("children = %+v, want only chapter Y", course.Children)
	}
}

func TestBuild_UnparseableReferenceIsOmitted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"course/demo.xml": `<course display_name="X"><chapter url_name="bad"/></course>`,
		"chapter/bad.xml": `<chapter display_name="Broken"`,
	})

	course, ok := NewBuilder(nil).Build(filepath.Join(dir, "course", "demo.xml"), KindCourse)
	if !ok {
		t.Fatal("Build ok = false")
	}
	if len(course.Children) != 0 {
		t.Errorf("children = %d, want 0", len(course.Children))
	}
}

func TestBuild_RejectsWrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{"course/demo.txt": `<course/>`})

	if _, ok := NewBuilder(nil).Build(filepath.Join(dir, "course", "demo.txt"), KindCourse); ok {
		t.Error("Build(.txt) ok = true, want false")
	}
	if _, ok := NewBuilder(nil).Build("", KindCourse); ok {
		t.Error("Build(empty path) ok = true, want false")
	}
}

func TestBuild_HTMLCompanionByStem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"html/h2.xml":  `<html display_name="No filename attr"/>`,
		"html/h2.html": `<p>stem match</p>`,
		"html/h3.xml":  `<html display_name="No companion"/>`,
	})

	b := NewBuilder(nil)

	withCompanion, ok := b.Build(filepath.Join(dir, "html", "h2.xml"), KindHTML)
	if !ok || len(withCompanion.Children) != 1 {
		t.Error("companion .html by stem not attached")
	}

	without, ok := b.Build(filepath.Join(dir, "html", "h3.xml"), KindHTML)
	if !ok {
		t.Fatal("Build ok = false")
	}
	if len(without.Children) != 0 {
		t.Error("html node without companion grew a child")
	}
}

func TestBuild_ProblemAuthoredAsHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"problem/raw.html": `<p>prose problem</p>`,
	})

	problem, ok := NewBuilder(nil).Build(filepath.Join(dir, "problem", "raw.xml"), KindProblem)
	if !ok {
		t.Fatal("Build ok = false, want html sibling resolved")
	}
	if problem.Question != nil {
		t.Error("html-backed problem should carry no question subtree")
	}
	if problem.File != filepath.Join(dir, "problem", "raw.html") {
		t.Errorf("problem file = %q, want .html sibling", problem.File)
	}
}

func TestBuild_ImageResolvesIntoStatic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"image/img1.xml": `<image display_name="Logo" filename="logo.png"/>`,
	})

	img, ok := NewBuilder(nil).Build(filepath.Join(dir, "image", "img1.xml"), KindImage)
	if !ok {
		t.Fatal("Build ok = false")
	}
	if img.File != filepath.Join(dir, "static", "logo.png") {
		t.Errorf("image file = %q, want static/logo.png path", img.File)
	}
}

func TestBuild_OrderingFollowsSourceDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCourse(t, dir, map[string]string{
		"course/demo.xml": `<course display_name="X"><chapter url_name="b"/><chapter url_name="a"/></course>`,
		"chapter/a.xml":   `<chapter display_name="A"/>`,
		"chapter/b.xml":   `<chapter display_name="B"/>`,
	})

	course, _ := NewBuilder(nil).Build(filepath.Join(dir, "course", "demo.xml"), KindCourse)
	if len(course.Children) != 2 || course.Children[0].DisplayName != "B" || course.Children[1].DisplayName != "A" {
		t.Errorf("children not in source order: %+v", course.Children)
	}
}

func TestTitle_FallsBackToFileStem(t *testing.T) {
	t.Parallel()

	n := &Node{Kind: KindChapter, File: "/x/chapter/intro.xml"}
	if n.Title() != "intro" {
		t.Errorf("Title() = %q, want intro", n.Title())
	}
	n.DisplayName = "Named"
	if n.Title() != "Named" {
		t.Errorf("Title() = %q, want Named", n.Title())
	}
}
