package site

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/book-reader/internal/book"
	"github.com/ziadkadry99/book-reader/internal/progress"
)

const testBook = "# The Book\n\n" +
	"## Preface\n\nBefore chapters.\n\n" +
	"## Chapter 1: Foo\n\nFoo body.\n\n" +
	"```bash\n# a shell comment\necho hi\n```\n\n" +
	"### Sub A\n\nSub A body.\n\n" +
	"## Chapter 1: Foo: Key Takeaways\n\n- one\n\n" +
	"## Chapter 2: Bar <Baz>\n\nBar body.\n"

func parseHTML(t *testing.T, data []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parsing html: %v", err)
	}
	return doc
}

// stageRecorder collects the build stages a Generator reports.
type stageRecorder struct {
	total    int
	stages   []progress.Stage
	finished bool
}

func (r *stageRecorder) Start(steps int)                     { r.total = steps }
func (r *stageRecorder) Step(stage progress.Stage, _ string) { r.stages = append(r.stages, stage) }
func (r *stageRecorder) Finish()                             { r.finished = true }

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestRenderHeadingIDsMatchExtraction(t *testing.T) {
	b := book.Load(testBook)
	site, err := Render(b, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])

	var rendered []string
	doc.Find(".prose h1, .prose h2, .prose h3").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		rendered = append(rendered, id)
	})

	// The shell comment inside the code fence is extracted as a level-1
	// heading but never rendered as one.
	var want []string
	for _, h := range b.Headings {
		if h.Title != "a shell comment" {
			want = append(want, h.ID)
		}
	}
	if strings.Join(rendered, ",") != strings.Join(want, ",") {
		t.Errorf("rendered heading ids = %v, want %v", rendered, want)
	}
}

func TestRenderHeadingIDsFollowSourceLines(t *testing.T) {
	source := "## Chapter 1: A\n\n" +
		"Summary\n-------\n\n" +
		"  ## Indented\n\n" +
		"### Step_one\n\n" +
		"## Summary\n"
	b := book.Load(source)
	site, err := Render(b, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])

	for _, h := range b.Headings {
		sel := doc.Find("#" + h.ID)
		if sel.Length() != 1 {
			t.Errorf("extracted id %q matches %d elements, want 1", h.ID, sel.Length())
			continue
		}
		if got := strings.TrimSpace(sel.Text()); got != h.Title {
			t.Errorf("#%s text = %q, want %q", h.ID, got, h.Title)
		}
	}

	// Headings the extractor does not see render without an id.
	doc.Find(".prose h2").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		id, has := s.Attr("id")
		switch text {
		case "Summary":
			if has && id != "summary" {
				t.Errorf("heading %q has id %q", text, id)
			}
		case "Indented":
			if has {
				t.Errorf("indented heading has id %q", id)
			}
		}
	})
	if n := doc.Find(".prose h2[id]").Length(); n != 2 {
		t.Errorf("got %d h2 elements with ids, want 2", n)
	}
	if n := doc.Find(".prose h3#stepone").Length(); n != 1 {
		t.Errorf("Step_one should carry its extracted id")
	}
}

func TestRenderSidebar(t *testing.T) {
	b := book.Load(testBook, book.WithAuthor("A. Writer"))
	site, err := Render(b, Options{EditURL: "https://example.com/edit"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])

	chapters := doc.Find("#toc .chapter")
	if chapters.Length() != 2 {
		t.Fatalf("sidebar chapters = %d, want 2", chapters.Length())
	}
	if id, _ := chapters.First().Attr("data-chapter"); id != "chapter-1-foo" {
		t.Errorf("first chapter = %q, want chapter-1-foo", id)
	}
	if got := chapters.Last().Find(".chapter-link").Text(); got != "Chapter 2: Bar <Baz>" {
		t.Errorf("chapter title = %q, want escaped title text", got)
	}

	subs := chapters.First().Find(".sub-link")
	if subs.Length() != 2 {
		t.Fatalf("sub links = %d, want 2", subs.Length())
	}
	if !subs.First().HasClass("level-3") || !subs.Last().HasClass("level-2") {
		t.Error("sub links should carry their heading level class")
	}
	if owner, _ := subs.Last().Attr("data-chapter"); owner != "chapter-1-foo" {
		t.Errorf("takeaways owner = %q, want chapter-1-foo", owner)
	}
	if doc.Find(`#toc a[data-target="preface"]`).Length() != 0 {
		t.Error("orphan heading should not appear in the sidebar")
	}

	if got := doc.Find(".book-author").Text(); got != "By A. Writer" {
		t.Errorf("author = %q", got)
	}
	if href, _ := doc.Find(".edit-link").Attr("href"); href != "https://example.com/edit" {
		t.Errorf("edit link = %q", href)
	}
	if doc.Find(".chapter.expanded").Length() != 0 {
		t.Error("no chapter should be expanded before any position is known")
	}
}

func TestRenderOwnersScript(t *testing.T) {
	b := book.Load(testBook)
	site, err := Render(b, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])

	var owners map[string]string
	if err := json.Unmarshal([]byte(doc.Find("#book-owners").Text()), &owners); err != nil {
		t.Fatalf("owners script is not JSON: %v", err)
	}
	if owners["sub-a"] != "chapter-1-foo" {
		t.Errorf("owners[sub-a] = %q, want chapter-1-foo", owners["sub-a"])
	}
	if _, ok := owners["preface"]; ok {
		t.Error("orphan heading should have no owner")
	}
}

func TestRenderChapterLinksToggle(t *testing.T) {
	b := book.Load(testBook)
	site, err := Render(b, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])

	links := doc.Find("#toc .chapter > a.chapter-link")
	if links.Length() != len(b.Chapters) {
		t.Fatalf("got %d chapter links, want %d", links.Length(), len(b.Chapters))
	}
	links.Each(func(i int, s *goquery.Selection) {
		target, _ := s.Attr("data-target")
		owner, _ := s.Parent().Attr("data-chapter")
		if target != b.Chapters[i].ID || owner != target {
			t.Errorf("chapter link %d targets %q in chapter %q, want %q", i, target, owner, b.Chapters[i].ID)
		}
	})

	script := string(site.Files["script.js"])
	for _, want := range []string{
		"if (link.classList.contains('chapter-link')) toggleChapter(id);",
		"el.classList.remove('expanded');",
		"document.querySelectorAll('#toc a.active')",
		"chapterId !== openId",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script.js missing %q", want)
		}
	}
	if !strings.Contains(string(site.Files["style.css"]), ".chapter-link.active") {
		t.Error("style.css has no active chapter link style")
	}
}

func TestRenderOptions(t *testing.T) {
	b := book.Load(testBook)
	site, err := Render(b, Options{
		BasePath:           "/book/",
		Theme:              "dark",
		RootMargin:         "-10% 0px -80% 0px",
		ScrollTopThreshold: 250,
		Live:               true,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])

	if theme, _ := doc.Find("html").Attr("data-theme"); theme != "dark" {
		t.Errorf("data-theme = %q, want dark", theme)
	}
	body := doc.Find("body")
	if v, _ := body.Attr("data-root-margin"); v != "-10% 0px -80% 0px" {
		t.Errorf("data-root-margin = %q", v)
	}
	if v, _ := body.Attr("data-scroll-top"); v != "250" {
		t.Errorf("data-scroll-top = %q", v)
	}
	if v, _ := body.Attr("data-live"); v != "/book/ws/position" {
		t.Errorf("data-live = %q", v)
	}
	if href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href"); href != "/book/style.css" {
		t.Errorf("stylesheet href = %q", href)
	}
}

func TestRenderSystemThemeHasNoAttribute(t *testing.T) {
	site, err := Render(book.Load(testBook), Options{Theme: "system"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])
	if _, ok := doc.Find("html").Attr("data-theme"); ok {
		t.Error("system theme should leave data-theme unset")
	}
	if _, ok := doc.Find("body").Attr("data-live"); ok {
		t.Error("static pages should not be live")
	}
}

func TestRenderManifest(t *testing.T) {
	site, err := Render(book.Load(testBook), Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var m struct {
		Title    string `json:"title"`
		Chapters []struct {
			ID          string `json:"id"`
			SubChapters []struct {
				ID string `json:"id"`
			} `json:"subChapters"`
		} `json:"chapters"`
	}
	if err := json.Unmarshal(site.Files["chapters.json"], &m); err != nil {
		t.Fatalf("chapters.json: %v", err)
	}
	if m.Title != "The Book" {
		t.Errorf("title = %q", m.Title)
	}
	if len(m.Chapters) != 2 || len(m.Chapters[0].SubChapters) != 2 {
		t.Errorf("unexpected chapters: %+v", m.Chapters)
	}
}

func TestRenderEmptyBook(t *testing.T) {
	site, err := Render(book.Load(""), Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := parseHTML(t, site.Files["index.html"])
	if doc.Find("#toc .chapter").Length() != 0 {
		t.Error("empty book should have an empty sidebar")
	}
	if got := doc.Find("title").Text(); got != "Untitled" {
		t.Errorf("title = %q, want Untitled", got)
	}
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "images", "diagrams"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(root, "images", "cover.png"), []byte("png"), 0o644)
	os.WriteFile(filepath.Join(root, "images", "diagrams", "flow.svg"), []byte("<svg/>"), 0o644)
	os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip me"), 0o644)

	out := filepath.Join(t.TempDir(), "dist")
	g := NewGenerator(book.Load(testBook), out, Options{})
	g.AssetRoot = root
	g.AssetPatterns = []string{"images/**", "images/*.png"}
	g.Log = quietLog()
	rec := &stageRecorder{}
	g.Reporter = rec

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 6 {
		t.Errorf("files written = %d, want 6", n)
	}

	wantStages := []progress.Stage{
		progress.StageMarkdown, progress.StagePage, progress.StageManifest,
		progress.StageWrite, progress.StageAsset, progress.StageAsset,
	}
	if !reflect.DeepEqual(rec.stages, wantStages) {
		t.Errorf("stages = %v, want %v", rec.stages, wantStages)
	}
	if rec.total != len(wantStages) {
		t.Errorf("announced %d steps, reported %d", rec.total, len(wantStages))
	}
	if !rec.finished {
		t.Error("reporter was not finished")
	}

	for _, p := range []string{"index.html", "style.css", "script.js", "chapters.json", "images/cover.png", "images/diagrams/flow.svg"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(p))); err != nil {
			t.Errorf("expected %s in output: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "notes.txt")); !os.IsNotExist(err) {
		t.Error("unmatched file should not be copied")
	}
}

func TestGenerateWithoutAssetRoot(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(book.Load(testBook), out, Options{})
	g.AssetPatterns = []string{"**"}
	g.Log = quietLog()

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 4 {
		t.Errorf("files written = %d, want 4", n)
	}
}

func TestPreviewHandlerBasePath(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>hello</p>"), 0o644)

	srv := httptest.NewServer(PreviewHandler(dir, "/book/"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/book/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "hello") {
		t.Errorf("GET /book/ = %q", body)
	}

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err = client.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Errorf("GET / status = %d, want 302", resp.StatusCode)
	}
}
