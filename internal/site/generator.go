package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/book-reader/internal/book"
	"github.com/ziadkadry99/book-reader/internal/progress"
)

// Options controls how a book is rendered.
type Options struct {
	BasePath           string
	EditURL            string
	Theme              string
	HighlightStyle     string
	RootMargin         string
	ScrollTopThreshold int
	// Live makes the page report its position over the server's websocket.
	Live bool
}

// Site is a rendered book: output-relative paths mapped to file contents.
type Site struct {
	Files map[string][]byte
}

// Paths returns the site's file paths in sorted order.
func (s *Site) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for p := range s.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title              string
	Author             string
	EditURL            string
	BasePath           string
	Theme              string
	RootMargin         string
	ScrollTopThreshold int
	Live               bool
	Content            template.HTML
	TreeHTML           template.HTML
	Owners             map[string]string
}

// manifest is the machine-readable table of contents written next to the page.
type manifest struct {
	Title    string         `json:"title"`
	Author   string         `json:"author,omitempty"`
	Headings []book.Heading `json:"headings"`
	Chapters book.Tree      `json:"chapters"`
}

// renderSteps is the number of progress steps render reports.
const renderSteps = 3

// Render renders b into an in-memory site.
func Render(b *book.Book, opts Options) (*Site, error) {
	return render(b, opts, progress.Nop{})
}

func render(b *book.Book, opts Options, r progress.Reporter) (*Site, error) {
	if opts.BasePath == "" {
		opts.BasePath = "/"
	}
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = "github"
	}

	content, err := renderMarkdown(b, opts.HighlightStyle)
	if err != nil {
		return nil, err
	}
	r.Step(progress.StageMarkdown, fmt.Sprintf("%d headings, %d chapters", len(b.Headings), len(b.Chapters)))

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	title := b.Title
	if title == "" {
		title = "Untitled"
	}

	data := pageData{
		Title:              title,
		Author:             b.Author,
		EditURL:            opts.EditURL,
		BasePath:           opts.BasePath,
		Theme:              opts.Theme,
		RootMargin:         opts.RootMargin,
		ScrollTopThreshold: opts.ScrollTopThreshold,
		Live:               opts.Live,
		Content:            template.HTML(content),
		TreeHTML:           template.HTML(TreeHTML(b.Chapters, "")),
		Owners:             b.Chapters.Owners(),
	}

	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	r.Step(progress.StagePage, "index.html")

	headings := b.Headings
	if headings == nil {
		headings = []book.Heading{}
	}
	toc, err := json.MarshalIndent(manifest{
		Title:    title,
		Author:   b.Author,
		Headings: headings,
		Chapters: b.Chapters,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding chapters: %w", err)
	}
	r.Step(progress.StageManifest, "chapters.json")

	return &Site{Files: map[string][]byte{
		"index.html":    page.Bytes(),
		"style.css":     []byte(cssContent),
		"script.js":     []byte(jsContent),
		"chapters.json": toc,
	}}, nil
}

// Generator writes a rendered book and its static assets to a directory.
type Generator struct {
	Book      *book.Book
	OutputDir string
	Options   Options
	// AssetRoot is the directory AssetPatterns are matched against. Empty
	// disables asset copying.
	AssetRoot     string
	AssetPatterns []string
	Reporter      progress.Reporter
	Log           *logrus.Entry
}

// NewGenerator creates a Generator with a no-op reporter and the standard logger.
func NewGenerator(b *book.Book, outputDir string, opts Options) *Generator {
	return &Generator{
		Book:      b,
		OutputDir: outputDir,
		Options:   opts,
		Reporter:  progress.Nop{},
		Log:       logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Generate builds the site. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	assets, err := matchAssets(g.AssetRoot, g.AssetPatterns)
	if err != nil {
		return 0, fmt.Errorf("matching assets: %w", err)
	}

	g.Reporter.Start(renderSteps + 1 + len(assets))
	defer g.Reporter.Finish()

	site, err := render(g.Book, g.Options, g.Reporter)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	n := 0
	for _, p := range site.Paths() {
		if err := writeFile(filepath.Join(g.OutputDir, filepath.FromSlash(p)), site.Files[p]); err != nil {
			return n, err
		}
		n++
		g.Log.WithField("path", p).Debug("wrote page file")
	}
	g.Reporter.Step(progress.StageWrite, fmt.Sprintf("%d files to %s", n, g.OutputDir))

	for _, rel := range assets {
		if _, ok := site.Files[rel]; ok {
			g.Log.WithField("path", rel).Warn("asset shadows a generated file, skipping")
			g.Reporter.Step(progress.StageAsset, rel+" (skipped)")
			continue
		}
		src := filepath.Join(g.AssetRoot, filepath.FromSlash(rel))
		if err := copyFile(src, filepath.Join(g.OutputDir, filepath.FromSlash(rel))); err != nil {
			return n, fmt.Errorf("copying asset %s: %w", rel, err)
		}
		n++
		g.Reporter.Step(progress.StageAsset, rel)
		g.Log.WithField("path", rel).Debug("copied asset")
	}

	g.Log.WithFields(logrus.Fields{
		"files":    n,
		"chapters": len(g.Book.Chapters),
		"output":   g.OutputDir,
	}).Info("site generated")

	return n, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
