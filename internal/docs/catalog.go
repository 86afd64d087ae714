// Package docs loads the documentation sections shown by the /docs viewer.
// Each section is a markdown file with YAML front matter, embedded at build
// time and rendered to HTML once at startup.
package docs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

//go:embed content/*.md
var content embed.FS

// DefaultPattern matches the embedded section files.
const DefaultPattern = "content/**/*.md"

// ErrUnknownSection is returned when a label names no documentation section.
var ErrUnknownSection = errors.New("docs: unknown section")

// Page is one rendered documentation section.
type Page struct {
	Section viewstate.Section
	Order   int
	Source  string
	HTML    template.HTML
}

// Catalog holds every documentation section, in sidebar order.
type Catalog struct {
	pages   []Page
	byLabel map[viewstate.Section]int
}

type frontMatter struct {
	Title string `yaml:"title"`
	Order int    `yaml:"order"`
}

// Load renders the embedded sections.
func Load() (*Catalog, error) {
	return LoadFS(content, DefaultPattern)
}

// LoadFS renders every file in fsys matching pattern. Every section in
// viewstate.Sections must have exactly one file, and no file may name
// another section.
func LoadFS(fsys fs.FS, pattern string) (*Catalog, error) {
	paths, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}
	sort.Strings(paths)

	md := newMarkdown()
	c := &Catalog{byLabel: make(map[viewstate.Section]int)}

	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		fm, body, err := splitFrontMatter(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		sec, ok := viewstate.ParseSection(fm.Title)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", p, ErrUnknownSection, fm.Title)
		}
		if _, dup := c.byLabel[sec]; dup {
			return nil, fmt.Errorf("%s: duplicate section %q", p, sec)
		}

		var buf bytes.Buffer
		if err := md.Convert(body, &buf); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", p, err)
		}

		c.byLabel[sec] = len(c.pages)
		c.pages = append(c.pages, Page{
			Section: sec,
			Order:   fm.Order,
			Source:  p,
			HTML:    template.HTML(buf.String()),
		})
	}

	for _, sec := range viewstate.Sections() {
		if _, ok := c.byLabel[sec]; !ok {
			return nil, fmt.Errorf("no content for section %q", sec)
		}
	}

	sort.SliceStable(c.pages, func(i, j int) bool { return c.pages[i].Order < c.pages[j].Order })
	for i, pg := range c.pages {
		c.byLabel[pg.Section] = i
	}
	return c, nil
}

// Pages returns every section in sidebar order.
func (c *Catalog) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// Lookup returns the page for a section label or slug.
func (c *Catalog) Lookup(label string) (Page, error) {
	sec, ok := viewstate.ParseSection(label)
	if !ok {
		return Page{}, fmt.Errorf("%w: %q", ErrUnknownSection, label)
	}
	return c.pages[c.byLabel[sec]], nil
}

// newMarkdown configures goldmark the same way for every section.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// splitFrontMatter separates a leading "---" YAML block from the markdown body.
func splitFrontMatter(raw []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return fm, nil, errors.New("missing front matter")
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return fm, nil, errors.New("unterminated front matter")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return fm, []byte(rest[end+len("\n---\n"):]), nil
}
