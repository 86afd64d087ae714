package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/coleweb/internal/platform"
	"github.com/ziadkadry99/coleweb/internal/prefs"
	"github.com/ziadkadry99/coleweb/internal/progress"
	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

// SiteGenerator writes every page of the site as static HTML.
type SiteGenerator struct {
	Site      *Site
	OutputDir string
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(s *Site, outputDir string) *SiteGenerator {
	return &SiteGenerator{Site: s, OutputDir: outputDir}
}

// exportPage is one file of the static export.
type exportPage struct {
	path  string
	input pageInput
}

// pages lists every file in render order. Pages are rendered with the
// default theme and an Unknown platform; the client script classifies
// locally once loaded.
func (g *SiteGenerator) pages() []exportPage {
	base := func(page, b string, st viewstate.State) pageInput {
		return pageInput{Page: page, Theme: prefs.Light, Platform: platform.Unknown, State: st, Base: b}
	}
	out := []exportPage{
		{"index.html", base(routeHome, "", viewstate.Initial())},
		{"about.html", base(routeAbout, "", viewstate.Initial())},
		{filepath.Join("docs", "index.html"), base(routeDocs, "../", viewstate.Initial())},
	}
	for _, pg := range g.Site.opts.Catalog.Pages() {
		st := viewstate.Initial()
		st.Section = pg.Section
		out = append(out, exportPage{
			path:  filepath.Join("docs", pg.Section.Slug()+".html"),
			input: base(routeDocs, "../", st),
		})
	}
	return out
}

// Generate builds the static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate() (int, error) {
	if g.Site == nil {
		return 0, fmt.Errorf("site generator has no site")
	}
	pages := g.pages()

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "docs"), 0o755); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Join(g.OutputDir, "static"), 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	for name, f := range staticFiles {
		if err := os.WriteFile(filepath.Join(g.OutputDir, "static", name), []byte(f.body), 0o644); err != nil {
			return 0, err
		}
	}

	if g.Reporter != nil {
		g.Reporter.Start(len(pages))
		defer g.Reporter.Finish()
	}

	for i, p := range pages {
		size, err := g.writePage(p)
		if err != nil {
			return i, err
		}
		if g.Reporter != nil {
			g.Reporter.Page(i+1, filepath.ToSlash(p.path), size)
		}
	}
	return len(pages), nil
}

// writePage renders p and returns the number of bytes written.
func (g *SiteGenerator) writePage(p exportPage) (int, error) {
	var buf bytes.Buffer
	if err := g.Site.render.render(&buf, g.Site.newPageData(p.input)); err != nil {
		return 0, fmt.Errorf("rendering %s: %w", p.path, err)
	}
	dst := filepath.Join(g.OutputDir, p.path)
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", dst, err)
	}
	return buf.Len(), nil
}
