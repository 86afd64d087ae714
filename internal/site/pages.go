package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ziadkadry99/coleweb/internal/platform"
	"github.com/ziadkadry99/coleweb/internal/prefs"
	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

// Route names shared by live serving and static export.
const (
	routeHome  = "home"
	routeAbout = "about"
	routeDocs  = "docs"
)

// pageInput is everything that varies between two renders of the same page.
type pageInput struct {
	Page     string
	Theme    prefs.Theme
	Platform platform.Platform
	State    viewstate.State
	Live     bool
	// Base prefixes every link in static export ("", "../"). Ignored when Live.
	Base string
}

// pageData holds the data passed to the HTML templates.
type pageData struct {
	Page         string
	Title        string
	SiteName     string
	Theme        prefs.Theme
	Platform     platform.Platform
	Cards        []cardView
	Features     []feature
	Story        []string
	Team         []teamMember
	Socials      []socialLink
	Footer       []footerColumn
	State        viewstate.State
	Sections     []sectionView
	Live         bool
	PopupDelayMS int64
	Year         int

	base string
}

type cardView struct {
	platform.Card
	Highlight bool
}

type sectionView struct {
	Label  viewstate.Section
	Slug   string
	Active bool
	HTML   template.HTML
}

// Dark reports whether the page renders in dark mode.
func (p pageData) Dark() bool { return p.Theme == prefs.Dark }

// PopupShown reports whether the download popup is visible.
func (p pageData) PopupShown() bool { return p.State.Popup == viewstate.PopupShown }

// Href resolves a route name to a link.
func (p pageData) Href(route string) string {
	if p.Live {
		switch route {
		case routeAbout:
			return "/about"
		case routeDocs:
			return "/docs"
		default:
			return "/"
		}
	}
	switch route {
	case routeAbout:
		return p.base + "about.html"
	case routeDocs:
		return p.base + "docs/index.html"
	default:
		return p.base + "index.html"
	}
}

// DocHref links to one documentation section.
func (p pageData) DocHref(slug string) string {
	if p.Live {
		return "/docs/" + slug
	}
	return p.base + "docs/" + slug + ".html"
}

// Static links to an embedded asset.
func (p pageData) Static(name string) string {
	if p.Live {
		return "/static/" + name
	}
	return p.base + "static/" + name
}

// Link resolves a footer link. Anchors into the landing page stay in-page
// when already on it.
func (p pageData) Link(l footerLink) string {
	if l.Route == "" {
		return l.Anchor
	}
	if l.Route == routeHome && p.Page == routeHome && l.Anchor != "" {
		return l.Anchor
	}
	if l.Route == routeHome && l.Anchor != "" {
		return p.Href(routeHome) + l.Anchor
	}
	return p.Href(l.Route)
}

var pageTitles = map[string]string{
	routeHome:  "Command Line Experience",
	routeAbout: "About",
	routeDocs:  "Documentation",
}

// newPageData builds the template data for in.
func (s *Site) newPageData(in pageInput) pageData {
	d := pageData{
		Page:         in.Page,
		Title:        pageTitles[in.Page],
		SiteName:     s.opts.SiteName,
		Theme:        in.Theme,
		Platform:     in.Platform,
		Socials:      socials,
		Footer:       footerColumns,
		State:        in.State,
		Live:         in.Live,
		PopupDelayMS: s.opts.PopupDelay.Milliseconds(),
		Year:         time.Now().Year(),
		base:         in.Base,
	}

	switch in.Page {
	case routeHome:
		d.Features = features
		highlight := platform.DownloadCard(in.Platform)
		for _, c := range platform.Cards() {
			d.Cards = append(d.Cards, cardView{Card: c, Highlight: c.ID == highlight})
		}
	case routeAbout:
		d.Story = storyParagraphs
		d.Team = team
	case routeDocs:
		for _, pg := range s.opts.Catalog.Pages() {
			d.Sections = append(d.Sections, sectionView{
				Label:  pg.Section,
				Slug:   pg.Section.Slug(),
				Active: pg.Section == in.State.Section,
				HTML:   pg.HTML,
			})
		}
	}
	return d
}

// renderer holds one parsed template set per page.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	base, err := template.New("site").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	r := &renderer{pages: make(map[string]*template.Template)}
	for name, body := range map[string]string{
		routeHome:  homeTemplate,
		routeAbout: aboutTemplate,
		routeDocs:  docsTemplate,
	} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *renderer) render(w io.Writer, d pageData) error {
	t, ok := r.pages[d.Page]
	if !ok {
		return fmt.Errorf("no template for page %q", d.Page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", d); err != nil {
		return fmt.Errorf("rendering %s: %w", d.Page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
