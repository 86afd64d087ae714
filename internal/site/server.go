package site

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/coleweb/internal/docs"
	"github.com/ziadkadry99/coleweb/internal/metrics"
	"github.com/ziadkadry99/coleweb/internal/platform"
	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

// RegisterRoutes mounts the pages, JSON API, websocket session and static
// assets on r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(s.visitor)

		r.Get("/", s.pageHandler(routeHome))
		r.Get("/about", s.pageHandler(routeAbout))
		r.Get("/docs", s.pageHandler(routeDocs))
		r.Get("/docs/{section}", s.docsSectionHandler())
		r.Get("/documentation", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
		})

		r.Get("/api/theme", s.themeHandler())
		r.Post("/api/theme/toggle", s.toggleThemeHandler())
		r.Get("/api/platform", platformHandler())
	})

	r.Get("/ws", s.sessionHandler())
	r.Get("/static/{file}", staticHandler())
}

func (s *Site) pageHandler(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.servePage(w, r, page, viewstate.Initial())
	}
}

func (s *Site) docsSectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pg, err := s.opts.Catalog.Lookup(chi.URLParam(r, "section"))
		if errors.Is(err, docs.ErrUnknownSection) {
			http.NotFound(w, r)
			return
		}
		st := viewstate.Initial()
		st.Section = pg.Section
		s.servePage(w, r, routeDocs, st)
	}
}

// servePage classifies the client and reads the theme once, then renders.
func (s *Site) servePage(w http.ResponseWriter, r *http.Request, page string, st viewstate.State) {
	p := platform.Classify(r.UserAgent())
	theme := s.prefsFor(w, r).Get(r.Context())

	metrics.PageViewsTotal.WithLabelValues(page).Inc()
	metrics.PlatformDetectionsTotal.WithLabelValues(string(p)).Inc()
	if s.opts.Verbose {
		log.Printf("site: %s for %s (%s, %s)", page, visitorID(r), p, theme)
	}

	d := s.newPageData(pageInput{Page: page, Theme: theme, Platform: p, State: st, Live: true})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.render.render(w, d); err != nil {
		log.Printf("site: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

type themeResponse struct {
	Theme string `json:"theme"`
}

func (s *Site) themeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme := s.prefsFor(w, r).Get(r.Context())
		writeJSON(w, http.StatusOK, themeResponse{Theme: string(theme)})
	}
}

func (s *Site) toggleThemeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := s.prefsFor(w, r).Toggle(r.Context())
		if err != nil {
			log.Printf("site: toggling theme for %s: %v", visitorID(r), err)
			writeError(w, http.StatusInternalServerError, "could not save theme")
			return
		}
		metrics.ThemeTogglesTotal.WithLabelValues(string(theme)).Inc()
		writeJSON(w, http.StatusOK, themeResponse{Theme: string(theme)})
	}
}

type platformResponse struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Card     string `json:"card"`
	Icon     string `json:"icon,omitempty"`
}

func platformHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := platform.Classify(r.UserAgent())
		metrics.PlatformDetectionsTotal.WithLabelValues(string(p)).Inc()
		writeJSON(w, http.StatusOK, platformResponse{
			Platform: string(p),
			Name:     p.Name(),
			Card:     string(platform.DownloadCard(p)),
			Icon:     p.Icon(),
		})
	}
}

var staticFiles = map[string]struct {
	contentType string
	body        string
}{
	"site.css": {"text/css; charset=utf-8", cssContent},
	"site.js":  {"application/javascript; charset=utf-8", jsContent},
}

func staticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := staticFiles[chi.URLParam(r, "file")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", f.contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write([]byte(f.body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
