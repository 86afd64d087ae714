// Package site renders the CoLE marketing site and documentation viewer,
// serves it over HTTP with a live view-state session per page, and exports
// it as static files.
package site

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/ziadkadry99/coleweb/internal/docs"
	"github.com/ziadkadry99/coleweb/internal/prefs"
	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

// VisitorCookie carries the anonymous visitor ID that shared preference
// backends key on.
const VisitorCookie = "cole_visitor"

// Options configures a Site.
type Options struct {
	SiteName string
	// Prefs resolves the theme store for a request. Defaults to cookies.
	Prefs   prefs.Provider
	Catalog *docs.Catalog
	// Clock drives session popup timers. Defaults to the real clock.
	Clock        clock.WithDelayedExecution
	PopupDelay   time.Duration
	CookieSecure bool
	Verbose      bool
}

// Site renders pages and owns the HTTP handlers.
type Site struct {
	opts   Options
	render *renderer
}

// New parses the page templates and returns a ready Site.
func New(opts Options) (*Site, error) {
	if opts.Catalog == nil {
		return nil, errors.New("site: documentation catalog is required")
	}
	if opts.SiteName == "" {
		opts.SiteName = "CoLE"
	}
	if opts.Prefs == nil {
		opts.Prefs = prefs.CookieProvider{Secure: opts.CookieSecure}
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.PopupDelay <= 0 {
		opts.PopupDelay = viewstate.DefaultPopupDelay
	}

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Site{opts: opts, render: r}, nil
}

type visitorKey struct{}

// visitor ensures every request carries a visitor ID, issuing a new cookie
// on first contact.
func (s *Site) visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if ck, err := r.Cookie(VisitorCookie); err == nil {
			if _, perr := uuid.Parse(ck.Value); perr == nil {
				id = ck.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				Secure:   s.opts.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey{}, id)))
	})
}

// visitorID returns the ID stored by the visitor middleware.
func visitorID(r *http.Request) string {
	id, _ := r.Context().Value(visitorKey{}).(string)
	return id
}

// prefsFor returns the theme store for the request's visitor.
func (s *Site) prefsFor(w http.ResponseWriter, r *http.Request) *prefs.Store {
	return s.opts.Prefs.ForRequest(w, r, visitorID(r))
}
