package prefs

import "net/http"

// Provider hands out the preference Store for the visitor behind a request.
type Provider interface {
	ForRequest(w http.ResponseWriter, r *http.Request, visitorID string) *Store
}

// CookieProvider keeps the preference in the visitor's own cookie jar.
type CookieProvider struct {
	Secure bool
}

func (p CookieProvider) ForRequest(w http.ResponseWriter, r *http.Request, _ string) *Store {
	return NewStore(NewCookieKV(w, r, p.Secure), "")
}

// SharedProvider keeps every visitor's preference in one server-side KV,
// namespaced by visitor ID.
type SharedProvider struct {
	KV KV
}

func (p SharedProvider) ForRequest(_ http.ResponseWriter, _ *http.Request, visitorID string) *Store {
	return NewStore(p.KV, visitorID)
}
