package prefs

import (
	"context"
	"net/http"
	"time"
)

// cookieMaxAge keeps preference cookies for a year.
const cookieMaxAge = 365 * 24 * time.Hour

// CookieKV stores each key in its own cookie on one request/response pair.
// Values written during the request are visible to later reads of the same
// CookieKV.
type CookieKV struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	written map[string]string
}

// NewCookieKV binds a CookieKV to a request and its response writer.
func NewCookieKV(w http.ResponseWriter, r *http.Request, secure bool) *CookieKV {
	return &CookieKV{w: w, r: r, secure: secure, written: make(map[string]string)}
}

func (c *CookieKV) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.written[key]; ok {
		return v, nil
	}
	ck, err := c.r.Cookie(key)
	if err != nil {
		return "", ErrNotFound
	}
	return ck.Value, nil
}

func (c *CookieKV) Set(_ context.Context, key, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.written[key] = value
	return nil
}
