package prefs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/ziadkadry99/coleweb/internal/db"
)

// backends returns one fresh KV per implementation that can live without a request.
func backends(t *testing.T) map[string]KV {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	mr := miniredis.RunT(t)
	rkv, err := NewRedisKV("redis://"+mr.Addr(), 0)
	if err != nil {
		t.Fatalf("NewRedisKV: %v", err)
	}
	t.Cleanup(func() { rkv.Close() })

	return map[string]KV{
		"memory": NewMemoryKV(),
		"sqlite": NewSQLiteKV(database),
		"redis":  rkv,
	}
}

func TestStoreDefaultsToLight(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(kv, "visitor-1")
			if got := s.Get(context.Background()); got != Light {
				t.Errorf("Get() = %q, want light", got)
			}
		})
	}
}

func TestStoreSetThenGet(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := NewStore(kv, "visitor-1")
			if err := s.Set(ctx, Dark); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got := s.Get(ctx); got != Dark {
				t.Errorf("Get() = %q, want dark", got)
			}

			// A fresh Store over the same backend sees the persisted value.
			if got := NewStore(kv, "visitor-1").Get(ctx); got != Dark {
				t.Errorf("reloaded Get() = %q, want dark", got)
			}
			// Other visitors are unaffected.
			if got := NewStore(kv, "visitor-2").Get(ctx); got != Light {
				t.Errorf("other visitor Get() = %q, want light", got)
			}
		})
	}
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, start := range []Theme{Light, Dark} {
				s := NewStore(kv, "toggler-"+string(start))
				if err := s.Set(ctx, start); err != nil {
					t.Fatalf("Set: %v", err)
				}
				first, err := s.Toggle(ctx)
				if err != nil {
					t.Fatalf("Toggle: %v", err)
				}
				if first != start.Toggle() {
					t.Errorf("first toggle = %q, want %q", first, start.Toggle())
				}
				if _, err := s.Toggle(ctx); err != nil {
					t.Fatalf("Toggle: %v", err)
				}
				reloaded := NewStore(kv, "toggler-"+string(start))
				if got := reloaded.Get(ctx); got != start {
					t.Errorf("after two toggles = %q, want %q", got, start)
				}
			}
		})
	}
}

func TestStoredValuesAreLiteralStrings(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	s := NewStore(kv, "")

	if err := s.Set(ctx, Dark); err != nil {
		t.Fatal(err)
	}
	if v, _ := kv.Get(ctx, ThemeKey); v != "dark" {
		t.Errorf("stored %q, want %q", v, "dark")
	}
	if _, err := s.Toggle(ctx); err != nil {
		t.Fatal(err)
	}
	if v, _ := kv.Get(ctx, ThemeKey); v != "light" {
		t.Errorf("stored %q, want %q", v, "light")
	}
}

func TestUnrecognizedStoredValueReadsAsLight(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	kv.Set(ctx, ThemeKey, "solarized")
	if got := NewStore(kv, "").Get(ctx); got != Light {
		t.Errorf("Get() = %q, want light", got)
	}
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", errors.New("boom") }
func (failingKV) Set(context.Context, string, string) error  { return errors.New("boom") }

func TestBackendErrors(t *testing.T) {
	s := NewStore(failingKV{}, "v")
	ctx := context.Background()
	if got := s.Get(ctx); got != Light {
		t.Errorf("Get() on failing backend = %q, want light", got)
	}
	if err := s.Set(ctx, Dark); err == nil {
		t.Error("expected Set error")
	}
	got, err := s.Toggle(ctx)
	if err == nil {
		t.Error("expected Toggle error")
	}
	if got != Light {
		t.Errorf("Toggle() on failure = %q, want current value light", got)
	}
}

func TestCookieKV(t *testing.T) {
	ctx := context.Background()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	s := CookieProvider{Secure: true}.ForRequest(w, req, "ignored")

	if got := s.Get(ctx); got != Light {
		t.Fatalf("Get() without cookie = %q, want light", got)
	}
	next, err := s.Toggle(ctx)
	if err != nil || next != Dark {
		t.Fatalf("Toggle() = %q, %v", next, err)
	}
	if got := s.Get(ctx); got != Dark {
		t.Errorf("Get() after Set in same request = %q, want dark", got)
	}

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == ThemeKey {
			found = c
		}
	}
	if found == nil {
		t.Fatal("theme cookie not written")
	}
	if found.Value != "dark" || !found.Secure || found.Path != "/" {
		t.Errorf("unexpected cookie %+v", found)
	}

	// Next request carries the cookie back.
	req2 := httptest.NewRequest("GET", "/", nil)
	req2.AddCookie(&http.Cookie{Name: ThemeKey, Value: found.Value})
	s2 := CookieProvider{}.ForRequest(httptest.NewRecorder(), req2, "")
	if got := s2.Get(ctx); got != Dark {
		t.Errorf("Get() on next request = %q, want dark", got)
	}
}

func TestRedisTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	kv, err := NewRedisKV("redis://"+mr.Addr(), time.Hour)
	if err != nil {
		t.Fatalf("NewRedisKV: %v", err)
	}
	defer kv.Close()

	ctx := context.Background()
	if err := NewStore(kv, "abc").Set(ctx, Dark); err != nil {
		t.Fatal(err)
	}
	key := "coleweb:visitor:abc:theme"
	if got, _ := mr.Get(key); got != "dark" {
		t.Errorf("redis value = %q, want dark", got)
	}
	if ttl := mr.TTL(key); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if got := NewStore(kv, "abc").Get(ctx); got != Light {
		t.Errorf("expired Get() = %q, want light", got)
	}
}

func TestNewRedisKVBadURL(t *testing.T) {
	if _, err := NewRedisKV("not-a-url", 0); err == nil {
		t.Error("expected error for bad url")
	}
}

func TestSplitKey(t *testing.T) {
	scope, key := splitKey("visitor:abc:theme")
	if scope != "visitor:abc" || key != "theme" {
		t.Errorf("splitKey = %q, %q", scope, key)
	}
	scope, key = splitKey("theme")
	if scope != "" || key != "theme" {
		t.Errorf("splitKey = %q, %q", scope, key)
	}
}
