// Package prefs persists the visitor's display theme behind a swappable
// key-value interface.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Theme is the persisted display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme maps a stored value to a Theme. Anything but "dark" is light.
func ParseTheme(s string) Theme {
	if s == string(Dark) {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ThemeKey is the key the theme is stored under.
const ThemeKey = "theme"

// ErrNotFound is returned by KV.Get when the key has never been set.
var ErrNotFound = errors.New("prefs: key not found")

// KV is a minimal persisted key-value store.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store reads and writes the theme preference for one visitor.
type Store struct {
	kv    KV
	scope string
}

// NewStore returns a Store over kv. A non-empty scope namespaces the key,
// which shared backends use to keep visitors apart.
func NewStore(kv KV, scope string) *Store {
	return &Store{kv: kv, scope: scope}
}

func (s *Store) key() string {
	if s.scope == "" {
		return ThemeKey
	}
	return "visitor:" + s.scope + ":" + ThemeKey
}

// Get returns the stored theme, or Light if unset. Backend read failures are
// logged and treated as unset.
func (s *Store) Get(ctx context.Context) Theme {
	v, err := s.kv.Get(ctx, s.key())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("prefs: reading %s: %v", s.key(), err)
		}
		return Light
	}
	return ParseTheme(v)
}

// Set persists t. It takes effect on the next Get.
func (s *Store) Set(ctx context.Context, t Theme) error {
	if t != Dark {
		t = Light
	}
	if err := s.kv.Set(ctx, s.key(), string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle flips the stored theme and returns the new value.
func (s *Store) Toggle(ctx context.Context) (Theme, error) {
	next := s.Get(ctx).Toggle()
	if err := s.Set(ctx, next); err != nil {
		return s.Get(ctx), err
	}
	return next, nil
}
