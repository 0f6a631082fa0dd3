// Package session keeps per-visitor draft state between requests. The
// visitor holds only an opaque cookie; values live in the cache under that id.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/google/uuid"
)

type data map[string]json.RawMessage

// Store reads and writes session values.
type Store struct {
	cache cache.Cache
	cfg   *Config
}

// New creates a store over c.
func New(c cache.Cache, cfg *Config) *Store {
	return &Store{cache: c, cfg: cfg}
}

// ID returns the request's session id, issuing a new cookie when the
// request carries none or an invalid one.
func (s *Store) ID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.TTLDuration().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	r.AddCookie(&http.Cookie{Name: s.cfg.CookieName, Value: id})
	return id
}

// Put stores value under key in the request's session.
func (s *Store) Put(w http.ResponseWriter, r *http.Request, key string, value any) error {
	id := s.ID(w, r)

	d, err := s.load(r.Context(), id)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session encode %s: %w", key, err)
	}
	d[key] = raw

	return s.cache.Set(r.Context(), cacheKey(id), d, s.cfg.TTLDuration())
}

// Get decodes the value under key into dest and reports whether it existed.
func (s *Store) Get(r *http.Request, key string, dest any) (bool, error) {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return false, nil
	}

	d, err := s.load(r.Context(), c.Value)
	if err != nil {
		return false, err
	}

	raw, ok := d[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("session decode %s: %w", key, err)
	}
	return true, nil
}

// Clear drops every value in the request's session.
func (s *Store) Clear(r *http.Request) error {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return nil
	}
	return s.cache.Delete(r.Context(), cacheKey(c.Value))
}

func (s *Store) load(ctx context.Context, id string) (data, error) {
	d := make(data)
	if _, err := s.cache.Get(ctx, cacheKey(id), &d); err != nil {
		return nil, err
	}
	return d, nil
}

func cacheKey(id string) string {
	return "session:" + id
}
