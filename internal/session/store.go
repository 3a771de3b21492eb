// Package session holds the transient per-client submission state. The
// backing store is an injected key-value interface so handlers can use the
// signed cookie store while tests use a plain map.
package session

import "visaportal/internal/models"

// Store is a per-client key-value store with get/set/clear semantics.
type Store interface {
	Set(key, value string)
	Get(key string) (string, bool)
	All() map[string]string
	Clear()
}

// Values is a map-backed Store. It is both the test fake and the decoded
// form of the cookie store.
type Values map[string]string

func NewValues() Values {
	return Values{}
}

func (v Values) Set(key, value string) {
	v[key] = value
}

func (v Values) Get(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

func (v Values) All() map[string]string {
	out := make(map[string]string, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

func (v Values) Clear() {
	for k := range v {
		delete(v, k)
	}
}

// Session wraps a Store with the submission capture semantics.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Capture stores every field of the application except the password,
// overwriting any prior values. The password is excluded at the record
// level (SessionFields never emits it), so no code path here can leak it.
func (s *Session) Capture(app *models.Application) {
	for key, value := range app.SessionFields() {
		s.store.Set(key, value)
	}
}

// Prefill returns the currently stored fields, used to pre-populate the
// application form on a return visit.
func (s *Session) Prefill() map[string]string {
	return s.store.All()
}

// Clear empties the session unconditionally. Safe to call repeatedly.
func (s *Session) Clear() {
	s.store.Clear()
}
