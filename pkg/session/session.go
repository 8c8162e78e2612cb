// Package session provides cookie-keyed server-side sessions, the sole
// authentication mechanism of the storefront and back-office.
//
// Sessions are explicit handles loaded by the middleware and fetched from the
// request context; the backing Store is pluggable (Redis in production, an
// in-memory map in tests).
//
//	sess := session.FromRequest(r)
//	sess.SignIn(session.Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, remember)
//	sess.Save(r.Context(), w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/config"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/cache"
)

// Principal is the signed-in user carried by a session.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

const userKey = "user"

// ------------------- Store -------------------

// Store persists session data by session ID.
type Store interface {
	Load(ctx context.Context, id string) (map[string]interface{}, bool)
	Save(ctx context.Context, id string, data map[string]interface{}, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis via pkg/cache.
type RedisStore struct{}

func redisKey(id string) string { return "akc:session:" + id }

func (RedisStore) Load(_ context.Context, id string) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if cache.Get(redisKey(id), &data) {
		return data, true
	}
	return map[string]interface{}{}, false
}

func (RedisStore) Save(_ context.Context, id string, data map[string]interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := cache.Set(redisKey(id), json.RawMessage(raw), ttl); err != nil {
		return fmt.Errorf("session: redis save: %w", err)
	}
	return nil
}

func (RedisStore) Destroy(_ context.Context, id string) error {
	return cache.Del(redisKey(id))
}

// MemoryStore is a map-backed Store for tests and single-node dev setups.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]map[string]interface{}{}}
}

func (m *MemoryStore) Load(_ context.Context, id string) (map[string]interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.data[id]; ok {
		copied := make(map[string]interface{}, len(d))
		for k, v := range d {
			copied[k] = v
		}
		return copied, true
	}
	return map[string]interface{}{}, false
}

func (m *MemoryStore) Save(_ context.Context, id string, data map[string]interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(map[string]interface{}, len(data))
	for k, v := range data {
		copied[k] = v
	}
	m.data[id] = copied
	return nil
}

func (m *MemoryStore) Destroy(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

// ------------------- Options -------------------

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	Remember   time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions reads lifetimes and cookie flags from config.
func DefaultOptions() Options {
	return Options{
		CookieName: "akc_session",
		TTL:        config.SessionTTL(),
		Remember:   config.SessionRememberTTL(),
		HTTPOnly:   true,
		Secure:     config.SessionSecureCookie(),
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

// ------------------- Session -------------------

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	staleID string
	data    map[string]interface{}
	opts    Options
	store   Store
	ttl     time.Duration
	changed bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Set stores a value under key in the session.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// SignIn stores the principal and, when remember is set, extends the session
// lifetime to the configured remember-me duration. The session ID is rotated
// so a cookie planted before authentication stops resolving.
func (s *Session) SignIn(p Principal, remember bool) {
	if id, err := newID(); err == nil {
		s.staleID = s.id
		s.id = id
	}
	s.Set(userKey, p)
	if remember {
		s.ttl = s.opts.Remember
	} else {
		s.ttl = s.opts.TTL
	}
}

// User returns the signed-in principal, if any. Data loaded from the store
// has round-tripped through JSON, so the stored value may be a generic map.
func (s *Session) User() (Principal, bool) {
	v, ok := s.data[userKey]
	if !ok {
		return Principal{}, false
	}

	switch p := v.(type) {
	case Principal:
		return p, p.ID != ""
	case map[string]interface{}:
		raw, err := json.Marshal(p)
		if err != nil {
			return Principal{}, false
		}
		var out Principal
		if err := json.Unmarshal(raw, &out); err != nil {
			return Principal{}, false
		}
		return out, out.ID != ""
	}
	return Principal{}, false
}

// Invalidate clears all session state (sign-out).
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// Save persists the session and writes the cookie to the response.
// A no-op when nothing changed.
func (s *Session) Save(ctx context.Context, w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	ttl := s.ttl
	if ttl <= 0 {
		ttl = s.opts.TTL
	}

	if err := s.store.Save(ctx, s.id, s.data, ttl); err != nil {
		return err
	}
	if s.staleID != "" {
		_ = s.store.Destroy(ctx, s.staleID)
		s.staleID = ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Destroy removes the session from the store and expires the cookie.
func (s *Session) Destroy(ctx context.Context, w http.ResponseWriter) error {
	s.data = map[string]interface{}{}
	s.changed = false

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    "",
		Path:     s.opts.Path,
		MaxAge:   -1,
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	return s.store.Destroy(ctx, s.id)
}

// ------------------- Middleware -------------------

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromRequest(r) to access it.
func Middleware(opts Options, store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts, store: store, ttl: opts.TTL}

			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				sess.id = cookie.Value
				sess.data, _ = store.Load(r.Context(), sess.id)
			} else {
				id, _ := newID()
				sess.id = id
			}
			if sess.data == nil {
				sess.data = map[string]interface{}{}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromRequest retrieves the session from the request context.
// Returns an unsaved throwaway session if the middleware is not wired.
func FromRequest(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	id, _ := newID()
	return &Session{
		id:    id,
		data:  map[string]interface{}{},
		opts:  DefaultOptions(),
		store: NewMemoryStore(),
	}
}
