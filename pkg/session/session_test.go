package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		CookieName: "akc_session",
		TTL:        time.Hour,
		Remember:   30 * 24 * time.Hour,
		HTTPOnly:   true,
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

func TestSignInStoresPrincipal(t *testing.T) {
	store := NewMemoryStore()
	sess := &Session{id: "abc", data: map[string]interface{}{}, opts: testOptions(), store: store}

	sess.SignIn(Principal{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "customer"}, false)

	p, ok := sess.User()
	require.True(t, ok)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "asha@example.com", p.Email)
	assert.Equal(t, "customer", p.Role)
}

func TestUserDecodesStoredMap(t *testing.T) {
	// Values loaded from Redis have round-tripped through JSON.
	sess := &Session{
		id: "abc",
		data: map[string]interface{}{
			"user": map[string]interface{}{
				"id": "u2", "name": "Ravi", "email": "ravi@example.com", "role": "admin",
			},
		},
		opts:  testOptions(),
		store: NewMemoryStore(),
	}

	p, ok := sess.User()
	require.True(t, ok)
	assert.Equal(t, "u2", p.ID)
	assert.Equal(t, "admin", p.Role)
}

func TestNoUserWithoutSignIn(t *testing.T) {
	sess := &Session{id: "abc", data: map[string]interface{}{}, opts: testOptions(), store: NewMemoryStore()}

	_, ok := sess.User()
	assert.False(t, ok)
}

func TestRememberExtendsCookieLifetime(t *testing.T) {
	store := NewMemoryStore()
	sess := &Session{id: "abc", data: map[string]interface{}{}, opts: testOptions(), store: store}

	sess.SignIn(Principal{ID: "u1"}, true)

	rec := httptest.NewRecorder()
	require.NoError(t, sess.Save(context.Background(), rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func TestSignInRotatesSessionID(t *testing.T) {
	store := NewMemoryStore()
	sess := &Session{id: "pre-auth", data: map[string]interface{}{}, opts: testOptions(), store: store}
	require.NoError(t, store.Save(context.Background(), "pre-auth", map[string]interface{}{"cart": "x"}, time.Hour))

	sess.SignIn(Principal{ID: "u1"}, false)
	assert.NotEqual(t, "pre-auth", sess.ID())

	rec := httptest.NewRecorder()
	require.NoError(t, sess.Save(context.Background(), rec))

	// The pre-auth ID no longer resolves; the cookie carries the new one.
	_, ok := store.Load(context.Background(), "pre-auth")
	assert.False(t, ok)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sess.ID(), cookies[0].Value)
}

func TestDestroyRemovesSessionAndExpiresCookie(t *testing.T) {
	store := NewMemoryStore()
	sess := &Session{id: "abc", data: map[string]interface{}{}, opts: testOptions(), store: store}
	sess.SignIn(Principal{ID: "u1"}, false)
	require.NoError(t, sess.Save(context.Background(), httptest.NewRecorder()))

	rec := httptest.NewRecorder()
	require.NoError(t, sess.Destroy(context.Background(), rec))

	_, ok := store.Load(context.Background(), "abc")
	assert.False(t, ok)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestMiddlewareRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	opts := testOptions()

	var sid string
	signIn := Middleware(opts, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := FromRequest(r)
		sess.SignIn(Principal{ID: "u1", Name: "Asha"}, false)
		require.NoError(t, sess.Save(r.Context(), w))
		sid = sess.ID()
	}))

	rec := httptest.NewRecorder()
	signIn.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signin", nil))
	require.NotEmpty(t, sid)

	// Second request presents the cookie and sees the same principal.
	read := Middleware(opts, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := FromRequest(r).User()
		require.True(t, ok)
		assert.Equal(t, "u1", p.ID)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: opts.CookieName, Value: sid})
	read.ServeHTTP(httptest.NewRecorder(), req)
}
