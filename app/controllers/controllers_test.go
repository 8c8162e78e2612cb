package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekmishra161/AKC-autoparts-1/app/catalog"
	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/routes"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/memstore"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/auth"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/router"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
)

func newApp(t *testing.T) (http.Handler, store.Stores) {
	t.Helper()
	st := memstore.New()
	cat := catalog.NewStaticReader([]models.Product{
		{ID: "1", Name: "Brake Pad Set", Price: 1499},
		{ID: "2", Name: "Air Filter", Price: 549},
	})

	r := router.New()
	opts := session.DefaultOptions()
	opts.Secure = false
	r.Use(session.Middleware(opts, session.NewMemoryStore()))
	routes.Register(r, st, cat)
	return r.Handler(), st
}

func signUp(t *testing.T, h http.Handler, email string) *http.Cookie {
	t.Helper()
	form := url.Values{
		"name":     {"Ravi"},
		"email":    {email},
		"phone":    {"9876543210"},
		"password": {"secret-pass"},
	}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "akc_session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func seedAdmin(t *testing.T, st store.Stores) {
	t.Helper()
	hash, err := auth.Bcrypt{}.Hash("admin123")
	require.NoError(t, err)
	require.NoError(t, st.Admins.FirstOrCreate(context.Background(), &models.Admin{
		Name: "Admin", Email: "admin@gmail.com", Password: hash,
	}))
}

func adminLogin(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	form := url.Values{"email": {"admin@gmail.com"}, "password": {"admin123"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == "akc_session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func orderBody(payment string, items ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"items":         items,
		"paymentMethod": payment,
		"name":          "Ravi Kumar",
		"address":       "12 MG Road, Bengaluru",
		"city":          "Bengaluru",
		"state":         "Karnataka",
		"pin":           "560001",
		"phone":         "9876543210",
	}
}

func postJSON(h http.Handler, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHomePage(t *testing.T) {
	h, _ := newApp(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Brake Pad Set")
}

func TestProductPageNotFound(t *testing.T) {
	h, _ := newApp(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product?id=999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrderRequiresSignIn(t *testing.T) {
	h, _ := newApp(t)
	rec := postJSON(h, "/order", orderBody("COD", map[string]interface{}{"productId": "1", "quantity": 1}), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestPlaceOrderSignedIn(t *testing.T) {
	h, _ := newApp(t)
	cookie := signUp(t, h, "ravi@example.com")

	rec := postJSON(h, "/order", orderBody("UPI", map[string]interface{}{"productId": "1", "quantity": 2}), cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Pending Verification", body["paymentStatus"])
	assert.Equal(t, 2998.0, body["total"])
}

func TestCancelOtherUsersOrder(t *testing.T) {
	h, st := newApp(t)
	owner := signUp(t, h, "owner@example.com")
	other := signUp(t, h, "other@example.com")

	rec := postJSON(h, "/order", orderBody("COD", map[string]interface{}{"productId": "1", "quantity": 1}), owner)
	require.Equal(t, http.StatusOK, rec.Code)
	orderID := decode(t, rec)["orderId"].(string)

	rec = postJSON(h, "/cancel-order/"+orderID, nil, other)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = postJSON(h, "/cancel-order/"+orderID, nil, owner)
	require.Equal(t, http.StatusOK, rec.Code)

	o, err := st.Orders.ByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, o.Status)
}

func TestReviewAndRating(t *testing.T) {
	h, _ := newApp(t)
	cookie := signUp(t, h, "ravi@example.com")

	for _, rating := range []int{5, 4} {
		rec := postJSON(h, "/review", map[string]interface{}{
			"productId": "1",
			"rating":    rating,
			"message":   "Good part",
		}, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rating/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, 4.5, body["avg"])
	assert.Equal(t, 2.0, body["count"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rating/unrated", nil))
	body = decode(t, rec)
	assert.Equal(t, 0.0, body["avg"])
	assert.Equal(t, 0.0, body["count"])
}

func TestReviewRequiresSignIn(t *testing.T) {
	h, _ := newApp(t)
	rec := postJSON(h, "/review", map[string]interface{}{"productId": "1", "rating": 5}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOrdersPageRedirectsWithoutRole(t *testing.T) {
	h, _ := newApp(t)
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	// A customer session is not enough.
	cookie := signUp(t, h, "ravi@example.com")
	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminUpdateStatusForbiddenWithoutRole(t *testing.T) {
	h, _ := newApp(t)

	cookie := signUp(t, h, "ravi@example.com")
	rec := postJSON(h, "/admin/update-order-status", map[string]interface{}{
		"orderId": "o1",
		"status":  "Shipped",
	}, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAdminDashboardRedirectsAnonymous(t *testing.T) {
	h, _ := newApp(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	h, st := newApp(t)
	seedAdmin(t, st)

	customer := signUp(t, h, "ravi@example.com")
	rec := postJSON(h, "/order", orderBody("COD", map[string]interface{}{"productId": "2", "quantity": 1}), customer)
	require.Equal(t, http.StatusOK, rec.Code)
	orderID := decode(t, rec)["orderId"].(string)

	adminCookie := adminLogin(t, h)
	rec = postJSON(h, "/admin/update-order-status", map[string]interface{}{
		"orderId": orderID,
		"status":  "Shipped",
	}, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	o, err := st.Orders.ByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, o.Status)
}

func TestAdminAPIBearerToken(t *testing.T) {
	h, st := newApp(t)
	seedAdmin(t, st)

	rec := postJSON(h, "/admin/login", map[string]interface{}{
		"email":    "admin@gmail.com",
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestSignInWrongPassword(t *testing.T) {
	h, _ := newApp(t)
	signUp(t, h, "ravi@example.com")

	form := url.Values{"email": {"ravi@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newApp(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	// No backing stores are connected in tests.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
}
