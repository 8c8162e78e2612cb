package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
)

func TestStaticReaderByID(t *testing.T) {
	r := NewStaticReader([]models.Product{
		{ID: "1", Name: "Brake Pad Set", Price: 1499},
		{ID: "2", Name: "Air Filter", Price: 549},
	})

	p, ok, err := r.ByID(context.Background(), "2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Air Filter", p.Name)

	_, ok, err = r.ByID(context.Background(), "99")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticReaderAllCopies(t *testing.T) {
	r := NewStaticReader([]models.Product{{ID: "1", Name: "Coolant"}})

	first, err := r.All(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := r.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Coolant", second[0].Name)
}

func TestHTTPReaderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "7", Name: "Headlight Bulb H4", Price: 399},
		})
	}))
	defer srv.Close()

	r := NewHTTPReader(srv.URL)
	products, err := r.All(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "7", products[0].ID)

	p, ok, err := r.ByID(context.Background(), "7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 399.0, p.Price)
}

func TestHTTPReaderStaleFallback(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode([]models.Product{{ID: "3", Name: "Air Filter"}})
	}))
	defer srv.Close()

	r := NewHTTPReader(srv.URL)
	_, err := r.All(context.Background())
	require.NoError(t, err)

	fail = true
	products, err := r.All(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "3", products[0].ID)
}

func TestHTTPReaderUpstreamErrorNoStale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTPReader(srv.URL)
	_, err := r.All(context.Background())
	assert.Error(t, err)
}
