package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/config"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/cache"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
)

const cacheKey = "akc:catalog:products"

// HTTPReader fetches the catalogue from a remote JSON endpoint. Results
// are cached in Redis for CatalogCacheTTL, with a last-good in-memory
// copy used when both the cache and the upstream are unavailable.
type HTTPReader struct {
	url    string
	client *http.Client
	ttl    time.Duration

	mu   sync.RWMutex
	last []models.Product
}

func NewHTTPReader(url string) *HTTPReader {
	return &HTTPReader{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		ttl:    config.CatalogCacheTTL(),
	}
}

func (r *HTTPReader) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(cacheKey, &products) {
		metrics.CatalogCacheHits.Inc()
		r.remember(products)
		return products, nil
	}

	products, err := r.fetch(ctx)
	if err != nil {
		metrics.CatalogFetches.WithLabelValues("error").Inc()
		if stale := r.stale(); stale != nil {
			logger.Warn("catalog: upstream unavailable, serving stale copy", "error", err)
			return stale, nil
		}
		return nil, err
	}

	metrics.CatalogFetches.WithLabelValues("ok").Inc()
	cache.Set(cacheKey, products, r.ttl)
	r.remember(products)
	return products, nil
}

func (r *HTTPReader) ByID(ctx context.Context, id string) (models.Product, bool, error) {
	products, err := r.All(ctx)
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}

func (r *HTTPReader) fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: upstream returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("catalog: read body: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return products, nil
}

func (r *HTTPReader) remember(products []models.Product) {
	r.mu.Lock()
	r.last = products
	r.mu.Unlock()
}

func (r *HTTPReader) stale() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}
