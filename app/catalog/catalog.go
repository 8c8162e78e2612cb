// Package catalog serves the product catalogue. Products are reference
// data: the storefront reads them for listing pages and resolves cart
// items against them at checkout, but never writes them.
package catalog

import (
	"context"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/config"
)

// Reader resolves catalogue products.
type Reader interface {
	// All returns every catalogue product.
	All(ctx context.Context) ([]models.Product, error)
	// ByID returns the product with the given id, or (zero, false) when
	// no such product exists.
	ByID(ctx context.Context, id string) (models.Product, bool, error)
}

// New returns the catalogue reader for the current configuration: an
// HTTP-backed reader when CATALOG_URL is set, otherwise the built-in
// static catalogue.
func New() Reader {
	if url := config.CatalogURL(); url != "" {
		return NewHTTPReader(url)
	}
	return NewStaticReader(builtinProducts)
}
