package catalog

import (
	"context"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
)

// builtinProducts is the default catalogue shipped with the application.
var builtinProducts = []models.Product{
	{ID: "1", Name: "Brake Pad Set", Price: 1499, Image: "/assets/brake-pads.jpg", Category: "Brakes", Description: "Ceramic front brake pad set with shims."},
	{ID: "2", Name: "Engine Oil 5W-30 (4L)", Price: 2199, Image: "/assets/engine-oil.jpg", Category: "Fluids", Description: "Fully synthetic engine oil, 4 litre can."},
	{ID: "3", Name: "Air Filter", Price: 549, Image: "/assets/air-filter.jpg", Category: "Filters", Description: "High-flow panel air filter."},
	{ID: "4", Name: "Spark Plug (Set of 4)", Price: 1299, Image: "/assets/spark-plugs.jpg", Category: "Ignition", Description: "Iridium spark plugs, pre-gapped."},
	{ID: "5", Name: "Wiper Blade Pair", Price: 699, Image: "/assets/wiper-blades.jpg", Category: "Exterior", Description: "All-season frameless wiper blades."},
	{ID: "6", Name: "Car Battery 45Ah", Price: 5499, Image: "/assets/battery.jpg", Category: "Electrical", Description: "Maintenance-free 45Ah battery, 36 month warranty."},
	{ID: "7", Name: "Headlight Bulb H4", Price: 399, Image: "/assets/headlight.jpg", Category: "Electrical", Description: "Halogen H4 bulb, 60/55W."},
	{ID: "8", Name: "Coolant Concentrate (1L)", Price: 449, Image: "/assets/coolant.jpg", Category: "Fluids", Description: "Long-life coolant concentrate, mix 1:1."},
	{ID: "9", Name: "Clutch Plate Kit", Price: 4899, Image: "/assets/clutch-kit.jpg", Category: "Transmission", Description: "Clutch plate, pressure plate and release bearing."},
	{ID: "10", Name: "Cabin Air Filter", Price: 649, Image: "/assets/cabin-filter.jpg", Category: "Filters", Description: "Activated-carbon cabin filter."},
}

// StaticReader serves a fixed product list from memory.
type StaticReader struct {
	products []models.Product
	byID     map[string]models.Product
}

// NewStaticReader builds a reader over the given product list.
func NewStaticReader(products []models.Product) *StaticReader {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticReader{products: products, byID: byID}
}

func (r *StaticReader) All(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *StaticReader) ByID(ctx context.Context, id string) (models.Product, bool, error) {
	p, ok := r.byID[id]
	return p, ok, nil
}
