package controllers

import (
	"net/http"

	"github.com/vivekmishra161/AKC-autoparts-1/app/catalog"
	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/services"
	"github.com/vivekmishra161/AKC-autoparts-1/app/views"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/response"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
)

// PageController serves the storefront HTML pages.
type PageController struct {
	catalog catalog.Reader
	reviews *services.ReviewService
}

func NewPageController(cat catalog.Reader, reviews *services.ReviewService) *PageController {
	return &PageController{catalog: cat, reviews: reviews}
}

func pageUser(r *http.Request) interface{} {
	sess := session.FromRequest(r)
	if sess == nil {
		return nil
	}
	if p, ok := sess.User(); ok {
		return p
	}
	return nil
}

// Index lists the full catalogue.
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.All(r.Context())
	if err != nil {
		logger.Error("index: catalog unavailable", "error", err)
		products = []models.Product{}
	}
	views.Render(w, "index", views.Data{
		Title: "Shop",
		User:  pageUser(r),
		Page:  products,
	})
}

type productPage struct {
	Product models.Product
	Reviews []models.Review
	Rating  models.RatingSummary
}

// Product shows one product with its reviews and rating summary.
func (c *PageController) Product(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	p, ok, err := c.catalog.ByID(r.Context(), id)
	if err != nil {
		logger.Error("product: catalog unavailable", "error", err)
		response.ServerError(w)
		return
	}
	if !ok {
		response.NotFound(w)
		return
	}

	reviews, err := c.reviews.ForProduct(r.Context(), id)
	if err != nil {
		logger.Error("product: reviews unavailable", "product_id", id, "error", err)
		reviews = []models.Review{}
	}
	rating, err := c.reviews.AverageRating(r.Context(), id)
	if err != nil {
		rating = models.RatingSummary{}
	}

	views.Render(w, "product", views.Data{
		Title: p.Name,
		User:  pageUser(r),
		Page:  productPage{Product: p, Reviews: reviews, Rating: rating},
	})
}

// Cart shows the checkout page. Cart contents live client-side until
// checkout submits them.
func (c *PageController) Cart(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "cart", views.Data{
		Title: "Cart",
		User:  pageUser(r),
	})
}
