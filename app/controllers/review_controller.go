package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vivekmishra161/AKC-autoparts-1/app/services"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/bind"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/response"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
)

// ReviewController serves review submission and rating lookups.
type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// Create accepts a review from the product page form or as JSON.
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	p, ok := session.Principal{}, false
	if sess != nil {
		p, ok = sess.User()
	}
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "Please sign in to review")
		return
	}

	in, fromForm, err := c.decode(r)
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.ProductID == "" {
		response.Fail(w, http.StatusBadRequest, "Missing product id")
		return
	}

	_, err = c.service.Create(r.Context(), p.ID, p.Name, in)
	switch {
	case errors.Is(err, services.ErrInvalidRating):
		response.Fail(w, http.StatusBadRequest, "Rating must be between 1 and 5")
	case err != nil:
		logger.Error("review create failed", "product_id", in.ProductID, "error", err)
		response.ServerError(w)
	default:
		if fromForm {
			http.Redirect(w, r, "/product?id="+in.ProductID, http.StatusSeeOther)
			return
		}
		response.Success(w, nil)
	}
}

func (c *ReviewController) decode(r *http.Request) (services.ReviewInput, bool, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var in services.ReviewInput
		if _, err := bind.JSON(r, &in); err != nil {
			return in, false, err
		}
		return in, false, nil
	}

	form, err := bind.Form(r)
	if err != nil {
		return services.ReviewInput{}, true, err
	}
	rating, _ := strconv.Atoi(form["rating"])
	return services.ReviewInput{
		ProductID: form["productId"],
		Rating:    rating,
		Comment:   form["message"],
	}, true, nil
}

// List returns a product's reviews, newest first.
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	reviews, err := c.service.ForProduct(r.Context(), productID)
	if err != nil {
		logger.Error("reviews: load failed", "product_id", productID, "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]interface{}{"reviews": reviews})
}

// Rating returns the average rating summary for a product.
func (c *ReviewController) Rating(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	summary, err := c.service.AverageRating(r.Context(), productID)
	if err != nil {
		logger.Error("rating: load failed", "product_id", productID, "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]interface{}{"avg": summary.Average, "count": summary.Count})
}
