package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/event"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
)

const EventReviewCreated = "review.created"

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ReviewInput is a submitted product review.
type ReviewInput struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"message" validate:"max=2000"`
}

// ReviewService owns review submission and rating aggregation.
type ReviewService struct {
	reviews store.ReviewStore
}

func NewReviewService(reviews store.ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create records a review for the signed-in customer.
func (s *ReviewService) Create(ctx context.Context, userID, userName string, in ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}
	r := &models.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		UserName:  userName,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	metrics.ReviewsCreated.Inc()
	event.Fire(EventReviewCreated, r)
	return r, nil
}

// ForProduct returns a product's reviews, newest first.
func (s *ReviewService) ForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviews.ForProduct(ctx, productID)
}

// AverageRating returns the mean rating rounded to one decimal place.
// A product with no reviews yields {0, 0}.
func (s *ReviewService) AverageRating(ctx context.Context, productID string) (models.RatingSummary, error) {
	reviews, err := s.reviews.ForProduct(ctx, productID)
	if err != nil {
		return models.RatingSummary{}, err
	}
	if len(reviews) == 0 {
		return models.RatingSummary{}, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return models.RatingSummary{
		Average: math.Round(avg*10) / 10,
		Count:   len(reviews),
	}, nil
}
