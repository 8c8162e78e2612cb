package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/memstore"
)

func newReviewService(t *testing.T) *ReviewService {
	t.Helper()
	return NewReviewService(memstore.New().Reviews)
}

func TestCreateReview(t *testing.T) {
	svc := newReviewService(t)

	r, err := svc.Create(context.Background(), "u1", "Ravi", ReviewInput{
		ProductID: "1",
		Rating:    4,
		Comment:   "  Fits perfectly.  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Fits perfectly.", r.Comment)
	assert.Equal(t, "Ravi", r.UserName)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc := newReviewService(t)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), "u1", "Ravi", ReviewInput{
			ProductID: "1",
			Rating:    rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestForProductNewestFirst(t *testing.T) {
	svc := newReviewService(t)

	first, err := svc.Create(context.Background(), "u1", "Ravi", ReviewInput{ProductID: "1", Rating: 3})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "u2", "Meera", ReviewInput{ProductID: "1", Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "u3", "Amit", ReviewInput{ProductID: "2", Rating: 1})
	require.NoError(t, err)

	reviews, err := svc.ForProduct(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}

func TestAverageRatingRounding(t *testing.T) {
	svc := newReviewService(t)

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.Create(context.Background(), "u1", "Ravi", ReviewInput{ProductID: "1", Rating: rating})
		require.NoError(t, err)
	}

	summary, err := svc.AverageRating(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 4.3, summary.Average)
	assert.Equal(t, 3, summary.Count)
}

func TestAverageRatingEmpty(t *testing.T) {
	svc := newReviewService(t)

	summary, err := svc.AverageRating(context.Background(), "none")
	require.NoError(t, err)
	assert.Equal(t, models.RatingSummary{Average: 0, Count: 0}, summary)
}
