// Package store defines the persistence interfaces for storefront data.
// Two backends implement them: mongostore (default) and sqlstore, chosen
// by STORE_DRIVER. memstore backs tests.
package store

import (
	"context"
	"errors"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a unique email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists customer accounts.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

// OrderStore persists customer orders.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	ByID(ctx context.Context, id string) (*models.Order, error)
	// ForUser returns the user's orders, newest first.
	ForUser(ctx context.Context, userID string) ([]models.Order, error)
	// All returns every order, newest first.
	All(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int64, error)
}

// ReviewStore persists product reviews.
type ReviewStore interface {
	Create(ctx context.Context, r *models.Review) error
	// ForProduct returns the product's reviews, newest first.
	ForProduct(ctx context.Context, productID string) ([]models.Review, error)
	Count(ctx context.Context) (int64, error)
}

// AdminStore persists back-office accounts. Admins always live in the
// relational database.
type AdminStore interface {
	ByEmail(ctx context.Context, email string) (*models.Admin, error)
	FirstOrCreate(ctx context.Context, a *models.Admin) error
}

// Stores bundles the active backends for injection into services.
type Stores struct {
	Users   UserStore
	Orders  OrderStore
	Reviews ReviewStore
	Admins  AdminStore
}
