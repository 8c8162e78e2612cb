package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
)

// AdminStore persists back-office accounts in the relational database.
type AdminStore struct {
	db *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) ByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FirstOrCreate inserts the admin unless one with the same email exists.
// Used by the seeder, so existing accounts keep their password.
func (s *AdminStore) FirstOrCreate(ctx context.Context, a *models.Admin) error {
	if a.ID == "" {
		a.ID = store.NewID()
	}
	return s.db.WithContext(ctx).
		Where("email = ?", a.Email).
		FirstOrCreate(a).Error
}
