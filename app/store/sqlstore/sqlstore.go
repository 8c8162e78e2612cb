// Package sqlstore implements the storefront stores on the relational
// database through gorm. It is the alternative backend for deployments
// without MongoDB, and always hosts the admin accounts.
package sqlstore

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
)

// New wires the SQL-backed stores over the given gorm handle.
func New(db *gorm.DB) store.Stores {
	return store.Stores{
		Users:   &UserStore{db: db},
		Orders:  &OrderStore{db: db},
		Reviews: &ReviewStore{db: db},
		Admins:  NewAdminStore(db),
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = store.NewID()
	}
	err := s.db.WithContext(ctx).Create(u).Error
	if err != nil && isDuplicate(err) {
		return store.ErrDuplicateEmail
	}
	return err
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

type OrderStore struct {
	db *gorm.DB
}

func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	if o.ID == "" {
		o.ID = store.NewID()
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = store.NewID()
		}
		o.Items[i].OrderID = o.ID
	}
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *OrderStore) ByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderStore) ForUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}

type ReviewStore struct {
	db *gorm.DB
}

func (s *ReviewStore) Create(ctx context.Context, r *models.Review) error {
	if r.ID == "" {
		r.ID = store.NewID()
	}
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ReviewStore) ForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (s *ReviewStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Review{}).Count(&n).Error
	return n, err
}
