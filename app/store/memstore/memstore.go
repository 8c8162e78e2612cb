// Package memstore implements the storefront stores in memory. It backs
// the service and controller tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
)

// New returns an empty in-memory store bundle.
func New() store.Stores {
	return store.Stores{
		Users:   &UserStore{users: map[string]models.User{}},
		Orders:  &OrderStore{orders: map[string]models.Order{}},
		Reviews: &ReviewStore{},
		Admins:  &AdminStore{admins: map[string]models.Admin{}},
	}
}

type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = store.NewID()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	seq    int
}

func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = store.NewID()
	}
	s.seq++
	now := time.Now().Add(time.Duration(s.seq) * time.Microsecond)
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders[o.ID] = *o
	return nil
}

func (s *OrderStore) ByID(ctx context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := o
	return &out, nil
}

func (s *OrderStore) ForUser(ctx context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sortNewestFirst(orders)
	return orders, nil
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return store.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	s.orders[id] = o
	return nil
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.orders)), nil
}

type ReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func (s *ReviewStore) Create(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = store.NewID()
	}
	now := time.Now().Add(time.Duration(len(s.reviews)) * time.Microsecond)
	r.CreatedAt = now
	r.UpdatedAt = now
	s.reviews = append(s.reviews, *r)
	return nil
}

func (s *ReviewStore) ForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := []models.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *ReviewStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reviews)), nil
}

type AdminStore struct {
	mu     sync.RWMutex
	admins map[string]models.Admin
}

func (s *AdminStore) ByEmail(ctx context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Email == email {
			out := a
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *AdminStore) FirstOrCreate(ctx context.Context, a *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if existing.Email == a.Email {
			*a = existing
			return nil
		}
	}
	if a.ID == "" {
		a.ID = store.NewID()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	s.admins[a.ID] = *a
	return nil
}
