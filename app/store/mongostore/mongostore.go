// Package mongostore implements the storefront stores on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/mongodb"
)

// New wires the Mongo-backed stores. Admins stay relational, so the
// caller supplies an AdminStore from sqlstore.
func New(admins store.AdminStore) store.Stores {
	return store.Stores{
		Users:   &UserStore{c: mongodb.Collection("users")},
		Orders:  &OrderStore{c: mongodb.Collection("orders")},
		Reviews: &ReviewStore{c: mongodb.Collection("reviews")},
		Admins:  admins,
	}
}

type UserStore struct {
	c *mongo.Collection
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	err := s.c.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return store.ErrDuplicateEmail
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if u.ID == "" {
		u.ID = store.NewID()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err = s.c.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicateEmail
	}
	return err
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

type OrderStore struct {
	c *mongo.Collection
}

func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	if o.ID == "" {
		o.ID = store.NewID()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, o)
	return err
}

func (s *OrderStore) ByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderStore) ForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *OrderStore) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

type ReviewStore struct {
	c *mongo.Collection
}

func (s *ReviewStore) Create(ctx context.Context, r *models.Review) error {
	if r.ID == "" {
		r.ID = store.NewID()
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, r)
	return err
}

func (s *ReviewStore) ForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	cur, err := s.c.Find(ctx, bson.M{"productId": productID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
