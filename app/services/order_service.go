package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/app/catalog"
	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/event"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/storage"
)

// EventOrderPlaced is fired with the *models.Order after a successful
// placement and again (new status) after an admin status update.
const (
	EventOrderPlaced  = "order.placed"
	EventOrderUpdated = "order.updated"
)

var (
	ErrInvalidPayment = errors.New("invalid payment method")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidCart    = errors.New("no valid items in cart")
	ErrNotOwner       = errors.New("order does not belong to user")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
	ErrInvalidStatus  = errors.New("invalid order status")
)

// CartItem is a line the customer submits at checkout. Only the product
// id and quantity are trusted; name and price come from the catalogue.
type CartItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderInput is a checkout submission. Any client-supplied total is
// ignored; the server reprices every line from the catalogue.
type PlaceOrderInput struct {
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"paymentMethod" validate:"required,in=COD,UPI"`
	Name          string     `json:"name" validate:"required,min=2,max=100"`
	Address       string     `json:"address" validate:"required,min=10"`
	City          string     `json:"city" validate:"required"`
	State         string     `json:"state" validate:"required"`
	Pin           string     `json:"pin" validate:"required,digits=6"`
	Phone         string     `json:"phone" validate:"required,digits=10"`
}

// DashboardStats feeds the admin dashboard.
type DashboardStats struct {
	Users   int64          `json:"users"`
	Orders  int64          `json:"orders"`
	Reviews int64          `json:"reviews"`
	Pending int            `json:"pending"`
	Revenue float64        `json:"revenue"`
	Recent  []models.Order `json:"recent"`
}

var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
	models.StatusShipped:   true,
	models.StatusDelivered: true,
	models.StatusCancelled: true,
}

// OrderService owns order placement, cancellation and back-office
// order management.
type OrderService struct {
	orders  store.OrderStore
	users   store.UserStore
	reviews store.ReviewStore
	catalog catalog.Reader
}

func NewOrderService(st store.Stores, cat catalog.Reader) *OrderService {
	return &OrderService{
		orders:  st.Orders,
		users:   st.Users,
		reviews: st.Reviews,
		catalog: cat,
	}
}

// Place validates and records a checkout. Checks run in a fixed order
// and the first failure wins: payment method, non-empty cart, catalogue
// resolution. Unknown product ids are dropped; if every line misses the
// catalogue the order is rejected. Stored lines snapshot the catalogue
// name and price at submission time.
func (s *OrderService) Place(ctx context.Context, userID string, in PlaceOrderInput) (*models.Order, error) {
	if in.PaymentMethod != models.PaymentCOD && in.PaymentMethod != models.PaymentUPI {
		return nil, ErrInvalidPayment
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	total := 0.0
	for _, line := range in.Items {
		p, ok, err := s.catalog.ByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Warn("order: dropping unknown product", "product_id", line.ProductID, "user_id", userID)
			continue
		}
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Image:     p.Image,
		})
		total += p.Price * float64(qty)
	}
	if len(items) == 0 {
		return nil, ErrInvalidCart
	}

	paymentStatus := models.PaymentStatusCOD
	if in.PaymentMethod == models.PaymentUPI {
		paymentStatus = models.PaymentStatusUPI
	}

	o := &models.Order{
		UserID:        userID,
		Items:         items,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: paymentStatus,
		Status:        models.StatusPending,
		Name:          in.Name,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Pin:           in.Pin,
		Phone:         in.Phone,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.WithLabelValues(o.PaymentMethod).Inc()
	metrics.OrderValue.Observe(o.Total)
	event.Fire(EventOrderPlaced, o)
	logger.Info("order placed", "order_id", o.ID, "user_id", userID, "total", o.Total)
	return o, nil
}

// Cancel lets the owning customer cancel an order that has not shipped.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) error {
	o, err := s.orders.ByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return ErrNotOwner
	}
	if !o.Cancellable() {
		return ErrNotCancellable
	}
	if err := s.orders.UpdateStatus(ctx, orderID, models.StatusCancelled); err != nil {
		return err
	}
	o.Status = models.StatusCancelled
	event.Fire(EventOrderUpdated, o)
	return nil
}

// UpdateStatus is the back-office status transition.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !validStatuses[status] {
		return ErrInvalidStatus
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	o, err := s.orders.ByID(ctx, orderID)
	if err == nil {
		event.Fire(EventOrderUpdated, o)
	}
	return nil
}

// ForUser returns the customer's order history, newest first.
func (s *OrderService) ForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ForUser(ctx, userID)
}

// All returns every order, newest first.
func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// ByID returns one order.
func (s *OrderService) ByID(ctx context.Context, orderID string) (*models.Order, error) {
	return s.orders.ByID(ctx, orderID)
}

// Dashboard aggregates counts for the admin landing page.
func (s *OrderService) Dashboard(ctx context.Context) (DashboardStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	reviews, err := s.reviews.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	all, err := s.orders.All(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	pending := 0
	revenue := 0.0
	for _, o := range all {
		if o.Status == models.StatusPending {
			pending++
		}
		if o.Status != models.StatusCancelled {
			revenue += o.Total
		}
	}
	recent := all
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return DashboardStats{
		Users:   users,
		Orders:  orders,
		Reviews: reviews,
		Pending: pending,
		Revenue: revenue,
		Recent:  recent,
	}, nil
}

// ExportCSV writes every order to the default storage disk as a CSV file
// and returns the stored path.
func (s *OrderService) ExportCSV(ctx context.Context) (string, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"order_id", "user_id", "total", "payment_method", "payment_status", "status", "items", "created_at"})
	for _, o := range orders {
		_ = w.Write([]string{
			o.ID,
			o.UserID,
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			o.PaymentMethod,
			o.PaymentStatus,
			o.Status,
			strconv.Itoa(len(o.Items)),
			o.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	path := fmt.Sprintf("exports/orders-%s.csv", time.Now().Format("20060102-150405"))
	if err := storage.Default().Put(path, buf.Bytes()); err != nil {
		return "", err
	}
	logger.Info("orders exported", "path", path, "count", len(orders))
	return path, nil
}
