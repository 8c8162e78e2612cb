package models

import "time"

// Order lifecycle states.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD = "COD"
	PaymentUPI = "UPI"
)

// Payment statuses assigned at placement time.
const (
	PaymentStatusCOD = "Cash On Delivery"
	PaymentStatusUPI = "Pending Verification"
)

// OrderItem is a price snapshot of a catalogue product at checkout.
// Later catalogue changes never affect a placed order.
type OrderItem struct {
	ID        string  `bson:"-" gorm:"primaryKey;size:64" json:"-"`
	OrderID   string  `bson:"-" gorm:"size:64;index;not null" json:"-"`
	ProductID string  `bson:"productId" gorm:"size:64;not null" json:"productId"`
	Name      string  `bson:"name" gorm:"size:255;not null" json:"name"`
	Price     float64 `bson:"price" gorm:"not null" json:"price"`
	Quantity  int     `bson:"quantity" gorm:"not null" json:"quantity"`
	Image     string  `bson:"image" gorm:"size:512" json:"image"`
}

// Order is a placed customer order. Shipping fields are captured at
// checkout alongside the item snapshot.
type Order struct {
	ID            string      `bson:"_id,omitempty" gorm:"primaryKey;size:64" json:"id"`
	UserID        string      `bson:"userId" gorm:"size:64;index;not null" json:"userId"`
	Items         []OrderItem `bson:"items" gorm:"foreignKey:OrderID" json:"items"`
	Total         float64     `bson:"total" gorm:"not null" json:"total"`
	PaymentMethod string      `bson:"paymentMethod" gorm:"size:20;not null" json:"paymentMethod"`
	PaymentStatus string      `bson:"paymentStatus" gorm:"size:50;not null" json:"paymentStatus"`
	Status        string      `bson:"status" gorm:"size:20;not null" json:"status"`
	Name          string      `bson:"name" gorm:"size:255" json:"name"`
	Address       string      `bson:"address" gorm:"type:text" json:"address"`
	City          string      `bson:"city" gorm:"size:100" json:"city"`
	State         string      `bson:"state" gorm:"size:100" json:"state"`
	Pin           string      `bson:"pin" gorm:"size:10" json:"pin"`
	Phone         string      `bson:"phone" gorm:"size:20" json:"phone"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// EstimatedDelivery is the customer-facing delivery estimate.
func (o Order) EstimatedDelivery() time.Time {
	return o.CreatedAt.AddDate(0, 0, 4)
}

// Cancellable reports whether the order may still be cancelled by its owner.
func (o Order) Cancellable() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}
