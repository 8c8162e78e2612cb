package models

import "time"

// Review is a customer rating and optional comment on a catalogue product.
type Review struct {
	ID        string    `bson:"_id,omitempty" gorm:"primaryKey;size:64" json:"id"`
	ProductID string    `bson:"productId" gorm:"size:64;index;not null" json:"productId"`
	UserID    string    `bson:"userId" gorm:"size:64;index;not null" json:"userId"`
	UserName  string    `bson:"userName" gorm:"size:255" json:"userName"`
	Rating    int       `bson:"rating" gorm:"not null" json:"rating"`
	Comment   string    `bson:"comment" gorm:"type:text" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RatingSummary aggregates reviews for a product.
type RatingSummary struct {
	Average float64 `json:"avg"`
	Count   int     `json:"count"`
}
