package models

import "time"

// User is a storefront customer account.
type User struct {
	ID        string    `bson:"_id,omitempty" gorm:"primaryKey;size:64" json:"id"`
	Name      string    `bson:"name" gorm:"size:255;not null" json:"name"`
	Email     string    `bson:"email" gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone     string    `bson:"phone" gorm:"size:20" json:"phone"`
	Password  string    `bson:"password" gorm:"size:255;not null" json:"-"` // hashed, never serialised
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Admin is a back-office operator account. Admins always live in the
// relational database regardless of the storefront store driver.
type Admin struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}
