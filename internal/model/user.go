package model

import (
	"time"
)

// User stores marketplace accounts. Role flags are independent booleans, not
// a closed enum: an account may be admin and supplier at the same time, and
// every new registration starts as a plain customer.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	IsSupplier   bool   `gorm:"not null;default:false"`
	IsCustomer   bool   `gorm:"not null;default:true"`
	// IsActive=false means soft-deleted: the row stays but every lookup
	// treats the user as not found.
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
