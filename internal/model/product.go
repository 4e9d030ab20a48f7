package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry owned by at most one supplier. Rating is a
// denormalized cache: it is recomputed only when a review for this product is
// created or soft-deleted, never on read.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"index;not null"`
	Slug        string          `gorm:"uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    string
	Stock       int     `gorm:"not null;default:0"`
	Rating      float64 `gorm:"not null;default:0"`
	CategoryID  uint    `gorm:"index;not null"`
	// SupplierID is nullable and does not cascade: soft-deleting the supplier
	// leaves their products untouched.
	SupplierID *uint `gorm:"index"`
	IsActive   bool  `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category Category `gorm:"foreignKey:CategoryID"`
	Supplier *User    `gorm:"foreignKey:SupplierID"`
}
