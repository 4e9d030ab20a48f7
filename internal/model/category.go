package model

import (
	"time"
)

// Category classifies products. Categories form a tree via ParentID;
// nil means top-level. Soft-deleted via IsActive.
type Category struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	ParentID *uint  `gorm:"index"`
	IsActive bool   `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Parent *Category `gorm:"foreignKey:ParentID"`
}

// TableName keeps the plural form explicit.
func (Category) TableName() string { return "categories" }
