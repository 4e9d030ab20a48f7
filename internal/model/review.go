package model

import (
	"time"
)

// Review links one user to one product with a grade in [0,10]. Reviews are
// never physically deleted; IsActive=false excludes them from listings and
// from the rating computation.
type Review struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index;not null"`
	ProductID   uint `gorm:"index;not null"`
	Comment     *string
	CommentDate time.Time
	Grade       float64 `gorm:"not null"`
	IsActive    bool    `gorm:"not null;default:true"`

	User    User    `gorm:"foreignKey:UserID"`
	Product Product `gorm:"foreignKey:ProductID"`
}
