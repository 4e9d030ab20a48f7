package repository

import (
	"context"

	"ecomarket/internal/model"

	"gorm.io/gorm"
)

// ReviewRepository defines data access for reviews. Mutations run inside the
// review service's transaction, hence the *Tx variants.
type ReviewRepository interface {
	// ListActive returns active reviews whose product and author are also
	// active — a review of a delisted product is hidden too.
	ListActive(ctx context.Context) ([]model.Review, error)
	ListActiveByProductID(ctx context.Context, productID uint) ([]model.Review, error)
	FindActiveByID(ctx context.Context, id uint) (*model.Review, error)

	CreateTx(tx *gorm.DB, rev *model.Review) error
	SoftDeleteTx(tx *gorm.DB, id uint) error
	// ActiveGradesTx reads the grades feeding the rating recomputation. Must
	// run on the same tx that holds the product row lock.
	ActiveGradesTx(tx *gorm.DB, productID uint) ([]float64, error)
}

type reviewRepo struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) ReviewRepository { return &reviewRepo{db: db} }

func (r *reviewRepo) ListActive(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = reviews.product_id").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.is_active = true AND products.is_active = true AND users.is_active = true").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) ListActiveByProductID(ctx context.Context, productID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = true", productID).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) FindActiveByID(ctx context.Context, id uint) (*model.Review, error) {
	var rev model.Review
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = true", id).First(&rev).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepo) CreateTx(tx *gorm.DB, rev *model.Review) error {
	return tx.Create(rev).Error
}

func (r *reviewRepo) SoftDeleteTx(tx *gorm.DB, id uint) error {
	return tx.Model(&model.Review{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *reviewRepo) ActiveGradesTx(tx *gorm.DB, productID uint) ([]float64, error) {
	var grades []float64
	err := tx.Model(&model.Review{}).
		Where("product_id = ? AND is_active = true", productID).
		Pluck("grade", &grades).Error
	return grades, err
}
