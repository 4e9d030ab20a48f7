package repository

import (
	"context"

	"ecomarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	// FindBySlug returns the product regardless of IsActive/stock: the
	// ownership check on update needs the row even when it is hidden from
	// public listings.
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindActiveBySlug(ctx context.Context, slug string) (*model.Product, error)
	// FindAvailableBySlug additionally requires stock > 0 (public detail view).
	FindAvailableBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// ListAvailable returns active, in-stock products whose category is active.
	ListAvailable(ctx context.Context) ([]model.Product, error)
	ListAvailableByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	SoftDelete(ctx context.Context, id uint) error

	// Used inside the review transaction — callers must pass the tx instance.
	LockByIDTx(tx *gorm.DB, id uint) (*model.Product, error)
	UpdateRatingTx(tx *gorm.DB, id uint, rating float64) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindActiveBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = true", slug).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAvailableBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = true AND stock > 0", slug).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListAvailable(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = true AND categories.is_active = true AND products.stock > 0").
		Order("products.name asc").
		Find(&products).Error
	return products, err
}

func (r *productRepo) ListAvailableByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("category_id IN ? AND is_active = true AND stock > 0", categoryIDs).
		Order("name asc").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("is_active", false).Error
}

// LockByIDTx takes a FOR UPDATE row lock so two concurrent review mutations
// for the same product serialize their rating recomputation.
func (r *productRepo) LockByIDTx(tx *gorm.DB, id uint) (*model.Product, error) {
	var p model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) UpdateRatingTx(tx *gorm.DB, id uint, rating float64) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).Update("rating", rating).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
