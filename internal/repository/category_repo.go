package repository

import (
	"context"

	"ecomarket/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines data access for the category tree.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	ListActive(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindActiveBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	// ListActiveChildren returns the direct active subcategories of a node.
	ListActiveChildren(ctx context.Context, parentID uint) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	SoftDelete(ctx context.Context, id uint) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) ListActive(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Where("is_active = true").Order("name asc").Find(&list).Error
	return list, err
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindActiveBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = true", slug).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) ListActiveChildren(ctx context.Context, parentID uint) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND is_active = true", parentID).
		Find(&list).Error
	return list, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Update("is_active", false).Error
}
