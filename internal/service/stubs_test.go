package service

import (
	"context"

	"ecomarket/internal/model"

	"gorm.io/gorm"
)

// In-memory repository stubs shared by the service unit tests. Transactional
// paths (review create/delete) are exercised by the integration suite against
// a real database instead.

// ── User repo stub ───────────────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.IsActive {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

// ── Category repo stub ───────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*model.Category), nextID: 1}
}

func (r *stubCategoryRepo) add(c *model.Category) *model.Category {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.categories[c.ID] = c
	return c
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.add(c)
	return nil
}

func (r *stubCategoryRepo) ListActive(_ context.Context) ([]model.Category, error) {
	var list []model.Category
	for _, c := range r.categories {
		if c.IsActive {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) FindActiveBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) ListActiveChildren(_ context.Context, parentID uint) ([]model.Category, error) {
	var list []model.Category
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == parentID && c.IsActive {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) SoftDelete(_ context.Context, id uint) error {
	if c, ok := r.categories[id]; ok {
		c.IsActive = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Product repo stub ────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) add(p *model.Product) *model.Product {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, slug string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindActiveBySlug(_ context.Context, slug string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug && p.IsActive {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindAvailableBySlug(_ context.Context, slug string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug && p.IsActive && p.Stock > 0 {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) ListAvailable(_ context.Context) ([]model.Product, error) {
	var list []model.Product
	for _, p := range r.products {
		if p.IsActive && p.Stock > 0 {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *stubProductRepo) ListAvailableByCategoryIDs(_ context.Context, ids []uint) ([]model.Product, error) {
	idSet := make(map[uint]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	var list []model.Product
	for _, p := range r.products {
		if idSet[p.CategoryID] && p.IsActive && p.Stock > 0 {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uint) error {
	if p, ok := r.products[id]; ok {
		p.IsActive = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductRepo) LockByIDTx(_ *gorm.DB, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) UpdateRatingTx(_ *gorm.DB, id uint, rating float64) error {
	if p, ok := r.products[id]; ok {
		p.Rating = rating
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

// ── Review repo stub ─────────────────────────────────────────────────────────

type stubReviewRepo struct {
	reviews map[uint]*model.Review
	nextID  uint
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[uint]*model.Review), nextID: 1}
}

func (r *stubReviewRepo) add(rev *model.Review) *model.Review {
	if rev.ID == 0 {
		rev.ID = r.nextID
		r.nextID++
	}
	r.reviews[rev.ID] = rev
	return rev
}

func (r *stubReviewRepo) ListActive(_ context.Context) ([]model.Review, error) {
	var list []model.Review
	for _, rev := range r.reviews {
		if rev.IsActive {
			list = append(list, *rev)
		}
	}
	return list, nil
}

func (r *stubReviewRepo) ListActiveByProductID(_ context.Context, productID uint) ([]model.Review, error) {
	var list []model.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID && rev.IsActive {
			list = append(list, *rev)
		}
	}
	return list, nil
}

func (r *stubReviewRepo) FindActiveByID(_ context.Context, id uint) (*model.Review, error) {
	rev, ok := r.reviews[id]
	if !ok || !rev.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return rev, nil
}

func (r *stubReviewRepo) CreateTx(_ *gorm.DB, rev *model.Review) error {
	r.add(rev)
	return nil
}

func (r *stubReviewRepo) SoftDeleteTx(_ *gorm.DB, id uint) error {
	if rev, ok := r.reviews[id]; ok {
		rev.IsActive = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *stubReviewRepo) ActiveGradesTx(_ *gorm.DB, productID uint) ([]float64, error) {
	var grades []float64
	for _, rev := range r.reviews {
		if rev.ProductID == productID && rev.IsActive {
			grades = append(grades, rev.Grade)
		}
	}
	return grades, nil
}
