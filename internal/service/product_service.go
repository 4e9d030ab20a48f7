package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"
	"ecomarket/internal/dto"
	"ecomarket/internal/model"
	"ecomarket/internal/repository"

	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const productCacheTTL = 4 * time.Hour

func productCacheKey(productSlug string) string { return "product:" + productSlug }

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	ListAvailable(ctx context.Context) ([]dto.ProductResponse, error)
	ListByCategory(ctx context.Context, categorySlug string) ([]dto.ProductResponse, error)
	Detail(ctx context.Context, productSlug string) (*dto.ProductResponse, error)
	Create(ctx context.Context, claims *auth.Claims, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, claims *auth.Claims, productSlug string, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, claims *auth.Claims, productSlug string) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	rdb          *redis.Client
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, rdb: rdb}
}

func mapProduct(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Rating:      p.Rating,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		IsActive:    p.IsActive,
	}
}

// ListAvailable returns every active, in-stock product in an active category.
// An empty catalog is NotFound, not an empty list — a contract the clients
// already depend on.
func (s *productService) ListAvailable(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apierror.NotFound("There are no products")
	}
	return mapProducts(products), nil
}

// ListByCategory includes products of the category's direct active
// subcategories. Unlike the full listing, an empty result here is a valid
// empty list.
func (s *productService) ListByCategory(ctx context.Context, categorySlug string) ([]dto.ProductResponse, error) {
	category, err := s.categoryRepo.FindActiveBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no such category")
		}
		return nil, err
	}

	children, err := s.categoryRepo.ListActiveChildren(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(children)+1)
	ids = append(ids, category.ID)
	for _, child := range children {
		ids = append(ids, child.ID)
	}

	products, err := s.repo.ListAvailableByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

// Detail serves the public product page, cached in Redis.
func (s *productService) Detail(ctx context.Context, productSlug string) (*dto.ProductResponse, error) {
	cacheKey := productCacheKey(productSlug)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProductResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	product, err := s.repo.FindAvailableBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no product found")
		}
		return nil, err
	}

	resp := mapProduct(product)

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, productCacheTTL).Err()
		}
	}

	return resp, nil
}

func (s *productService) Create(ctx context.Context, claims *auth.Claims, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := s.categoryRepo.FindActiveBySlug(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no such category")
		}
		return nil, err
	}

	supplierID := claims.UserID
	p := &model.Product{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  category.ID,
		SupplierID:  &supplierID,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.BadRequest("Could not create product")
	}
	return mapProduct(p), nil
}

func (s *productService) Update(ctx context.Context, claims *auth.Claims, productSlug string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no product found")
		}
		return nil, err
	}

	if err := auth.RequireProductOwnership(claims, product); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindActiveBySlug(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no such category")
		}
		return nil, err
	}

	oldSlug := product.Slug
	product.Name = req.Name
	product.Slug = slug.Make(req.Name)
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.Stock = req.Stock
	product.CategoryID = category.ID

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, oldSlug, product.Slug)
	return mapProduct(product), nil
}

func (s *productService) Delete(ctx context.Context, claims *auth.Claims, productSlug string) error {
	product, err := s.repo.FindActiveBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("There is no product found")
		}
		return err
	}

	if err := auth.RequireProductOwnership(claims, product); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, product.ID); err != nil {
		return err
	}

	s.invalidateCache(ctx, product.Slug)
	return nil
}

func (s *productService) invalidateCache(ctx context.Context, slugs ...string) {
	if s.rdb == nil {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, sl := range slugs {
		keys = append(keys, productCacheKey(sl))
	}
	_ = s.rdb.Del(ctx, keys...).Err()
}

func mapProducts(products []model.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *mapProduct(&products[i]))
	}
	return result
}
