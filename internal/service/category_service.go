package service

import (
	"context"
	"errors"

	"ecomarket/internal/apierror"
	"ecomarket/internal/dto"
	"ecomarket/internal/model"
	"ecomarket/internal/repository"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// maxCategoryDepth bounds the ancestor walk during cycle detection.
const maxCategoryDepth = 100

// CategoryService defines business operations for the category tree.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, categorySlug string, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, categorySlug string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *req.ParentID)
		if err != nil || !parent.IsActive {
			return nil, apierror.NotFound("There is no such category")
		}
	}

	c := &model.Category{
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
		ParentID: req.ParentID,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apierror.BadRequest("Could not create category")
	}
	return mapCategory(c), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapCategory(&list[i]))
	}
	return result, nil
}

func (s *categoryService) Update(ctx context.Context, categorySlug string, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no such category")
		}
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.checkNoCycle(ctx, c.ID, *req.ParentID); err != nil {
			return nil, err
		}
	}

	c.Name = req.Name
	c.Slug = slug.Make(req.Name)
	c.ParentID = req.ParentID

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return mapCategory(c), nil
}

func (s *categoryService) Delete(ctx context.Context, categorySlug string) error {
	c, err := s.repo.FindActiveBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("There is no such category")
		}
		return err
	}
	return s.repo.SoftDelete(ctx, c.ID)
}

// checkNoCycle walks up from the proposed parent; reaching the category being
// updated means the new parent is one of its own descendants.
func (s *categoryService) checkNoCycle(ctx context.Context, categoryID, newParentID uint) error {
	current := newParentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		if current == categoryID {
			return apierror.BadRequest("Category cannot be its own ancestor")
		}
		node, err := s.repo.FindByID(ctx, current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("There is no such category")
			}
			return err
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
	return apierror.BadRequest("Category tree is too deep")
}
