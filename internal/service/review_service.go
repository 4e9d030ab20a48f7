package service

import (
	"context"
	"errors"
	"time"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"
	"ecomarket/internal/dto"
	"ecomarket/internal/model"
	"ecomarket/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReviewService manages reviews and keeps the product's cached rating
// consistent: every create/soft-delete recomputes the rating inside the same
// transaction, under a row lock on the product.
type ReviewService interface {
	ListActive(ctx context.Context) ([]dto.ReviewResponse, error)
	ListByProduct(ctx context.Context, productSlug string) ([]dto.ReviewResponse, error)
	Create(ctx context.Context, claims *auth.Claims, productSlug string, req dto.CreateReviewRequest) error
	Delete(ctx context.Context, reviewID uint) error
}

type reviewService struct {
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
	rdb         *redis.Client
}

func NewReviewService(repo repository.ReviewRepository, productRepo repository.ProductRepository, rdb *redis.Client) ReviewService {
	return &reviewService{repo: repo, productRepo: productRepo, rdb: rdb}
}

func mapReview(rev *model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:          rev.ID,
		UserID:      rev.UserID,
		ProductID:   rev.ProductID,
		Comment:     rev.Comment,
		CommentDate: rev.CommentDate,
		Grade:       rev.Grade,
		IsActive:    rev.IsActive,
	}
}

func (s *reviewService) ListActive(ctx context.Context) ([]dto.ReviewResponse, error) {
	reviews, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, apierror.NotFound("There is no reviews found")
	}
	return mapReviews(reviews), nil
}

func (s *reviewService) ListByProduct(ctx context.Context, productSlug string) ([]dto.ReviewResponse, error) {
	product, err := s.productRepo.FindActiveBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("There is no product found")
		}
		return nil, err
	}

	reviews, err := s.repo.ListActiveByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, apierror.NotFound("There is no reviews for this product found")
	}
	return mapReviews(reviews), nil
}

// Create stores a review and recomputes the product rating in one
// transaction. The product row is locked FOR UPDATE first so two concurrent
// submissions for the same product cannot both read a stale review set.
func (s *reviewService) Create(ctx context.Context, claims *auth.Claims, productSlug string, req dto.CreateReviewRequest) error {
	product, err := s.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("There is no product found")
		}
		return err
	}

	err = s.productRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.productRepo.LockByIDTx(tx, product.ID)
		if err != nil {
			return err
		}

		rev := &model.Review{
			UserID:      claims.UserID,
			ProductID:   locked.ID,
			Comment:     req.Comment,
			CommentDate: time.Now().UTC(),
			Grade:       req.Grade,
			IsActive:    true,
		}
		if err := s.repo.CreateTx(tx, rev); err != nil {
			return err
		}

		return s.recomputeRatingTx(tx, locked.ID)
	})
	if err != nil {
		return err
	}

	s.invalidateProductCache(ctx, product.Slug)
	return nil
}

// Delete soft-deletes a review and recomputes the rating in the same
// transaction; the review row itself is never removed.
func (s *reviewService) Delete(ctx context.Context, reviewID uint) error {
	review, err := s.repo.FindActiveByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("There is no review found")
		}
		return err
	}

	product, err := s.productRepo.FindByID(ctx, review.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("There is no product found")
		}
		return err
	}

	err = s.productRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.productRepo.LockByIDTx(tx, product.ID); err != nil {
			return err
		}
		if err := s.repo.SoftDeleteTx(tx, review.ID); err != nil {
			return err
		}
		return s.recomputeRatingTx(tx, product.ID)
	})
	if err != nil {
		return err
	}

	s.invalidateProductCache(ctx, product.Slug)
	return nil
}

// recomputeRatingTx assigns the product's cached rating from its currently
// active reviews: the arithmetic mean of grades rounded half-to-even to two
// decimals, or 0 when no active reviews remain.
func (s *reviewService) recomputeRatingTx(tx *gorm.DB, productID uint) error {
	grades, err := s.repo.ActiveGradesTx(tx, productID)
	if err != nil {
		return err
	}
	return s.productRepo.UpdateRatingTx(tx, productID, AverageRating(grades))
}

// AverageRating computes the displayed rating for a set of grades. Banker's
// rounding (round half to even) to 2 decimal places, matching the storefront.
func AverageRating(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, g := range grades {
		sum = sum.Add(decimal.NewFromFloat(g))
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(grades))))
	return mean.RoundBank(2).InexactFloat64()
}

func (s *reviewService) invalidateProductCache(ctx context.Context, productSlug string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, productCacheKey(productSlug)).Err()
}

func mapReviews(reviews []model.Review) []dto.ReviewResponse {
	result := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		result = append(result, mapReview(&reviews[i]))
	}
	return result
}
