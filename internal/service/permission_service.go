package service

import (
	"context"
	"errors"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"
	"ecomarket/internal/model"
	"ecomarket/internal/repository"

	"gorm.io/gorm"
)

// PermissionService implements the admin-only role toggles and user
// soft-deletion.
type PermissionService interface {
	ToggleSupplier(ctx context.Context, userID uint) (detail string, err error)
	ToggleCustomer(ctx context.Context, userID uint) (detail string, err error)
	DeleteUser(ctx context.Context, userID uint) error
}

type permissionService struct {
	repo repository.UserRepository
}

func NewPermissionService(repo repository.UserRepository) PermissionService {
	return &permissionService{repo: repo}
}

func (s *permissionService) ToggleSupplier(ctx context.Context, userID uint) (string, error) {
	user, err := s.loadActiveUser(ctx, userID)
	if err != nil {
		return "", err
	}

	var detail string
	if user.IsSupplier {
		user.IsSupplier = false
		detail = "User is no longer supplier"
	} else {
		user.IsSupplier = true
		detail = "User is now supplier"
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return detail, nil
}

func (s *permissionService) ToggleCustomer(ctx context.Context, userID uint) (string, error) {
	user, err := s.loadActiveUser(ctx, userID)
	if err != nil {
		return "", err
	}

	var detail string
	if user.IsCustomer {
		user.IsCustomer = false
		detail = "User is no longer customer"
	} else {
		user.IsCustomer = true
		detail = "User is now customer"
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return detail, nil
}

// DeleteUser soft-deletes an account. Admin accounts are protected: the
// is_admin check runs before the active-user check, so even a soft-deleted
// admin row is reported as Forbidden rather than NotFound.
func (s *permissionService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("User not found")
		}
		return err
	}

	if user.IsAdmin {
		return apierror.Forbidden("Admin user can't be deleted")
	}
	if err := auth.RequireActiveUser(user); err != nil {
		return err
	}

	user.IsActive = false
	return s.repo.Update(ctx, user)
}

func (s *permissionService) loadActiveUser(ctx context.Context, userID uint) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User not found")
		}
		return nil, err
	}
	if err := auth.RequireActiveUser(u); err != nil {
		return nil, err
	}
	return u, nil
}
