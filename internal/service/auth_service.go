package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"
	"ecomarket/internal/config"
	"ecomarket/internal/dto"
	"ecomarket/internal/model"
	"ecomarket/internal/repository"
	"ecomarket/internal/worker"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies credentials, registers accounts and issues tokens.
type AuthService interface {
	Login(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req dto.CreateUserRequest) error
}

type authService struct {
	repo       repository.UserRepository
	codec      *auth.TokenCodec
	dispatcher *worker.Dispatcher
	cfg        *config.Config
}

func NewAuthService(repo repository.UserRepository, codec *auth.TokenCodec, dispatcher *worker.Dispatcher, cfg *config.Config) AuthService {
	return &authService{repo: repo, codec: codec, dispatcher: dispatcher, cfg: cfg}
}

// Login authenticates a username/password pair and issues an access token.
// A wrong password, an unknown username and a soft-deleted account are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, apierror.Unauthenticated("Invalid authentication credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthenticated("Invalid authentication credentials")
	}

	ttl := time.Duration(s.cfg.JWTExpirationMinutes) * time.Minute
	token, err := s.codec.Issue(user, ttl)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Register creates a new customer account and enqueues a welcome email.
func (s *authService) Register(ctx context.Context, req dto.CreateUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsCustomer:   true,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return apierror.BadRequest("Could not create user")
	}

	// Welcome email is best effort: a down queue must not fail registration.
	if s.dispatcher != nil {
		payload := worker.EmailJobPayload{
			ToEmail: user.Email,
			Subject: "Welcome to the marketplace",
			Body:    fmt.Sprintf("Hi %s, your account %q is ready.", user.FirstName, user.Username),
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("failed to enqueue welcome email")
		}
	}

	return nil
}
