package usecase

import (
	"context"

	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/pkg/auth"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/geomark-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	bcryptCost int,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register stores a salted hash of the password and returns the new user id.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	hash, err := auth.HashPassword(req.Password, uc.bcryptCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.userRepo.Create(ctx, req.Email, hash)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.Int64("user_id", id))
	return &dto.RegisterResponse{ID: id}, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// email and hash mismatch are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.LoginResponse{Token: token}, nil
}
