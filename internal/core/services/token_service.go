package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/platform/config"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new opaque refresh token and persists its
// hash against the user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	// 32 random bytes -> 64-character hex string.
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	tokenHash := utils.HashRefreshToken(rawRefreshToken)
	if err := s.userService.StoreRefreshToken(ctx, user.UserID, tokenHash, expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawRefreshToken, expiryTime, nil
}

// ValidateRefreshToken checks a raw refresh token against the user's stored
// hash and expiry, returning the user on success.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
