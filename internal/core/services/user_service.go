package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils"
)

// UserService provides business logic for accounts and preferences.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a local-password account. The email is normalized to
// lower case before storage and lookup.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}

	defaultCurrency := domain.BaseCurrency
	if req.DefaultCurrency != "" {
		defaultCurrency, err = domain.ParseCurrency(req.DefaultCurrency)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:          uuid.NewString(),
		Email:           email,
		DisplayName:     displayName,
		DefaultCurrency: defaultCurrency,
		AuthProvider:    domain.ProviderLocal,
		PasswordHash:    hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID)
	return &user, nil
}

// GetUserByID returns a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail returns a user by normalized email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// FindOrCreateOAuthUser resolves an external identity to a local user,
// creating the account on first login.
func (s *UserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, displayName string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProvider(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	// First login: if the email already has a local account, link the
	// provider identity to it rather than creating a second account.
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		existing.AuthProvider = provider
		existing.ProviderUserID = providerUserID
		existing.LastUpdatedAt = time.Now().UTC()
		existing.LastUpdatedBy = existing.UserID
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to link provider identity", "user_id", existing.UserID)
			return nil, err
		}
		s.LogInfo(ctx, "Linked provider identity to existing account", "user_id", existing.UserID)
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:          uuid.NewString(),
		Email:           email,
		DisplayName:     displayName,
		DefaultCurrency: domain.BaseCurrency,
		AuthProvider:    provider,
		ProviderUserID:  providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create OAuth user")
		return nil, err
	}

	s.LogInfo(ctx, "OAuth user created", "user_id", newUser.UserID)
	return &newUser, nil
}

// UpdateUser applies profile/preference changes for userID.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, fmt.Errorf("%w: display name cannot be empty", apperrors.ErrValidation)
		}
		user.DisplayName = name
	}
	if req.DefaultCurrency != nil {
		currency, err := domain.ParseCurrency(*req.DefaultCurrency)
		if err != nil {
			return nil, err
		}
		user.DefaultCurrency = currency
	}

	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, err
	}
	return user, nil
}

// StoreRefreshToken persists the hash of the user's current refresh token.
func (s *UserService) StoreRefreshToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiry)
}

// ClearRefreshToken invalidates the stored refresh token (logout).
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil)
}
