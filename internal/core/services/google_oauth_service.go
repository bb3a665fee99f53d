package services

import (
	"context"
	"errors"
	"fmt"

	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/platform/config"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateStateString creates a secure random CSRF token for the OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetAuthCodeURL builds the Google consent-screen URL for a state.
func (s *googleOAuthHandlerService) GetAuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForIdentity swaps the callback code for tokens and verifies the
// ID token, returning the external identity.
func (s *googleOAuthHandlerService) ExchangeCodeForIdentity(ctx context.Context, code string) (*portssvc.GoogleOAuthIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response did not include an id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	identity := &portssvc.GoogleOAuthIdentity{
		Subject: payload.Subject,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if identity.Email == "" {
		return nil, errors.New("google ID token did not include an email claim")
	}

	return identity, nil
}
