package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/middleware"
	"github.com/kakeibo-app/kakeibo-backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler handles the Google login flow.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the public Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.Token, cfg)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.Login)
		google.GET("/callback", h.Callback)
	}
}

// Login godoc
// @Summary Start Google login
// @Description Redirects the browser to the Google consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) Login(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	// Short-lived state cookie pairs the redirect with the callback.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetAuthCodeURL(state))
}

// Callback godoc
// @Summary Google login callback
// @Description Verifies the callback, signs the user in, and redirects to the frontend with an access token.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	// One-shot: clear the state cookie regardless of outcome.
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code missing"})
		return
	}

	identity, err := h.googleOAuthService.ExchangeCodeForIdentity(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange Google authorization code", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		} else {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		}
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, identity.Subject, identity.Email, identity.DisplayName)
	if err != nil {
		logger.Error("Failed to resolve OAuth user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(time.Until(refreshExpiry).Seconds()), h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	// Hand the access token to the SPA via fragment so it never hits server logs.
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL+"/auth/callback#access_token="+accessToken)
}
