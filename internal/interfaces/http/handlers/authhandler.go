// Package handlers contains the gin HTTP handlers. Handlers bind and
// validate request DTOs, delegate to application services, and render
// the standard response envelope.
package handlers

import (
	"github.com/gin-gonic/gin"

	authapp "rosterd/internal/application/auth"
	"rosterd/internal/interfaces/dto"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

type AuthHandler struct {
	authService *authapp.Service
	logger      logger.Interface
}

func NewAuthHandler(authService *authapp.Service, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.LoginResponse{
		User: dto.NewUserResponse(result.User),
		Tokens: dto.TokenResponse{
			AccessToken:  result.Tokens.AccessToken,
			RefreshToken: result.Tokens.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    result.Tokens.ExpiresIn,
		},
	})
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u, err := h.authService.Me(c.Request.Context(), userID, orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewUserResponse(u))
}
