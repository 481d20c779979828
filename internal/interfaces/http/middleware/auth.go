package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rosterd/internal/domain/user"
	"rosterd/internal/infrastructure/auth"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

// userLoader resolves the token's subject to a live user record.
type userLoader interface {
	GetActiveByID(ctx context.Context, id uint, orgID uint) (*user.User, error)
}

var _ userLoader = (user.Repository)(nil)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      userLoader
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, users userLoader, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token, confirms the user is still
// active, and seeds the request context with the caller's identity.
// Tokens of deactivated users stop working immediately, not at expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		u, err := m.users.GetActiveByID(c.Request.Context(), claims.UserID, claims.OrgID)
		if err != nil {
			m.logger.Errorw("failed to load user for token", "error", err, "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to authenticate request")
			c.Abort()
			return
		}
		if u == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user no longer active")
			c.Abort()
			return
		}

		c.Set("user_id", u.ID)
		c.Set("org_id", u.OrgID)
		c.Set("session_id", claims.SessionID)
		c.Set("user_role", u.Role.String())

		c.Next()
	}
}
