package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rosterd/internal/shared/errors"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g. "callout event").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ListParams holds limit/offset pagination parsed from query parameters.
// Limit defaults to 100 and is capped at 500; offset is non-negative.
type ListParams struct {
	Limit  int
	Offset int
}

// ParseListParams reads limit/offset from the query string.
func ParseListParams(c *gin.Context) ListParams {
	params := ListParams{Limit: defaultListLimit}

	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Offset = v
		}
	}

	if params.Limit < 1 {
		params.Limit = 1
	}
	if params.Limit > maxListLimit {
		params.Limit = maxListLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return params
}

// GetAuthContext extracts the authenticated caller's identity from the
// gin context seeded by the auth middleware.
func GetAuthContext(c *gin.Context) (userID uint, orgID uint, role string, err error) {
	uid, exists := c.Get("user_id")
	if !exists {
		return 0, 0, "", errors.NewUnauthorizedError("User not authenticated")
	}
	userID, ok := uid.(uint)
	if !ok {
		return 0, 0, "", errors.NewInternalError("Internal error")
	}

	oid, exists := c.Get("org_id")
	if !exists {
		return 0, 0, "", errors.NewUnauthorizedError("User not authenticated")
	}
	orgID, ok = oid.(uint)
	if !ok {
		return 0, 0, "", errors.NewInternalError("Internal error")
	}

	return userID, orgID, c.GetString("user_role"), nil
}
