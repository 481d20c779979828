package handlers

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/shared/errors"
)

// bindJSON binds the request body and normalizes binding failures into
// validation errors so they render as 400, not 500.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}
