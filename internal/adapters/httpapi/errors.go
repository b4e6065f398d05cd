package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sonet/internal/core/apperr"
	userapp "sonet/internal/core/user/service"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a store-level failure and stays a 500.
func respondError(c *gin.Context, err error) {
	var (
		notFound     *apperr.NotFound
		denied       *apperr.PermissionDenied
		conflict     *apperr.Conflict
		unresolvable *apperr.Unresolvable
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &denied):
		c.JSON(http.StatusForbidden, gin.H{"error": denied.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.As(err, &unresolvable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": unresolvable.Error()})
	case errors.Is(err, userapp.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
