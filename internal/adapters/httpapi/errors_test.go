package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sonet/internal/core/apperr"
	userapp "sonet/internal/core/user/service"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &apperr.NotFound{Entity: "post", ID: "p1"}, http.StatusNotFound},
		{"permission denied", &apperr.PermissionDenied{UserID: "u1", Resource: "post p1"}, http.StatusForbidden},
		{"conflict", &apperr.Conflict{Reason: "duplicate like"}, http.StatusConflict},
		{"unresolvable", &apperr.Unresolvable{UserID: "u1"}, http.StatusInternalServerError},
		{"invalid credentials", userapp.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrapped taxonomy error", fmt.Errorf("loading: %w", &apperr.NotFound{Entity: "post", ID: "p1"}), http.StatusNotFound},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
