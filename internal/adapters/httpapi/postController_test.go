package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeEngagement only implements what a test reaches; anything else panics.
type fakeEngagement struct {
	EngagementUseCase

	deleted []string
}

func (f *fakeEngagement) DeletePost(ctx context.Context, postID, requesterID string) error {
	f.deleted = append(f.deleted, postID)
	return nil
}

func newDeleteRouter(fake *fakeEngagement, contextUserID interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pc := NewPostController(fake)
	r.DELETE("/posts/:postId", func(c *gin.Context) {
		if contextUserID != nil {
			c.Set("userID", contextUserID)
		}
		pc.DeletePost(c)
	})
	return r
}

func TestRequesterID_NonStringContextValue(t *testing.T) {
	fake := &fakeEngagement{}
	r := newDeleteRouter(fake, 123)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/posts/p1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, fake.deleted)
}

func TestRequesterID_Missing(t *testing.T) {
	fake := &fakeEngagement{}
	r := newDeleteRouter(fake, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/posts/p1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, fake.deleted)
}

func TestRequesterID_Valid(t *testing.T) {
	fake := &fakeEngagement{}
	r := newDeleteRouter(fake, "user-123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/posts/p1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"p1"}, fake.deleted)
}
