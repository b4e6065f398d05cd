package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"sonet/internal/adapters/httpapi/middleware"
	"sonet/internal/ports/content"
)

// Inbound ports: what the controllers need from the use cases.

type UserUseCase interface {
	RegisterUser(ctx context.Context, handle, password string) (*content.UserDTO, error)
	LoginUser(ctx context.Context, handle, password string) (*content.LoginResponse, error)
}

type EngagementUseCase interface {
	CreatePost(ctx context.Context, title, body, authorID string) (*content.PostDTO, error)
	ModifyPost(ctx context.Context, postID, title, body, requesterID string) (*content.PostDTO, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	LikePost(ctx context.Context, postID, requesterID string) error
	CountLikes(ctx context.Context, postID string) (int64, error)
	CommentOnPost(ctx context.Context, postID, requesterID, text string) (*content.CommentDTO, error)
	ListComments(ctx context.Context, postID string, page content.Page) ([]*content.CommentDTO, error)
	ListFeed(ctx context.Context, page content.Page) ([]*content.PostDTO, error)
	ListMyFeed(ctx context.Context, ownerID string, page content.Page) ([]*content.PostDTO, error)
}

type AlarmUseCase interface {
	ListAlarms(ctx context.Context, recipientID string, page content.Page) ([]*content.AlarmDTO, error)
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(
	userUC UserUseCase,
	engagementUC EngagementUseCase,
	alarmUC AlarmUseCase,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(engagementUC)
	ac := NewAlarmController(alarmUC)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	auth := r.Group("/", middleware.JWTAuthMiddleware(jwtSecret))

	auth.POST("/posts", pc.CreatePost)
	auth.GET("/posts", pc.ListFeed)
	auth.GET("/posts/my", pc.ListMyFeed)
	auth.PUT("/posts/:postId", pc.ModifyPost)
	auth.DELETE("/posts/:postId", pc.DeletePost)
	auth.POST("/posts/:postId/likes", pc.LikePost)
	auth.GET("/posts/:postId/likes", pc.CountLikes)
	auth.POST("/posts/:postId/comments", pc.CommentOnPost)
	auth.GET("/posts/:postId/comments", pc.ListComments)

	auth.GET("/alarms", ac.ListAlarms)

	return r
}
