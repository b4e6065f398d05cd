package content

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/alarm"
	"sonet/internal/core/comment"
	"sonet/internal/core/like"
	"sonet/internal/core/post"
	"sonet/internal/core/user"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is an offset/limit descriptor. Every listing applies a fixed total
// order (documented per method), so the same page with no intervening writes
// returns the same rows.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the descriptor to sane bounds.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Store is the persistence boundary for users, posts, comments, likes and
// alarms. Liveness is an explicit predicate: every read excludes rows with a
// deletion timestamp, every soft delete only stamps one. Find methods return
// *apperr.NotFound when no live row matches.
//
// WithTx runs fn against a store bound to one transaction; all writes made
// through that store commit together or not at all.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error

	CreateUser(ctx context.Context, u *user.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindUserByHandle(ctx context.Context, handle string) (*user.User, error)

	CreatePost(ctx context.Context, p *post.Post) error
	FindPostByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	SavePost(ctx context.Context, p *post.Post) error
	SoftDeletePost(ctx context.Context, id uuid.UUID, at time.Time) error
	// ListPosts orders by created_at DESC, id DESC.
	ListPosts(ctx context.Context, page Page) ([]*post.Post, error)
	ListPostsByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*post.Post, error)

	CreateComment(ctx context.Context, c *comment.Comment) error
	// ListComments orders by created_at ASC, id ASC.
	ListComments(ctx context.Context, postID uuid.UUID, page Page) ([]*comment.Comment, error)
	SoftDeleteCommentsByPost(ctx context.Context, postID uuid.UUID, at time.Time) error

	// CreateLike returns *apperr.Conflict when a like for the same
	// (user, post) pair already exists; the store-level unique index is the
	// authority, not a prior read.
	CreateLike(ctx context.Context, l *like.Like) error
	HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, postID uuid.UUID) (int64, error)
	SoftDeleteLikesByPost(ctx context.Context, postID uuid.UUID, at time.Time) error

	CreateAlarm(ctx context.Context, a *alarm.Alarm) error
	// ListAlarmsByRecipient orders by created_at DESC, id DESC.
	ListAlarmsByRecipient(ctx context.Context, userID uuid.UUID, page Page) ([]*alarm.Alarm, error)
}
