package like

import (
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/post"
	"sonet/internal/core/user"
)

// Like rows are only soft-deleted by the post-delete cascade, and a deleted
// post is terminal, so the composite unique index can safely cover dead rows
// too. The index is the source of truth for like dedup under concurrency.
type Like struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	PostID    uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_user_post"`
	Post      post.Post  `gorm:"foreignkey:PostID"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_user_post"`
	User      user.User  `gorm:"foreignkey:UserID"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
