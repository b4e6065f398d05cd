package comment

import (
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/post"
	"sonet/internal/core/user"
)

type Comment struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	PostID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	Post      post.Post  `gorm:"foreignkey:PostID"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null"`
	User      user.User  `gorm:"foreignkey:UserID"`
	Body      string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
