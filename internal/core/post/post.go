package post

import (
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/user"
)

type Post struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	Title     string     `gorm:"not null"`
	Body      string     `gorm:"type:text;not null"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	User      user.User  `gorm:"foreignkey:UserID"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
