package user

import (
	"time"

	"github.com/gofrs/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	Handle    string     `gorm:"unique;not null"`
	Password  string     `gorm:"not null"`
	Role      Role       `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
