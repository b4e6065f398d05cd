package alarm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/user"
)

type Kind string

const (
	KindNewLike    Kind = "NEW_LIKE_ON_POST"
	KindNewComment Kind = "NEW_COMMENT_ON_POST"
)

// Args identifies who triggered the alarm and which resource it is about.
// Stored as a JSON column so new alarm kinds can carry extra fields without
// a migration.
type Args struct {
	ActorUserID uuid.UUID `json:"actorUserId"`
	SubjectID   uuid.UUID `json:"subjectId"`
}

func (a Args) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Args) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported alarm args type %T", src)
	}
	return json.Unmarshal(raw, a)
}

// Alarm is a persisted notification addressed to the owner of the post the
// actor interacted with. It is written only by the engagement service, inside
// the same transaction as the like or comment that caused it.
type Alarm struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	User      user.User  `gorm:"foreignkey:UserID"`
	Kind      Kind       `gorm:"type:varchar(30);not null"`
	Args      Args       `gorm:"type:json"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
