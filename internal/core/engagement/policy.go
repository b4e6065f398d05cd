// Package engagement holds the mutation rules for content owned by users.
package engagement

import (
	"github.com/gofrs/uuid"

	"sonet/internal/core/post"
)

// CanMutate reports whether the requester may modify or delete the post.
// Ownership is the only grant today; role-based grants (moderators) would be
// added here rather than in each operation.
func CanMutate(requesterID uuid.UUID, p *post.Post) bool {
	return p.UserID == requesterID
}
