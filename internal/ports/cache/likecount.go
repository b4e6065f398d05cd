package cache

import (
	"context"

	"github.com/gofrs/uuid"
)

// LikeCounts caches per-post like counts beside the primary store. A miss is
// not an error: Get reports it through ok. Invalidation failures are for the
// caller to log and ignore; the store count stays authoritative.
type LikeCounts interface {
	Get(ctx context.Context, postID uuid.UUID) (count int64, ok bool, err error)
	Set(ctx context.Context, postID uuid.UUID, count int64) error
	Invalidate(ctx context.Context, postID uuid.UUID) error
}
