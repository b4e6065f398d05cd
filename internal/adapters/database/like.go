package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"sonet/internal/core/apperr"
	"sonet/internal/core/like"
)

// CreateLike relies on the (user_id, post_id) unique index for dedup. Two
// concurrent likes for the same pair race to the insert; the loser gets a
// duplicate-key error, surfaced as Conflict.
func (s *ContentStoreDatabase) CreateLike(ctx context.Context, l *like.Like) error {
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperr.Conflict{
				Reason: fmt.Sprintf("user %s already liked post %s", l.UserID, l.PostID),
			}
		}
		return err
	}
	return nil
}

func (s *ContentStoreDatabase) HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&like.Like{}).
		Where("post_id = ? AND user_id = ? AND deleted_at IS NULL", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ContentStoreDatabase) CountLikes(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&like.Like{}).
		Where("post_id = ? AND deleted_at IS NULL", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *ContentStoreDatabase) SoftDeleteLikesByPost(ctx context.Context, postID uuid.UUID, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&like.Like{}).
		Where("post_id = ? AND deleted_at IS NULL", postID).
		Update("deleted_at", at).Error
}
