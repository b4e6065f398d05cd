package database

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/comment"
	"sonet/internal/ports/content"
)

func (s *ContentStoreDatabase) CreateComment(ctx context.Context, c *comment.Comment) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *ContentStoreDatabase) ListComments(ctx context.Context, postID uuid.UUID, page content.Page) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := s.db.WithContext(ctx).
		Where("post_id = ? AND deleted_at IS NULL", postID).
		Order("created_at ASC, id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *ContentStoreDatabase) SoftDeleteCommentsByPost(ctx context.Context, postID uuid.UUID, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&comment.Comment{}).
		Where("post_id = ? AND deleted_at IS NULL", postID).
		Update("deleted_at", at).Error
}
