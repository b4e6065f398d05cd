package database

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"sonet/internal/core/post"
	"sonet/internal/ports/content"
)

func (s *ContentStoreDatabase) CreatePost(ctx context.Context, p *post.Post) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ContentStoreDatabase) FindPostByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&p).Error; err != nil {
		return nil, notFound(err, "post", id.String())
	}
	return &p, nil
}

func (s *ContentStoreDatabase) SavePost(ctx context.Context, p *post.Post) error {
	return s.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ? AND deleted_at IS NULL", p.ID).
		Updates(map[string]interface{}{
			"title":      p.Title,
			"body":       p.Body,
			"updated_at": p.UpdatedAt,
		}).Error
}

func (s *ContentStoreDatabase) SoftDeletePost(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at).Error
}

func (s *ContentStoreDatabase) ListPosts(ctx context.Context, page content.Page) ([]*post.Post, error) {
	var posts []*post.Post
	if err := s.db.WithContext(ctx).
		Preload("User").
		Where("deleted_at IS NULL").
		Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *ContentStoreDatabase) ListPostsByOwner(ctx context.Context, ownerID uuid.UUID, page content.Page) ([]*post.Post, error) {
	var posts []*post.Post
	if err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND deleted_at IS NULL", ownerID).
		Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
