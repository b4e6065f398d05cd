// Package engagementapp implements the engagement use cases: it is the sole
// writer of post, comment, like and alarm state. Each mutating operation runs
// inside one store transaction, including the alarms it emits.
package engagementapp

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"sonet/internal/core/alarm"
	"sonet/internal/core/apperr"
	"sonet/internal/core/comment"
	"sonet/internal/core/engagement"
	"sonet/internal/core/like"
	"sonet/internal/core/post"
	"sonet/internal/ports/cache"
	"sonet/internal/ports/content"
)

type EngagementService struct {
	store      content.Store
	likeCounts cache.LikeCounts
	logger     *zap.Logger
}

func NewEngagementService(store content.Store, likeCounts cache.LikeCounts, logger *zap.Logger) *EngagementService {
	return &EngagementService{
		store:      store,
		likeCounts: likeCounts,
		logger:     logger,
	}
}

// CreatePost creates a post owned by the author. Being authenticated is the
// only requirement, but the author must still resolve to a live user.
func (s *EngagementService) CreatePost(ctx context.Context, title, body, authorID string) (*content.PostDTO, error) {
	uid, err := parseUserID(authorID)
	if err != nil {
		return nil, err
	}

	author, err := s.store.FindUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	p := &post.Post{
		ID:     uuid.Must(uuid.NewV4()),
		Title:  title,
		Body:   body,
		UserID: author.ID,
	}
	if err := s.store.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return toPostDTO(p), nil
}

// ModifyPost replaces title and body. Only the owner may modify; the whole
// replacement either happens or the post is untouched.
func (s *EngagementService) ModifyPost(ctx context.Context, postID, title, body, requesterID string) (*content.PostDTO, error) {
	pid, uid, err := parseIDs(postID, requesterID)
	if err != nil {
		return nil, err
	}

	var updated *post.Post
	err = s.store.WithTx(ctx, func(tx content.Store) error {
		p, err := tx.FindPostByID(ctx, pid)
		if err != nil {
			return err
		}
		if !engagement.CanMutate(uid, p) {
			s.logger.Warn("rejected post modification",
				zap.String("postID", postID), zap.String("requesterID", requesterID))
			return &apperr.PermissionDenied{UserID: requesterID, Resource: "post " + postID}
		}

		p.Title = title
		p.Body = body
		p.UpdatedAt = time.Now()
		if err := tx.SavePost(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPostDTO(updated), nil
}

// DeletePost soft-deletes the post and cascades to its live likes and
// comments in the same transaction, so readers never see a half-deleted post.
func (s *EngagementService) DeletePost(ctx context.Context, postID, requesterID string) error {
	pid, uid, err := parseIDs(postID, requesterID)
	if err != nil {
		return err
	}

	err = s.store.WithTx(ctx, func(tx content.Store) error {
		p, err := tx.FindPostByID(ctx, pid)
		if err != nil {
			return err
		}
		if !engagement.CanMutate(uid, p) {
			s.logger.Warn("rejected post deletion",
				zap.String("postID", postID), zap.String("requesterID", requesterID))
			return &apperr.PermissionDenied{UserID: requesterID, Resource: "post " + postID}
		}

		now := time.Now()
		if err := tx.SoftDeleteLikesByPost(ctx, pid, now); err != nil {
			return err
		}
		if err := tx.SoftDeleteCommentsByPost(ctx, pid, now); err != nil {
			return err
		}
		return tx.SoftDeletePost(ctx, pid, now)
	})
	if err != nil {
		return err
	}

	s.invalidateLikeCount(ctx, pid)
	return nil
}

// LikePost records one like per (user, post) pair and alarms the post owner.
// The store's unique index decides the duplicate case; the HasLike read only
// gives a friendlier path for the common retry.
func (s *EngagementService) LikePost(ctx context.Context, postID, requesterID string) error {
	pid, uid, err := parseIDs(postID, requesterID)
	if err != nil {
		return err
	}

	err = s.store.WithTx(ctx, func(tx content.Store) error {
		p, err := tx.FindPostByID(ctx, pid)
		if err != nil {
			return err
		}

		liked, err := tx.HasLike(ctx, pid, uid)
		if err != nil {
			return err
		}
		if liked {
			return &apperr.Conflict{Reason: fmt.Sprintf("user %s already liked post %s", requesterID, postID)}
		}

		l := &like.Like{
			ID:     uuid.Must(uuid.NewV4()),
			PostID: pid,
			UserID: uid,
		}
		if err := tx.CreateLike(ctx, l); err != nil {
			return err
		}

		return applyEffects(ctx, tx, alarmFor(p, alarm.KindNewLike, uid))
	})
	if err != nil {
		return err
	}

	s.invalidateLikeCount(ctx, pid)
	return nil
}

// CountLikes returns the number of live likes, read through the cache.
func (s *EngagementService) CountLikes(ctx context.Context, postID string) (int64, error) {
	pid, err := parsePostID(postID)
	if err != nil {
		return 0, err
	}

	if _, err := s.store.FindPostByID(ctx, pid); err != nil {
		return 0, err
	}

	if count, ok, err := s.likeCounts.Get(ctx, pid); err == nil && ok {
		return count, nil
	} else if err != nil {
		s.logger.Warn("like count cache read failed", zap.String("postID", postID), zap.Error(err))
	}

	count, err := s.store.CountLikes(ctx, pid)
	if err != nil {
		return 0, err
	}
	if err := s.likeCounts.Set(ctx, pid, count); err != nil {
		s.logger.Warn("like count cache write failed", zap.String("postID", postID), zap.Error(err))
	}
	return count, nil
}

// CommentOnPost adds a comment to a live post and alarms the post owner.
func (s *EngagementService) CommentOnPost(ctx context.Context, postID, requesterID, text string) (*content.CommentDTO, error) {
	pid, uid, err := parseIDs(postID, requesterID)
	if err != nil {
		return nil, err
	}

	var created *comment.Comment
	err = s.store.WithTx(ctx, func(tx content.Store) error {
		p, err := tx.FindPostByID(ctx, pid)
		if err != nil {
			return err
		}

		c := &comment.Comment{
			ID:     uuid.Must(uuid.NewV4()),
			PostID: pid,
			UserID: uid,
			Body:   text,
		}
		if err := tx.CreateComment(ctx, c); err != nil {
			return err
		}
		created = c

		return applyEffects(ctx, tx, alarmFor(p, alarm.KindNewComment, uid))
	})
	if err != nil {
		return nil, err
	}

	return toCommentDTO(created), nil
}

// ListComments returns a page of live comments on the post, oldest first.
func (s *EngagementService) ListComments(ctx context.Context, postID string, page content.Page) ([]*content.CommentDTO, error) {
	pid, err := parsePostID(postID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.FindPostByID(ctx, pid); err != nil {
		return nil, err
	}

	comments, err := s.store.ListComments(ctx, pid, page.Normalize())
	if err != nil {
		return nil, err
	}

	dtos := make([]*content.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return dtos, nil
}

// ListFeed returns a page of all live posts, newest first.
func (s *EngagementService) ListFeed(ctx context.Context, page content.Page) ([]*content.PostDTO, error) {
	posts, err := s.store.ListPosts(ctx, page.Normalize())
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

// ListMyFeed returns a page of live posts owned by one user, newest first.
func (s *EngagementService) ListMyFeed(ctx context.Context, ownerID string, page content.Page) ([]*content.PostDTO, error) {
	uid, err := parseUserID(ownerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.store.ListPostsByOwner(ctx, uid, page.Normalize())
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

// alarmFor builds the deferred alarm a like or comment owes the post owner.
// The owner gets alarmed even when acting on their own post.
func alarmFor(p *post.Post, kind alarm.Kind, actorID uuid.UUID) []*alarm.Alarm {
	return []*alarm.Alarm{{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: p.UserID,
		Kind:   kind,
		Args: alarm.Args{
			ActorUserID: actorID,
			SubjectID:   p.ID,
		},
	}}
}

// applyEffects writes the deferred alarms on the same transaction as the
// mutation that produced them.
func applyEffects(ctx context.Context, tx content.Store, effects []*alarm.Alarm) error {
	for _, a := range effects {
		if err := tx.CreateAlarm(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *EngagementService) invalidateLikeCount(ctx context.Context, postID uuid.UUID) {
	if err := s.likeCounts.Invalidate(ctx, postID); err != nil {
		s.logger.Warn("like count cache invalidation failed",
			zap.String("postID", postID.String()), zap.Error(err))
	}
}

func parsePostID(postID string) (uuid.UUID, error) {
	pid, err := uuid.FromString(postID)
	if err != nil {
		return uuid.Nil, &apperr.NotFound{Entity: "post", ID: postID}
	}
	return pid, nil
}

func parseUserID(userID string) (uuid.UUID, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return uuid.Nil, &apperr.Unresolvable{UserID: userID}
	}
	return uid, nil
}

func parseIDs(postID, requesterID string) (uuid.UUID, uuid.UUID, error) {
	pid, err := parsePostID(postID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	uid, err := parseUserID(requesterID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return pid, uid, nil
}

func toPostDTO(p *post.Post) *content.PostDTO {
	dto := &content.PostDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID.String(),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.User.ID != uuid.Nil {
		dto.User = &content.UserDTO{
			ID:     p.User.ID.String(),
			Handle: p.User.Handle,
			Role:   string(p.User.Role),
		}
	}
	return dto
}

func toPostDTOs(posts []*post.Post) []*content.PostDTO {
	dtos := make([]*content.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}
	return dtos
}

func toCommentDTO(c *comment.Comment) *content.CommentDTO {
	return &content.CommentDTO{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		UserID:    c.UserID.String(),
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
