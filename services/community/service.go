package community

import (
	"context"
	"fmt"
	"strings"

	communityRepo "counselhub/database/repository/community"
	"counselhub/models"
)

// CommunityService manages community posts and their chat messages.
type CommunityService interface {
	CreatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error)
	GetPost(ctx context.Context, id string) (*models.CommunityPost, error)
	ListPosts(ctx context.Context, limit, offset int64) ([]models.CommunityPost, error)
	DeletePost(ctx context.Context, id string) error
	AddMessage(ctx context.Context, msg *models.CommunityMessage) (*models.CommunityMessage, error)
	ListMessages(ctx context.Context, postID string, limit int64) ([]models.CommunityMessage, error)
}

// DefaultCommunityService is the production implementation.
type DefaultCommunityService struct {
	Repo communityRepo.CommunityRepository
}

func (s *DefaultCommunityService) CreatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error) {
	if strings.TrimSpace(post.Title) == "" {
		return nil, fmt.Errorf("post title is required")
	}
	if err := s.Repo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *DefaultCommunityService) GetPost(ctx context.Context, id string) (*models.CommunityPost, error) {
	post, err := s.Repo.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}
	return post, nil
}

func (s *DefaultCommunityService) ListPosts(ctx context.Context, limit, offset int64) ([]models.CommunityPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.ListPosts(ctx, limit, offset)
}

func (s *DefaultCommunityService) DeletePost(ctx context.Context, id string) error {
	if err := s.Repo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *DefaultCommunityService) AddMessage(ctx context.Context, msg *models.CommunityMessage) (*models.CommunityMessage, error) {
	if strings.TrimSpace(msg.Text) == "" {
		return nil, fmt.Errorf("message text is required")
	}
	// The parent post must exist; a message on a deleted post is a 404, not
	// an orphan row.
	if _, err := s.Repo.GetPost(ctx, msg.PostID); err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}
	if err := s.Repo.AddMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to add message: %w", err)
	}
	return msg, nil
}

func (s *DefaultCommunityService) ListMessages(ctx context.Context, postID string, limit int64) ([]models.CommunityMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	return s.Repo.ListMessages(ctx, postID, limit)
}
