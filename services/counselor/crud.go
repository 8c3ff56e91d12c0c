package counselor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/utils"
)

const profileCacheTTL = 10 * time.Minute

func profileCacheKey(id string) string {
	return "counselor:profile:" + id
}

func (s *DefaultCounselorService) Create(ctx context.Context, c *models.Counselor) (*models.Counselor, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return nil, fmt.Errorf("counselor name and email are required")
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create counselor: %w", err)
	}
	return c, nil
}

// GetByID serves from the Redis profile cache when possible.
func (s *DefaultCounselorService) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	logger := utils.GetLogger()
	cache := utils.GetCacheClient()

	if raw, err := cache.Get(ctx, profileCacheKey(id)).Result(); err == nil {
		var cached models.Counselor
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	counselor, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("counselor not found: %w", err)
	}

	if raw, err := json.Marshal(counselor); err == nil {
		if err := cache.Set(ctx, profileCacheKey(id), raw, profileCacheTTL).Err(); err != nil {
			logger.Debug("profile cache set failed", zap.String("id", id), zap.Error(err))
		}
	}
	return counselor, nil
}

func (s *DefaultCounselorService) GetByEmail(ctx context.Context, email string) (*models.Counselor, error) {
	counselor, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("counselor not found: %w", err)
	}
	return counselor, nil
}

func (s *DefaultCounselorService) Update(ctx context.Context, c *models.Counselor) (*models.Counselor, error) {
	existing, err := s.Repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("counselor not found: %w", err)
	}

	// Profile edits never touch the booking ledger or availability; those go
	// through the schedule service.
	c.Availability = existing.Availability
	c.BookedSlots = existing.BookedSlots
	c.SessionCount = existing.SessionCount
	c.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update counselor: %w", err)
	}
	s.InvalidateProfile(ctx, c.ID)
	return c, nil
}

func (s *DefaultCounselorService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete counselor: %w", err)
	}
	s.InvalidateProfile(ctx, id)
	return nil
}

func (s *DefaultCounselorService) List(ctx context.Context, limit, offset int64) ([]models.Counselor, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *DefaultCounselorService) Search(ctx context.Context, criteria models.CounselorSearchCriteria) ([]models.Counselor, error) {
	if criteria.Limit <= 0 || criteria.Limit > 100 {
		criteria.Limit = 50
	}
	return s.Repo.Search(ctx, criteria)
}

func (s *DefaultCounselorService) SetPhotoURL(ctx context.Context, id, photoURL string) error {
	counselor, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("counselor not found: %w", err)
	}
	counselor.PhotoURL = photoURL
	if err := s.Repo.Update(ctx, counselor); err != nil {
		return fmt.Errorf("failed to save photo URL: %w", err)
	}
	s.InvalidateProfile(ctx, id)
	return nil
}

// InvalidateProfile drops the cached profile so the next read hits Mongo.
// The schedule service calls this after booking and availability writes,
// which touch the counselor document without going through this service.
func (s *DefaultCounselorService) InvalidateProfile(ctx context.Context, id string) {
	if err := utils.GetCacheClient().Del(ctx, profileCacheKey(id)).Err(); err != nil {
		utils.GetLogger().Debug("profile cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}
