package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	counselorRepo "counselhub/database/repository/counselor"
	scheduleRepo "counselhub/database/repository/schedule"
	"counselhub/models"
	"counselhub/utils"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 5 * time.Minute
)

// DashboardService computes the console's landing-page aggregates.
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultDashboardService aggregates over Mongo with a short Redis cache.
type DefaultDashboardService struct {
	CounselorRepo counselorRepo.CounselorRepository
	ScheduleRepo  scheduleRepo.ScheduleRepository
}

func (s *DefaultDashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	logger := utils.GetLogger()
	cache := utils.GetCacheClient()

	if raw, err := cache.Get(ctx, statsCacheKey).Result(); err == nil {
		var cached models.DashboardStats
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 7).Format("2006-01-02")

	stats := &models.DashboardStats{}
	var err error

	if stats.Counselors, err = s.CounselorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSessions, err = s.CounselorRepo.SumSessionCounts(ctx); err != nil {
		return nil, err
	}
	if stats.BookingsToday, err = s.ScheduleRepo.CountBookingsOn(ctx, today); err != nil {
		return nil, err
	}
	if stats.OpenSlotsWeek, err = s.ScheduleRepo.SumOpenSlots(ctx, today, weekEnd); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
			logger.Debug("stats cache set failed", zap.Error(err))
		}
	}
	return stats, nil
}
