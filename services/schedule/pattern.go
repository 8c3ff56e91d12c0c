package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"counselhub/models"
	"counselhub/utils"

	"go.uber.org/zap"
)

var weekdayNames = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// validateSlots checks HH:MM syntax and rejects duplicates, returning the
// slots sorted ascending.
func validateSlots(slots []string) ([]string, error) {
	seen := make(map[string]bool, len(slots))
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, err := time.Parse("15:04", s); err != nil {
			return nil, invalidInput("invalid time slot %q, expected HH:MM", s)
		}
		if seen[s] {
			return nil, invalidInput("duplicate time slot %q", s)
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// UpdateAvailability replaces (or appends) the weekly template entry for the
// given day, persists it, then materializes the rolling window so the new
// pattern shows up on future dates. The pattern save and the materialization
// are separate writes: if materialization partially fails the saved pattern is
// kept and the failures are reported, not rolled back.
func (s *DefaultScheduleService) UpdateAvailability(ctx context.Context, counselorID, day string, slots []string) (*models.MaterializeReport, error) {
	logger := utils.GetLogger()

	if !weekdayNames[day] {
		return nil, invalidInput("invalid day name %q", day)
	}
	clean, err := validateSlots(slots)
	if err != nil {
		return nil, err
	}

	counselor, err := s.CounselorRepo.GetByID(ctx, counselorID)
	if err != nil {
		return nil, NewScheduleError(CodeCounselorNotFound, fmt.Sprintf("counselor %s not found", counselorID))
	}

	replaced := false
	for i := range counselor.Availability {
		if counselor.Availability[i].Day == day {
			counselor.Availability[i].Slots = clean
			replaced = true
			break
		}
	}
	if !replaced {
		counselor.Availability = append(counselor.Availability, models.DayPattern{Day: day, Slots: clean})
	}

	if err := s.CounselorRepo.SetAvailability(ctx, counselorID, counselor.Availability); err != nil {
		return nil, fmt.Errorf("failed to save availability pattern: %w", err)
	}
	s.invalidateProfile(ctx, counselorID)

	report, err := s.MaterializeWindow(ctx, counselorID, 0)
	if err != nil {
		// Pattern is saved; surface the materialization failure to the caller.
		logger.Error("materialization after pattern update failed",
			zap.String("counselorID", counselorID), zap.Error(err))
		return nil, fmt.Errorf("pattern saved but materialization failed: %w", err)
	}
	if len(report.Failed) > 0 {
		logger.Warn("materialization completed with per-date failures",
			zap.String("counselorID", counselorID),
			zap.Strings("failed", report.Failed))
	}
	return report, nil
}

// GetAvailability returns the counselor's weekly template.
func (s *DefaultScheduleService) GetAvailability(ctx context.Context, counselorID string) ([]models.DayPattern, error) {
	counselor, err := s.CounselorRepo.GetByID(ctx, counselorID)
	if err != nil {
		return nil, NewScheduleError(CodeCounselorNotFound, fmt.Sprintf("counselor %s not found", counselorID))
	}
	return counselor.Availability, nil
}
