package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	scheduleRepo "counselhub/database/repository/schedule"
	"counselhub/models"
	"counselhub/utils"

	"go.uber.org/zap"
)

const (
	dateLayout    = "2006-01-02"
	displayLayout = "January 2, 2006"
)

// patternByWeekday flattens the template list into a weekday lookup. Later
// entries for the same day win, matching the replace-or-append write path.
func patternByWeekday(availability []models.DayPattern) map[string][]string {
	m := make(map[string][]string, len(availability))
	for _, p := range availability {
		m[p.Day] = p.Slots
	}
	return m
}

// buildDay constructs a fresh AvailabilityDay with every slot open.
func buildDay(counselorID string, d time.Time, slotTimes []string) models.AvailabilityDay {
	times := append([]string(nil), slotTimes...)
	sort.Strings(times)

	slots := make([]models.Slot, len(times))
	for i, t := range times {
		slots[i] = models.Slot{Time: t, IsBooked: false}
	}
	return models.AvailabilityDay{
		CounselorID:    counselorID,
		Date:           d.Format(dateLayout),
		FormattedDate:  d.Format(displayLayout),
		DayOfWeek:      d.Weekday().String(),
		IsAvailable:    len(slots) > 0,
		Slots:          slots,
		AvailableSlots: len(slots),
		TotalSlots:     len(slots),
	}
}

// MaterializeWindow expands the counselor's weekly template into concrete day
// documents for every date from today through today + weeksAhead*7. Dates
// that already have a document are skipped untouched, so re-running over a
// materialized range changes nothing and template edits are not retroactive.
// Per-date failures are collected and the run continues.
func (s *DefaultScheduleService) MaterializeWindow(ctx context.Context, counselorID string, weeksAhead int) (*models.MaterializeReport, error) {
	logger := utils.GetLogger()

	if weeksAhead <= 0 {
		weeksAhead = defaultWeeks()
	}

	counselor, err := s.CounselorRepo.GetByID(ctx, counselorID)
	if err != nil {
		return nil, NewScheduleError(CodeCounselorNotFound, fmt.Sprintf("counselor %s not found", counselorID))
	}
	pattern := patternByWeekday(counselor.Availability)

	report := &models.MaterializeReport{CounselorID: counselorID}
	today := s.timeNow()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	for i := 0; i <= weeksAhead*7; i++ {
		d := start.AddDate(0, 0, i)
		slotTimes, ok := pattern[d.Weekday().String()]
		if !ok || len(slotTimes) == 0 {
			continue
		}

		day := buildDay(counselorID, d, slotTimes)
		created, err := s.Repo.InsertDayIfAbsent(ctx, day)
		if err != nil {
			logger.Error("failed to materialize date",
				zap.String("counselorID", counselorID),
				zap.String("date", day.Date), zap.Error(err))
			report.Failed = append(report.Failed, day.Date)
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", day.Date, err))
			continue
		}
		if created {
			report.Created = append(report.Created, day.Date)
		} else {
			report.Skipped = append(report.Skipped, day.Date)
		}
	}

	return report, nil
}

// RefreshDay force-rebuilds a single date from the current template: open
// slots are replaced by the pattern's times while booked slots are always
// preserved, even when their time no longer appears in the pattern. This is
// the operator escape hatch for the non-retroactive materializer.
func (s *DefaultScheduleService) RefreshDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, invalidInput("invalid date %q, expected YYYY-MM-DD", date)
	}

	counselor, err := s.CounselorRepo.GetByID(ctx, counselorID)
	if err != nil {
		return nil, NewScheduleError(CodeCounselorNotFound, fmt.Sprintf("counselor %s not found", counselorID))
	}
	pattern := patternByWeekday(counselor.Availability)
	slotTimes := pattern[d.Weekday().String()]

	existing, err := s.Repo.GetDay(ctx, counselorID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			// Nothing materialized yet; create the day fresh.
			if len(slotTimes) == 0 {
				return nil, NewScheduleError(CodeDayNotFound,
					fmt.Sprintf("no pattern entry for %s and no existing day %s", d.Weekday(), date))
			}
			day := buildDay(counselorID, d, slotTimes)
			if _, err := s.Repo.InsertDayIfAbsent(ctx, day); err != nil {
				return nil, fmt.Errorf("failed to create day %s: %w", date, err)
			}
			return &day, nil
		}
		return nil, err
	}

	merged := mergeSlots(existing.Slots, slotTimes)
	if err := s.Repo.ReplaceDaySlots(ctx, counselorID, date, merged); err != nil {
		return nil, fmt.Errorf("failed to refresh day %s: %w", date, err)
	}
	return s.Repo.GetDay(ctx, counselorID, date)
}

// mergeSlots unions the pattern's times with the currently booked slots.
// Booked slots keep their state and meet link; everything else comes back
// open, and open slots absent from the pattern are dropped.
func mergeSlots(existing []models.Slot, patternTimes []string) []models.Slot {
	booked := make(map[string]models.Slot)
	for _, s := range existing {
		if s.IsBooked {
			booked[s.Time] = s
		}
	}

	out := make([]models.Slot, 0, len(patternTimes)+len(booked))
	seen := make(map[string]bool)
	for _, t := range patternTimes {
		if b, ok := booked[t]; ok {
			out = append(out, b)
		} else {
			out = append(out, models.Slot{Time: t, IsBooked: false})
		}
		seen[t] = true
	}
	for t, b := range booked {
		if !seen[t] {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// GetDay fetches one materialized day.
func (s *DefaultScheduleService) GetDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, invalidInput("invalid date %q, expected YYYY-MM-DD", date)
	}
	day, err := s.Repo.GetDay(ctx, counselorID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			return nil, NewScheduleError(CodeDayNotFound, fmt.Sprintf("no availability for %s", date))
		}
		return nil, err
	}
	return day, nil
}

// ListDays returns the materialized days from today through the window end.
func (s *DefaultScheduleService) ListDays(ctx context.Context, counselorID string, weeksAhead int) ([]models.AvailabilityDay, error) {
	if weeksAhead <= 0 {
		weeksAhead = defaultWeeks()
	}
	today := s.timeNow()
	from := today.Format(dateLayout)
	to := today.AddDate(0, 0, weeksAhead*7).Format(dateLayout)
	return s.Repo.ListDays(ctx, counselorID, from, to)
}
