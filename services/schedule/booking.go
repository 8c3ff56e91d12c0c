package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	scheduleRepo "counselhub/database/repository/schedule"
	"counselhub/models"
	"counselhub/utils"
)

// synthesizeMeetLink generates the placeholder meeting URL stored with a
// booking. There is no calendar integration behind it.
func synthesizeMeetLink() string {
	return fmt.Sprintf("https://meet.counselhub.app/session/%s", uuid.New().String())
}

// BookSlot reserves the (date, time) slot for the user and returns the meet
// link. The slot flip and the ledger append commit in one transaction; a slot
// that is already booked (or a date that was never materialized) fails
// without mutating anything.
func (s *DefaultScheduleService) BookSlot(ctx context.Context, counselorID string, req models.BookSlotRequest) (string, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return "", invalidInput("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return "", invalidInput("invalid time %q, expected HH:MM", req.Time)
	}

	entry := models.BookedSlot{
		Date:     req.Date,
		Time:     req.Time,
		UserID:   req.UserID,
		UserName: req.UserName,
		Status:   "confirmed",
		MeetLink: synthesizeMeetLink(),
	}

	if err := s.Repo.BookSlot(ctx, counselorID, entry); err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrDayNotFound):
			return "", NewScheduleError(CodeSlotUnavailable, fmt.Sprintf("no availability for %s", req.Date))
		case errors.Is(err, scheduleRepo.ErrSlotUnavailable):
			return "", NewScheduleError(CodeSlotUnavailable, fmt.Sprintf("slot %s on %s is unavailable", req.Time, req.Date))
		case errors.Is(err, scheduleRepo.ErrCounselorNotFound):
			return "", NewScheduleError(CodeCounselorNotFound, fmt.Sprintf("counselor %s not found", counselorID))
		default:
			return "", fmt.Errorf("booking failed: %w", err)
		}
	}

	// The transaction appended to the counselor's ledger; a cached profile
	// would miss the new entry.
	s.invalidateProfile(ctx, counselorID)

	s.notifyCounselor(ctx, counselorID,
		"New booking",
		fmt.Sprintf("%s booked %s at %s", req.UserName, req.Date, req.Time))

	s.scheduleReminder(ctx, counselorID, entry)

	logger.Info("slot booked",
		zap.String("counselorID", counselorID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.String("userID", req.UserID))

	return entry.MeetLink, nil
}

// CancelBooking releases a previously booked slot. The ledger entry must
// match (date, time, userId) exactly, so a cancel can never remove another
// user's booking.
func (s *DefaultScheduleService) CancelBooking(ctx context.Context, counselorID string, req models.CancelBookingRequest) error {
	logger := utils.GetLogger()

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return invalidInput("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return invalidInput("invalid time %q, expected HH:MM", req.Time)
	}

	if err := s.Repo.CancelBooking(ctx, counselorID, req.Date, req.Time, req.UserID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBookingNotFound) {
			return NewScheduleError(CodeBookingNotFound,
				fmt.Sprintf("no booking for %s at %s by user %s", req.Date, req.Time, req.UserID))
		}
		return fmt.Errorf("cancellation failed: %w", err)
	}

	s.invalidateProfile(ctx, counselorID)

	s.notifyCounselor(ctx, counselorID,
		"Booking cancelled",
		fmt.Sprintf("The %s session on %s was cancelled", req.Time, req.Date))

	logger.Info("booking cancelled",
		zap.String("counselorID", counselorID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.String("userID", req.UserID))

	return nil
}

// notifyCounselor delivers a push to the counselor's device. Best-effort:
// delivery failure never fails the booking.
func (s *DefaultScheduleService) notifyCounselor(ctx context.Context, counselorID, title, body string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendCounselorPush(ctx, counselorID, title, body, nil); err != nil {
		utils.GetLogger().Warn("push notification failed",
			zap.String("counselorID", counselorID), zap.Error(err))
	}
}

// scheduleReminder enqueues a session reminder one hour before the slot.
func (s *DefaultScheduleService) scheduleReminder(ctx context.Context, counselorID string, entry models.BookedSlot) {
	if s.Reminders == nil {
		return
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", entry.Date+" "+entry.Time, time.Local)
	if err != nil {
		return
	}
	payload := models.ReminderPayload{
		CounselorID: counselorID,
		Date:        entry.Date,
		Time:        entry.Time,
		UserName:    entry.UserName,
		Title:       "Upcoming session",
		Body:        fmt.Sprintf("Session with %s at %s", entry.UserName, entry.Time),
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, at.Add(-time.Hour)); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("counselorID", counselorID), zap.Error(err))
	}
}
