package schedule

import (
	"context"
	"time"

	"counselhub/config"
	counselorRepo "counselhub/database/repository/counselor"
	scheduleRepo "counselhub/database/repository/schedule"
	"counselhub/models"
	"counselhub/services/notification"
)

// DefaultMaterializeWeeks is the rolling look-ahead window used when neither
// the caller nor the configuration specifies one.
const DefaultMaterializeWeeks = 4

// defaultWeeks resolves the window to use when a caller passes zero:
// MATERIALIZE_WEEKS from configuration, falling back to the built-in default.
func defaultWeeks() int {
	if w := config.AppConfig.MaterializeWeeks; w > 0 {
		return w
	}
	return DefaultMaterializeWeeks
}

// ScheduleService owns the availability pattern store, the per-date slot
// materializer, and the booking ledger.
type ScheduleService interface {
	// Pattern store.
	UpdateAvailability(ctx context.Context, counselorID, day string, slots []string) (*models.MaterializeReport, error)
	GetAvailability(ctx context.Context, counselorID string) ([]models.DayPattern, error)

	// Materializer.
	MaterializeWindow(ctx context.Context, counselorID string, weeksAhead int) (*models.MaterializeReport, error)
	RefreshDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error)
	GetDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error)
	ListDays(ctx context.Context, counselorID string, weeksAhead int) ([]models.AvailabilityDay, error)

	// Booking ledger.
	BookSlot(ctx context.Context, counselorID string, req models.BookSlotRequest) (string, error)
	CancelBooking(ctx context.Context, counselorID string, req models.CancelBookingRequest) error
}

// ReminderScheduler enqueues a session reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, at time.Time) error
}

// ProfileCacheInvalidator drops a counselor's cached profile after a write.
// Booking and availability updates mutate the counselor document without
// going through the counselor service, so they must evict its cache entry
// themselves or profile reads serve a stale ledger until the TTL expires.
type ProfileCacheInvalidator interface {
	InvalidateProfile(ctx context.Context, counselorID string)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo          scheduleRepo.ScheduleRepository
	CounselorRepo counselorRepo.CounselorRepository
	Notifier      notification.NotificationService // optional
	Reminders     ReminderScheduler                // optional
	ProfileCache  ProfileCacheInvalidator          // optional

	// Now is overridable for deterministic window computation in tests;
	// time.Now when nil.
	Now func() time.Time
}

func (s *DefaultScheduleService) timeNow() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultScheduleService) invalidateProfile(ctx context.Context, counselorID string) {
	if s.ProfileCache != nil {
		s.ProfileCache.InvalidateProfile(ctx, counselorID)
	}
}
