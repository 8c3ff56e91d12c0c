// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced by conditional writes. The service layer maps
// these onto its user-facing error taxonomy.
var (
	ErrDayNotFound       = errors.New("availability day not found")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrCounselorNotFound = errors.New("counselor not found")
)

// ScheduleRepository provides access to per-date availability documents and
// the transactional booking writes that keep them in lockstep with the
// counselor's booking ledger.
type ScheduleRepository interface {
	GetDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error)
	ListDays(ctx context.Context, counselorID, from, to string) ([]models.AvailabilityDay, error)
	// InsertDayIfAbsent creates the day document unless one already exists for
	// (counselorID, date). Returns false when the document was already there.
	InsertDayIfAbsent(ctx context.Context, day models.AvailabilityDay) (bool, error)
	ReplaceDaySlots(ctx context.Context, counselorID, date string, slots []models.Slot) error
	// BookSlot atomically flips the slot to booked and appends the ledger
	// entry on the counselor document in one transaction.
	BookSlot(ctx context.Context, counselorID string, entry models.BookedSlot) error
	// CancelBooking atomically removes the ledger entry matching
	// (date, time, userID) and reopens the slot.
	CancelBooking(ctx context.Context, counselorID, date, timeOfDay, userID string) error
	CountBookingsOn(ctx context.Context, date string) (int64, error)
	SumOpenSlots(ctx context.Context, from, to string) (int64, error)
}

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	dayColl       *mongo.Collection
	counselorColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	r := &MongoScheduleRepo{
		dayColl:       db.Collection("availability_days"),
		counselorColl: db.Collection("counselors"),
	}
	r.ensureIndexes()
	return r
}
