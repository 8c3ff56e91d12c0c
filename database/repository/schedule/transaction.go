// File: database/repository/schedule/transaction.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"counselhub/models"
)

// BookSlot flips the (date, time) slot to booked and appends the ledger entry
// on the counselor document inside a single transaction. The slot flip is a
// conditional write: it only matches while isBooked is still false, so two
// concurrent bookings for the same slot cannot both succeed.
func (repo *MongoScheduleRepo) BookSlot(ctx context.Context, counselorID string, entry models.BookedSlot) error {
	client := repo.dayColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		dayFilter := bson.M{
			"counselorId": counselorID,
			"date":        entry.Date,
			"slots": bson.M{
				"$elemMatch": bson.M{
					"time":     entry.Time,
					"isBooked": false,
				},
			},
		}
		dayUpdate := bson.M{
			"$set": bson.M{
				"slots.$.isBooked": true,
				"slots.$.meetLink": entry.MeetLink,
			},
			"$inc": bson.M{"availableSlots": -1},
		}

		res, err := repo.dayColl.UpdateOne(sc, dayFilter, dayUpdate)
		if err != nil {
			return fmt.Errorf("slot update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// Distinguish a missing day from an already-booked time.
			n, err := repo.dayColl.CountDocuments(sc, bson.M{"counselorId": counselorID, "date": entry.Date})
			if err == nil && n == 0 {
				return ErrDayNotFound
			}
			return ErrSlotUnavailable
		}

		ledgerUpdate := bson.M{
			"$push": bson.M{"bookedSlots": entry},
			"$inc":  bson.M{"sessionCount": 1},
		}
		ledgerRes, err := repo.counselorColl.UpdateOne(sc, bson.M{"id": counselorID}, ledgerUpdate)
		if err != nil {
			return fmt.Errorf("ledger append failed: %w", err)
		}
		if ledgerRes.MatchedCount == 0 {
			return ErrCounselorNotFound
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrDayNotFound) || errors.Is(err, ErrSlotUnavailable) || errors.Is(err, ErrCounselorNotFound) {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// CancelBooking is the mirror transaction: remove the ledger entry matching
// (date, time, userID) exactly, then reopen the slot. The ownership filter
// guarantees another user's booking is never pulled.
func (repo *MongoScheduleRepo) CancelBooking(ctx context.Context, counselorID, date, timeOfDay, userID string) error {
	client := repo.dayColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		ledgerFilter := bson.M{
			"id": counselorID,
			"bookedSlots": bson.M{
				"$elemMatch": bson.M{
					"date":   date,
					"time":   timeOfDay,
					"userId": userID,
				},
			},
		}
		ledgerUpdate := bson.M{
			"$pull": bson.M{"bookedSlots": bson.M{
				"date":   date,
				"time":   timeOfDay,
				"userId": userID,
			}},
		}

		res, err := repo.counselorColl.UpdateOne(sc, ledgerFilter, ledgerUpdate)
		if err != nil {
			return fmt.Errorf("ledger pull failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrBookingNotFound
		}

		dayFilter := bson.M{
			"counselorId": counselorID,
			"date":        date,
			"slots": bson.M{
				"$elemMatch": bson.M{
					"time":     timeOfDay,
					"isBooked": true,
				},
			},
		}
		dayUpdate := bson.M{
			"$set": bson.M{"slots.$.isBooked": false},
			"$unset": bson.M{
				"slots.$.meetLink": "",
			},
			"$inc": bson.M{"availableSlots": 1},
		}

		dayRes, err := repo.dayColl.UpdateOne(sc, dayFilter, dayUpdate)
		if err != nil {
			return fmt.Errorf("slot reopen failed: %w", err)
		}
		if dayRes.MatchedCount == 0 {
			return ErrBookingNotFound
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return err
		}
		return fmt.Errorf("cancel transaction failed: %w", err)
	}

	return nil
}
