// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (repo *MongoScheduleRepo) GetDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.AvailabilityDay
	filter := bson.M{"counselorId": counselorID, "date": date}
	if err := repo.dayColl.FindOne(ctx, filter).Decode(&day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("error fetching day %s for counselor %s: %w", date, counselorID, err)
	}
	return &day, nil
}

func (repo *MongoScheduleRepo) ListDays(ctx context.Context, counselorID, from, to string) ([]models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"counselorId": counselorID,
		"date":        bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := repo.dayColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing days for counselor %s: %w", counselorID, err)
	}
	defer cursor.Close(ctx)

	var days []models.AvailabilityDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding days: %w", err)
	}
	return days, nil
}

// InsertDayIfAbsent relies on the unique (counselorId, date) index: a
// duplicate-key error means the date was already materialized. That is not a
// failure; the existing document is left untouched.
func (repo *MongoScheduleRepo) InsertDayIfAbsent(ctx context.Context, day models.AvailabilityDay) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.dayColl.InsertOne(ctx, day); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting day %s for counselor %s: %w", day.Date, day.CounselorID, err)
	}
	return true, nil
}

// ReplaceDaySlots overwrites the slot list of an existing day document and
// recomputes its counters. Used by the operator-facing refresh operation.
func (repo *MongoScheduleRepo) ReplaceDaySlots(ctx context.Context, counselorID, date string, slots []models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	open := 0
	for _, s := range slots {
		if !s.IsBooked {
			open++
		}
	}

	filter := bson.M{"counselorId": counselorID, "date": date}
	update := bson.M{"$set": bson.M{
		"slots":          slots,
		"availableSlots": open,
		"totalSlots":     len(slots),
		"isAvailable":    len(slots) > 0,
	}}

	res, err := repo.dayColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error replacing slots for %s/%s: %w", counselorID, date, err)
	}
	if res.MatchedCount == 0 {
		return ErrDayNotFound
	}
	return nil
}

func (repo *MongoScheduleRepo) CountBookingsOn(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"bookedSlots": bson.M{"$elemMatch": bson.M{"date": date}}}
	cursor, err := repo.counselorColl.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$project", Value: bson.M{
			"count": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$bookedSlots",
				"as":    "b",
				"cond":  bson.M{"$eq": []interface{}{"$$b.date", date}},
			}}},
		}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$count"}}}},
	})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings on %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding booking count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// SumOpenSlots totals availableSlots across all counselors for the date range.
func (repo *MongoScheduleRepo) SumOpenSlots(ctx context.Context, from, to string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$availableSlots"}}}},
	}

	cursor, err := repo.dayColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error summing open slots: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding open slot sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
