// File: database/repository/counselor/queries.go
package counselorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (r *mongoCounselorRepo) List(ctx context.Context, limit, offset int64) ([]models.Counselor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing counselors: %w", err)
	}
	defer cursor.Close(ctx)

	var counselors []models.Counselor
	if err := cursor.All(ctx, &counselors); err != nil {
		return nil, fmt.Errorf("error decoding counselors: %w", err)
	}
	return counselors, nil
}

// ListWithAvailability returns counselors that have at least one weekly
// pattern entry. Used by the rolling-window extension job.
func (r *mongoCounselorRepo) ListWithAvailability(ctx context.Context) ([]models.Counselor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"availability": bson.M{"$exists": true, "$ne": bson.A{}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing counselors with availability: %w", err)
	}
	defer cursor.Close(ctx)

	var counselors []models.Counselor
	if err := cursor.All(ctx, &counselors); err != nil {
		return nil, fmt.Errorf("error decoding counselors: %w", err)
	}
	return counselors, nil
}

// Search filters counselors by a free-text query against name/specialty plus a
// minimum rating, sorted by rating then session count.
func (r *mongoCounselorRepo) Search(ctx context.Context, criteria models.CounselorSearchCriteria) ([]models.Counselor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var pipeline mongo.Pipeline

	matchFilter := bson.M{}
	if criteria.Query != "" {
		matchFilter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": criteria.Query, "$options": "i"}},
			bson.M{"specialty": bson.M{"$regex": criteria.Query, "$options": "i"}},
		}
	}
	if criteria.MinRating > 0 {
		matchFilter["rating"] = bson.M{"$gte": criteria.MinRating}
	}
	pipeline = append(pipeline, bson.D{{Key: "$match", Value: matchFilter}})

	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "rating", Value: -1},
		{Key: "sessionCount", Value: -1},
	}}})

	if criteria.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: criteria.Limit}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("counselor search aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var counselors []models.Counselor
	if err := cursor.All(ctx, &counselors); err != nil {
		return nil, fmt.Errorf("failed to decode counselors: %w", err)
	}
	return counselors, nil
}

func (r *mongoCounselorRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting counselors: %w", err)
	}
	return n, nil
}

// SumSessionCounts totals sessionCount across all counselors.
func (r *mongoCounselorRepo) SumSessionCounts(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$sessionCount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating session counts: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding session count aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
