// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the availability_days collection relies
// on. The unique (counselorId, date) index is what makes materialization
// insert-if-absent: re-running over an existing date is a duplicate-key no-op.
func (repo *MongoScheduleRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "counselorId", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
	}

	if _, err := repo.dayColl.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("schedule indexes: %v", err)
	}
}
