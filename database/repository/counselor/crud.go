// File: database/repository/counselor/crud.go
package counselorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"counselhub/models"
)

func (r *mongoCounselorRepo) Create(ctx context.Context, counselor *models.Counselor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if counselor.ID == "" {
		counselor.ID = uuid.New().String()
	}
	now := time.Now()
	counselor.CreatedAt = now
	counselor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, counselor); err != nil {
		return fmt.Errorf("error creating counselor: %w", err)
	}
	return nil
}

func (r *mongoCounselorRepo) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var counselor models.Counselor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&counselor); err != nil {
		return nil, fmt.Errorf("error fetching counselor with id %s: %w", id, err)
	}
	return &counselor, nil
}

func (r *mongoCounselorRepo) GetByEmail(ctx context.Context, email string) (*models.Counselor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var counselor models.Counselor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&counselor); err != nil {
		return nil, fmt.Errorf("error fetching counselor with email %s: %w", email, err)
	}
	return &counselor, nil
}

func (r *mongoCounselorRepo) Update(ctx context.Context, counselor *models.Counselor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	counselor.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": counselor.ID}, counselor)
	if err != nil {
		return fmt.Errorf("error updating counselor %s: %w", counselor.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCounselorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting counselor %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCounselorRepo) SetAvailability(ctx context.Context, id string, availability []models.DayPattern) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"availability": availability,
		"updatedAt":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error setting availability for counselor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
