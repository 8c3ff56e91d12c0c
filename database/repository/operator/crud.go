// File: database/repository/operator/crud.go
package operatorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"counselhub/models"
)

func (r *mongoOperatorRepo) Create(ctx context.Context, op *models.Operator) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	op.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, op); err != nil {
		return fmt.Errorf("error creating operator: %w", err)
	}
	return nil
}

func (r *mongoOperatorRepo) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var op models.Operator
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&op); err != nil {
		return nil, fmt.Errorf("error fetching operator %s: %w", id, err)
	}
	return &op, nil
}

func (r *mongoOperatorRepo) GetByEmail(ctx context.Context, email string) (*models.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var op models.Operator
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&op); err != nil {
		return nil, fmt.Errorf("error fetching operator by email: %w", err)
	}
	return &op, nil
}
