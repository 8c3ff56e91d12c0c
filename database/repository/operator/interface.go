// File: database/repository/operator/interface.go
package operatorRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OperatorRepository provides access to console operator accounts.
type OperatorRepository interface {
	Create(ctx context.Context, op *models.Operator) error
	GetByID(ctx context.Context, id string) (*models.Operator, error)
	GetByEmail(ctx context.Context, email string) (*models.Operator, error)
}

type mongoOperatorRepo struct {
	coll *mongo.Collection
}

// NewMongoOperatorRepo constructs a new MongoDB OperatorRepository.
func NewMongoOperatorRepo() OperatorRepository {
	return &mongoOperatorRepo{
		coll: database.DB().Collection("operators"),
	}
}
