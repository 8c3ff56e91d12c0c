// File: database/repository/counselor/interface.go
package counselorRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CounselorRepository provides access to counselor profile documents.
type CounselorRepository interface {
	Create(ctx context.Context, counselor *models.Counselor) error
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	GetByEmail(ctx context.Context, email string) (*models.Counselor, error)
	Update(ctx context.Context, counselor *models.Counselor) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int64) ([]models.Counselor, error)
	ListWithAvailability(ctx context.Context) ([]models.Counselor, error)
	SetAvailability(ctx context.Context, id string, availability []models.DayPattern) error
	Search(ctx context.Context, criteria models.CounselorSearchCriteria) ([]models.Counselor, error)
	Count(ctx context.Context) (int64, error)
	SumSessionCounts(ctx context.Context) (int64, error)
}

type mongoCounselorRepo struct {
	coll *mongo.Collection
}

// NewMongoCounselorRepo constructs a new MongoDB CounselorRepository.
func NewMongoCounselorRepo() CounselorRepository {
	r := &mongoCounselorRepo{
		coll: database.DB().Collection("counselors"),
	}
	r.ensureIndexes()
	return r
}
