package counselor

import (
	"context"

	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
)

// CounselorService manages counselor profiles.
type CounselorService interface {
	Create(ctx context.Context, counselor *models.Counselor) (*models.Counselor, error)
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	GetByEmail(ctx context.Context, email string) (*models.Counselor, error)
	Update(ctx context.Context, counselor *models.Counselor) (*models.Counselor, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int64) ([]models.Counselor, error)
	Search(ctx context.Context, criteria models.CounselorSearchCriteria) ([]models.Counselor, error)
	SetPhotoURL(ctx context.Context, id, photoURL string) error
}

// DefaultCounselorService is the production implementation.
type DefaultCounselorService struct {
	Repo counselorRepo.CounselorRepository
}
