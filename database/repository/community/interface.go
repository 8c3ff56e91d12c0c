// File: database/repository/community/interface.go
package communityRepo

import (
	"context"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CommunityRepository provides access to community posts and their messages.
type CommunityRepository interface {
	CreatePost(ctx context.Context, post *models.CommunityPost) error
	GetPost(ctx context.Context, id string) (*models.CommunityPost, error)
	ListPosts(ctx context.Context, limit, offset int64) ([]models.CommunityPost, error)
	DeletePost(ctx context.Context, id string) error
	AddMessage(ctx context.Context, msg *models.CommunityMessage) error
	ListMessages(ctx context.Context, postID string, limit int64) ([]models.CommunityMessage, error)
}

type mongoCommunityRepo struct {
	postColl    *mongo.Collection
	messageColl *mongo.Collection
}

// NewMongoCommunityRepo constructs a new MongoDB CommunityRepository.
func NewMongoCommunityRepo() CommunityRepository {
	db := database.DB()
	return &mongoCommunityRepo{
		postColl:    db.Collection("community_posts"),
		messageColl: db.Collection("community_messages"),
	}
}
