// File: database/repository/community/crud.go
package communityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselhub/models"
)

func (r *mongoCommunityRepo) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	if _, err := r.postColl.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

func (r *mongoCommunityRepo) GetPost(ctx context.Context, id string) (*models.CommunityPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var post models.CommunityPost
	if err := r.postColl.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, fmt.Errorf("error fetching post %s: %w", id, err)
	}
	return &post, nil
}

func (r *mongoCommunityRepo) ListPosts(ctx context.Context, limit, offset int64) ([]models.CommunityPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.postColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.CommunityPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("error decoding posts: %w", err)
	}
	return posts, nil
}

func (r *mongoCommunityRepo) DeletePost(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.postColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	// Best effort; leftover messages are unreachable without the parent post.
	_, _ = r.messageColl.DeleteMany(ctx, bson.M{"postId": id})
	return nil
}

func (r *mongoCommunityRepo) AddMessage(ctx context.Context, msg *models.CommunityMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	if _, err := r.messageColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error adding message: %w", err)
	}

	update := bson.M{"$inc": bson.M{"messageCount": 1}}
	if _, err := r.postColl.UpdateOne(ctx, bson.M{"id": msg.PostID}, update); err != nil {
		return fmt.Errorf("error bumping message count: %w", err)
	}
	return nil
}

func (r *mongoCommunityRepo) ListMessages(ctx context.Context, postID string, limit int64) ([]models.CommunityMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.messageColl.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing messages for post %s: %w", postID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.CommunityMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return messages, nil
}
