package models

import "time"

// CommunityPost is an operator- or counselor-authored post on the community board.
type CommunityPost struct {
	ID           string    `bson:"id" json:"id"`
	AuthorID     string    `bson:"authorId" json:"authorId"`
	AuthorName   string    `bson:"authorName" json:"authorName"`
	Title        string    `bson:"title" json:"title"`
	Body         string    `bson:"body" json:"body"`
	ImageURL     string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	MessageCount int       `bson:"messageCount" json:"messageCount"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// CommunityMessage is a chat message attached to a post.
type CommunityMessage struct {
	ID         string    `bson:"id" json:"id"`
	PostID     string    `bson:"postId" json:"postId"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	SenderName string    `bson:"senderName" json:"senderName"`
	Text       string    `bson:"text" json:"text"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
