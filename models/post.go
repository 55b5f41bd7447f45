package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reply under a community post
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"author"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CommunityPost represents a shared look on the community feed
type CommunityPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author    string             `bson:"author" json:"author"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Content   string             `bson:"content" json:"content"`
	Images    []string           `bson:"images" json:"images"` // S3 object keys; presigned on read
	Tags      []string           `bson:"tags" json:"tags"`
	Likes     int                `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
