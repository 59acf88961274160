package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a post in the blog_posts collection.
//
// Content, Content2, and Content3 hold sanitized rich-text HTML; only
// Content is required. Slug is derived from the title at creation time and
// never changes afterward, so published URLs stay stable across edits.
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	Content2   string             `bson:"content2,omitempty" json:"content2,omitempty"`
	Content3   string             `bson:"content3,omitempty" json:"content3,omitempty"`
	Slug       string             `bson:"slug" json:"slug"`
	Category   string             `bson:"category" json:"category"`
	ImageURL   string             `bson:"image_url" json:"imageUrl"`
	YoutubeURL string             `bson:"youtube_url,omitempty" json:"youtubeUrl,omitempty"`
	Status     string             `bson:"status" json:"status"`
	Date       time.Time          `bson:"date" json:"date"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Blog post statuses
const (
	BlogStatusDraft     = "Draft"
	BlogStatusPublished = "Published"
)

// AllBlogStatuses returns the valid blog post statuses.
func AllBlogStatuses() []string {
	return []string{BlogStatusDraft, BlogStatusPublished}
}

// IsValidBlogStatus checks if a status is a valid blog post status.
func IsValidBlogStatus(status string) bool {
	for _, s := range AllBlogStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
