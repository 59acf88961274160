// Package blogstore provides access to the blog_posts collection.
package blogstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitebase-io/sitebase/internal/app/store/storeutil"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the blog_posts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new blog post store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog_posts")}
}

// CreateInput holds the fields for a new blog post. Slug is derived by the
// caller before it gets here.
type CreateInput struct {
	Title      string
	Excerpt    string
	Content    string
	Content2   string
	Content3   string
	Slug       string
	Category   string
	ImageURL   string
	YoutubeURL string
	Status     string
}

// UpdateInput holds a partial update. Only non-nil fields are written, so a
// PUT with a subset of fields leaves the rest of the document alone. Slug is
// deliberately absent: it never changes after creation.
type UpdateInput struct {
	Title      *string
	Excerpt    *string
	Content    *string
	Content2   *string
	Content3   *string
	Category   *string
	ImageURL   *string
	YoutubeURL *string
	Status     *string
	Date       *time.Time
}

// identFilter resolves a slug-or-id path identifier: a valid ObjectID hex
// looks up by _id, anything else by slug.
func identFilter(ident string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(ident); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"slug": ident}
}

// Create inserts a new post and returns it with its assigned ID.
// A slug collision surfaces as storeutil.ErrDuplicate.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.BlogPost, error) {
	now := time.Now().UTC()
	post := models.BlogPost{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Content2:   in.Content2,
		Content3:   in.Content3,
		Slug:       in.Slug,
		Category:   in.Category,
		ImageURL:   in.ImageURL,
		YoutubeURL: in.YoutubeURL,
		Status:     in.Status,
		Date:       now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := s.c.InsertOne(ctx, post)
	if err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.BlogPost{}, fmt.Errorf("slug %q: %w", in.Slug, storeutil.ErrDuplicate)
		}
		return models.BlogPost{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

// List returns posts newest-first by created_at. An empty status returns all
// posts; otherwise the listing is filtered to that status.
func (s *Store) List(ctx context.Context, status string) ([]models.BlogPost, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts, nil
}

// Get returns one post by slug-or-id.
func (s *Store) Get(ctx context.Context, ident string) (models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOne(ctx, identFilter(ident)).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Update merges the provided fields onto an existing post and returns the
// updated document. Concurrent updates to one post are last-write-wins;
// there is no version check.
func (s *Store) Update(ctx context.Context, ident string, in UpdateInput) (models.BlogPost, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Excerpt != nil {
		set["excerpt"] = *in.Excerpt
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Content2 != nil {
		set["content2"] = *in.Content2
	}
	if in.Content3 != nil {
		set["content3"] = *in.Content3
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if in.YoutubeURL != nil {
		set["youtube_url"] = *in.YoutubeURL
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Date != nil {
		set["date"] = *in.Date
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.BlogPost
	err := s.c.FindOneAndUpdate(ctx, identFilter(ident), bson.M{"$set": set}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Delete removes a post by slug-or-id and returns the removed document.
// The post's uploaded image is not touched; see the API handler for the
// documented file-accumulation limitation.
func (s *Store) Delete(ctx context.Context, ident string) (models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOneAndDelete(ctx, identFilter(ident)).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}
