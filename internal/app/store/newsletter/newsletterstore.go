// Package newsletterstore provides access to the newsletter_subscribers
// collection.
package newsletterstore

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

// Store provides access to the newsletter_subscribers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new newsletter subscriber store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("newsletter_subscribers")}
}

// Subscribe adds a new subscriber with status Active. A repeat signup
// returns storeutil.ErrDuplicate. The email is expected to be normalized
// (trimmed, lowercased) by the caller.
func (s *Store) Subscribe(ctx context.Context, email string) (models.NewsletterSubscriber, error) {
	// Pre-check for a friendlier path than the write error; the unique
	// index still catches concurrent signups.
	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return models.NewsletterSubscriber{}, fmt.Errorf("email %q: %w", email, storeutil.ErrDuplicate)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsletterSubscriber{}, err
	}

	sub := models.NewsletterSubscriber{
		Email:      email,
		DateJoined: time.Now().UTC(),
		Status:     models.SubscriberStatusActive,
	}

	res, err := s.c.InsertOne(ctx, sub)
	if err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.NewsletterSubscriber{}, fmt.Errorf("email %q: %w", email, storeutil.ErrDuplicate)
		}
		return models.NewsletterSubscriber{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}
	return sub, nil
}

// List returns all subscribers newest-first by join date.
func (s *Store) List(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_joined", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []models.NewsletterSubscriber
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.NewsletterSubscriber{}
	}
	return subs, nil
}

// Get returns one subscriber by ID.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsletterSubscriber{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.NewsletterSubscriber{}, err
	}
	return sub, nil
}

// UpdateStatus switches a subscriber between Active and Inactive and
// returns the updated document.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.NewsletterSubscriber, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status}}

	var sub models.NewsletterSubscriber
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsletterSubscriber{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.NewsletterSubscriber{}, err
	}
	return sub, nil
}

// Delete removes a subscriber and returns the removed document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsletterSubscriber{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.NewsletterSubscriber{}, err
	}
	return sub, nil
}
