// Package contactstore provides access to the contact_messages collection.
package contactstore

import (
	"context"
	"errors"
	"time"

	"github.com/sitebase-io/sitebase/internal/app/store/storeutil"
	"github.com/sitebase-io/sitebase/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the contact_messages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact message store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages")}
}

// CreateInput holds the fields of an incoming contact message. All fields
// have already been checked by the handler.
type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Create inserts a new message with status Unread and returns it.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    models.ContactStatusUnread,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.c.InsertOne(ctx, msg)
	if err != nil {
		return models.ContactMessage{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid
	}
	return msg, nil
}

// List returns all messages newest-first.
func (s *Store) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var msgs []models.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}
	return msgs, nil
}

// Get returns one message by ID.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ContactMessage{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// UpdateStatus moves a message through the triage workflow and returns the
// updated document.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.ContactMessage, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status}}

	var msg models.ContactMessage
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ContactMessage{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// Delete removes a message and returns the removed document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ContactMessage{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}
