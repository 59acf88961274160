package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsletterSubscriber is a subscription record in the newsletter_subscribers
// collection. Email is unique across the collection.
type NewsletterSubscriber struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	DateJoined time.Time          `bson:"date_joined" json:"dateJoined"`
	Status     string             `bson:"status" json:"status"`
}

// Newsletter subscriber statuses
const (
	SubscriberStatusActive   = "Active"
	SubscriberStatusInactive = "Inactive"
)

// AllSubscriberStatuses returns the valid subscriber statuses.
func AllSubscriberStatuses() []string {
	return []string{SubscriberStatusActive, SubscriberStatusInactive}
}

// IsValidSubscriberStatus checks if a status is a valid subscriber status.
func IsValidSubscriberStatus(status string) bool {
	for _, s := range AllSubscriberStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
