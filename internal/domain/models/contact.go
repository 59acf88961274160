package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a contact-form submission in the contact_messages
// collection. Messages are independent documents with no references to
// other entities.
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone" json:"phone"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
	Status  string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Contact message statuses
const (
	ContactStatusUnread   = "Unread"
	ContactStatusRead     = "Read"
	ContactStatusPending  = "Pending"
	ContactStatusResolved = "Resolved"
)

// AllContactStatuses returns the valid contact message statuses.
func AllContactStatuses() []string {
	return []string{
		ContactStatusUnread,
		ContactStatusRead,
		ContactStatusPending,
		ContactStatusResolved,
	}
}

// IsValidContactStatus checks if a status is a valid contact message status.
func IsValidContactStatus(status string) bool {
	for _, s := range AllContactStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
