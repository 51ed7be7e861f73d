package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact statuses move through a simple triage flow. There is no state
// machine: any status can be set at any time.
const (
	ContactStatusPending    = "pending"
	ContactStatusInProgress = "in-progress"
	ContactStatusResolved   = "resolved"
	ContactStatusClosed     = "closed"
)

// ValidContactStatus reports whether s is one of the allowed statuses.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusPending, ContactStatusInProgress, ContactStatusResolved, ContactStatusClosed:
		return true
	}
	return false
}

// Contact is an inbound inquiry from the site's contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	MobileNo  string             `bson:"mobile_no" json:"mobileNo"`
	Email     string             `bson:"email" json:"email"`
	Service   string             `bson:"service" json:"service"`
	Query     string             `bson:"query" json:"query"`

	Status string `bson:"status" json:"status"` // pending | in-progress | resolved | closed
	IsRead bool   `bson:"is_read" json:"isRead"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
