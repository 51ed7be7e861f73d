package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamImage is the profile image asset owned by a team member.
// PublicID is the storage key; URL is the public address.
type TeamImage struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

// TeamMember is a member of the firm's team as shown on the site.
//
// EmpID is the human-readable identifier (EMP001, EMP002, ...). It is stored
// uppercase and unique; when a member is created without one, the store
// allocates the next sequential number. Department is optional so executives
// can sit outside any department.
//
// Members are soft-deleted by flipping IsActive; inactive members are
// invisible to direct lookups and to the default list filter but remain in
// the collection until permanently deleted.
type TeamMember struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmpID string             `bson:"emp_id" json:"empId"`
	Name  string             `bson:"name" json:"name"`

	Qualification []string `bson:"qualification" json:"qualification"`
	Experience    int      `bson:"experience" json:"experience"` // years, >= 0
	Expertise     []string `bson:"expertise" json:"expertise"`
	Department    string   `bson:"department,omitempty" json:"department,omitempty"`
	Role          string   `bson:"role" json:"role"`
	Info          string   `bson:"info" json:"info"`
	AboutMe       string   `bson:"about_me" json:"aboutMe"`

	Image TeamImage `bson:"image" json:"image"`

	IsActive bool `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
