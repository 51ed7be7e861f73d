package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is one of the firm's service listings (audit, taxation, advisory, ...).
//
// The image is mandatory at creation; ImagePublicID tracks the storage key for
// the asset so replacement and deletion can remove the old object.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ServiceName string             `bson:"service_name" json:"serviceName"`

	Image         string `bson:"image" json:"image"`
	ImagePublicID string `bson:"image_public_id,omitempty" json:"imagePublicId,omitempty"`

	Description    string   `bson:"description" json:"description"`
	DetailBenefits []string `bson:"detail_benefits" json:"detailBenefits"`
	Beneficiary    string   `bson:"beneficiary" json:"beneficiary"`
	IsActive       bool     `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
