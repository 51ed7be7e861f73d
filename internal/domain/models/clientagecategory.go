package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientageCategory groups the kinds of clients the firm serves
// (e.g. "Manufacturing" -> ["Textile", "Pharma"]).
//
// CategoryName is unique case-insensitively; CategoryNameCI holds the folded
// form backing the unique index.
type ClientageCategory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryName   string             `bson:"category_name" json:"categoryName"`
	CategoryNameCI string             `bson:"category_name_ci" json:"-"`
	ClientTypes    []string           `bson:"client_types" json:"clientTypes"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
