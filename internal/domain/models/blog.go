package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single post on the firm's marketing site.
//
// ReadTime is derived, never supplied by clients: it is recomputed from the
// content word count whenever the content changes. Image and ImagePublicID
// travel together; both are empty when the post has no cover image.
type Blog struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Author  string             `bson:"author" json:"author"`

	// Cover image hosted in external storage. ImagePublicID is the storage
	// key used for deletion; Image is the public URL.
	Image         string `bson:"image,omitempty" json:"image,omitempty"`
	ImagePublicID string `bson:"image_public_id,omitempty" json:"imagePublicId,omitempty"`

	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	Tags        []string `bson:"tags" json:"tags"`
	IsPublished bool     `bson:"is_published" json:"isPublished"`
	ReadTime    int      `bson:"read_time" json:"readTime"` // minutes, >= 1

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasImage reports whether the post owns a remote image asset.
func (b *Blog) HasImage() bool {
	return b.ImagePublicID != ""
}
