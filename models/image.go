package models

import "time"

// ServiceImage is a photo attached to a listing. At most one image per
// listing carries the primary flag.
type ServiceImage struct {
	ID        string    `bson:"id" json:"id"`
	ServiceID string    `bson:"service_id" json:"service_id"`
	ImageURL  string    `bson:"image_url" json:"image_url"`
	IsPrimary bool      `bson:"is_primary" json:"is_primary"`
	CreatedAt time.Time `bson:"created_at" json:"created_at,omitempty"`
}
