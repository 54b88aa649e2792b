package models

import "time"

// PlaceholderBusinessName is the business name substituted when a listing's
// provider record cannot be resolved.
const PlaceholderBusinessName = "Service Provider"

// Provider is the professional/business entity offering listings.
type Provider struct {
	ID                  string    `bson:"id" json:"id"`
	UserID              string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	BusinessName        string    `bson:"business_name" json:"business_name"`
	BusinessDescription string    `bson:"business_description,omitempty" json:"business_description,omitempty"`
	Rating              float64   `bson:"rating" json:"rating"` // 0 means unrated
	TotalReviews        int       `bson:"total_reviews" json:"total_reviews"`
	ProfilePhotoURL     string    `bson:"profile_photo_url,omitempty" json:"profile_photo_url,omitempty"`
	IsApproved          bool      `bson:"is_approved" json:"is_approved"`
	JobCategoryID       string    `bson:"job_category_id,omitempty" json:"job_category_id,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at,omitempty"`
}

// PlaceholderProvider builds the synthetic fallback record substituted when a
// listing's real provider cannot be resolved, so downstream code never
// observes a missing provider.
func PlaceholderProvider(listing Listing) Provider {
	id := listing.ServiceProviderID
	if id == "" {
		id = "unknown"
	}
	businessName := listing.BusinessName
	if businessName == "" {
		businessName = PlaceholderBusinessName
	}
	return Provider{
		ID:            id,
		UserID:        listing.UserID,
		BusinessName:  businessName,
		Rating:        0,
		TotalReviews:  0,
		IsApproved:    false,
		JobCategoryID: listing.JobCategoryID,
	}
}

// ProviderDetail is a provider joined with its profile, category, active
// listings and reviews for the detail view.
type ProviderDetail struct {
	Provider Provider                  `json:"provider"`
	Profile  *Profile                  `json:"profile,omitempty"`
	Category *Category                 `json:"category,omitempty"`
	Listings []Listing                 `json:"listings"`
	Images   map[string][]ServiceImage `json:"images,omitempty"` // keyed by listing id
	Reviews  []Review                  `json:"reviews"`
}
