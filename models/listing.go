package models

import (
	"time"
)

// Listing is a published service offering by a provider. Listings are never
// hard-deleted; deactivation flips IsActive instead.
type Listing struct {
	ID                string    `bson:"id" json:"id"`
	ServiceProviderID string    `bson:"service_provider_id,omitempty" json:"service_provider_id,omitempty"`
	UserID            string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	JobCategoryID     string    `bson:"job_category_id,omitempty" json:"job_category_id,omitempty"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	Location          string    `bson:"location,omitempty" json:"location,omitempty"`
	HourlyRate        *float64  `bson:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	BusinessName      string    `bson:"business_name,omitempty" json:"business_name,omitempty"`
	IsActive          bool      `bson:"is_active" json:"is_active"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// ListingView is a listing joined with denormalized provider, profile and
// photo data for display. Computed, never persisted.
type ListingView struct {
	Listing

	Provider Provider `json:"provider"`
	Profile  *Profile `json:"profile,omitempty"`

	// Computed fields for easier access.
	ProviderName  string `json:"provider_name"`
	ProviderPhoto string `json:"provider_photo,omitempty"`
	ServicePhoto  string `json:"service_photo,omitempty"`
}

// ListingEvent is the change notification emitted on any insert, update or
// deactivation on the listings store.
type ListingEvent struct {
	Op        string    `json:"op"` // "insert", "update" or "delete"
	ListingID string    `json:"listing_id"`
	At        time.Time `json:"at"`
}
