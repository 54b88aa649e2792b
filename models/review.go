package models

import "time"

// Review is a customer review of a provider. Rating is expected between 1 and 5.
type Review struct {
	ID                string    `bson:"id" json:"id"`
	ServiceProviderID string    `bson:"service_provider_id" json:"service_provider_id"`
	UserID            string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Rating            float64   `bson:"rating" json:"rating"`
	Comment           string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
