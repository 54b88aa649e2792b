package models

import "strings"

// Profile is the user profile linked to a provider account.
type Profile struct {
	ID              string `bson:"id" json:"id"` // user id
	FirstName       string `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName        string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	ProfilePhotoURL string `bson:"profile_photo_url,omitempty" json:"profile_photo_url,omitempty"`
}

// FullName returns "First Last" with missing parts trimmed away.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}
