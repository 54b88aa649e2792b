package profileRepo

import "servigo/models"

// ProfileRepository defines methods for user profile data access.
type ProfileRepository interface {
	// GetByUserID retrieves a profile by its user ID. Returns (nil, nil) when
	// no profile exists for the user.
	GetByUserID(userID string) (*models.Profile, error)
}
