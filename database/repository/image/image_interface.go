package imageRepo

import "servigo/models"

// ServiceImageRepository defines methods for listing photo data access.
type ServiceImageRepository interface {
	// GetPrimaryByListing retrieves the primary flagged image for a listing.
	// Returns (nil, nil) when the listing has no primary image.
	GetPrimaryByListing(listingID string) (*models.ServiceImage, error)
	// GetByListing retrieves all images for a listing.
	GetByListing(listingID string) ([]models.ServiceImage, error)
	// Create inserts a new image record. When the image is flagged primary,
	// any previous primary flag on the same listing is cleared first.
	Create(image *models.ServiceImage) error
}
