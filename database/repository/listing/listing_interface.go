package listingRepo

import (
	"servigo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// GetActive retrieves all active listings ordered by creation time descending.
	GetActive() ([]models.Listing, error)
	// GetByID retrieves a listing by its unique ID.
	GetByID(id string) (*models.Listing, error)
	// GetActiveByProvider retrieves a provider's active listings.
	GetActiveByProvider(providerID string) ([]models.Listing, error)
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// UpdateWithDocument patches a listing document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Deactivate soft-deletes a listing by clearing its active flag.
	Deactivate(id string) error
}
