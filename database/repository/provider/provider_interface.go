package providerRepo

import (
	"servigo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// UpdateRating sets the aggregate rating and total review count.
	UpdateRating(id string, rating float64, totalReviews int) error
}
