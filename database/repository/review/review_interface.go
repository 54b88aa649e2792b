package reviewRepo

import "servigo/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByProvider retrieves a provider's reviews ordered by creation time descending.
	GetByProvider(providerID string) ([]models.Review, error)
	// Create inserts a new review record.
	Create(review *models.Review) error
	// AggregateByProvider computes the average rating and review count for a provider.
	AggregateByProvider(providerID string) (avg float64, count int, err error)
}
