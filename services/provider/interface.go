package provider

import (
	"context"

	"servigo/models"
)

// ProviderService assembles provider detail views and manages reviews.
type ProviderService interface {
	// GetDetail retrieves a provider joined with its profile, category,
	// active listings (with images) and reviews. A missing provider is the
	// only hard failure; every other sub-lookup degrades to empty data.
	GetDetail(providerID string) (*models.ProviderDetail, error)
	// AddReview stores a review and schedules a recompute of the provider's
	// aggregate rating.
	AddReview(ctx context.Context, review *models.Review) error
	// RecomputeRating recalculates and stores the provider's aggregate
	// rating and total review count.
	RecomputeRating(providerID string) error
}
