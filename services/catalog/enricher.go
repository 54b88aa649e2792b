package catalog

import (
	"context"
	"sync"

	"servigo/models"

	"go.uber.org/zap"
)

// enrichAll resolves provider, profile and photo data for every listing.
// Enrichment runs concurrently across listings and joins before returning,
// preserving the input order. A failed sub-lookup never aborts the other
// listings.
func (s *DefaultCatalogService) enrichAll(ctx context.Context, listings []models.Listing) []models.ListingView {
	views := make([]models.ListingView, len(listings))
	var wg sync.WaitGroup

	for i, listing := range listings {
		wg.Add(1)
		go func(i int, listing models.Listing) {
			defer wg.Done()
			views[i] = s.enrich(ctx, listing)
		}(i, listing)
	}
	wg.Wait()

	return views
}

// enrich joins one listing with its profile, primary photo and provider
// record. Each sub-lookup failure is recovered locally and treated as
// "no data".
func (s *DefaultCatalogService) enrich(ctx context.Context, listing models.Listing) models.ListingView {
	view := models.ListingView{Listing: listing}

	if listing.UserID != "" {
		profile, err := s.Profiles.GetByUserID(listing.UserID)
		if err != nil {
			s.Logger.Warn("catalog: could not fetch profile",
				zap.String("userID", listing.UserID), zap.Error(err))
		} else {
			view.Profile = profile
		}
	}

	image, err := s.Images.GetPrimaryByListing(listing.ID)
	if err != nil {
		s.Logger.Warn("catalog: service photo fetch failed",
			zap.String("listingID", listing.ID), zap.Error(err))
	} else if image != nil {
		view.ServicePhoto = image.ImageURL
	}

	view.Provider = s.resolveProvider(listing)

	view.ProviderName = providerDisplayName(view)
	if view.Profile != nil && view.Profile.ProfilePhotoURL != "" {
		view.ProviderPhoto = view.Profile.ProfilePhotoURL
	} else {
		view.ProviderPhoto = view.Provider.ProfilePhotoURL
	}

	return view
}

// resolveProvider is total: it always returns a valid provider, substituting
// the synthetic placeholder when the record is missing or the lookup fails.
func (s *DefaultCatalogService) resolveProvider(listing models.Listing) models.Provider {
	if listing.ServiceProviderID != "" {
		provider, err := s.Providers.GetByID(listing.ServiceProviderID)
		if err == nil && provider != nil {
			return *provider
		}
		if err != nil {
			s.Logger.Warn("catalog: could not fetch provider",
				zap.String("providerID", listing.ServiceProviderID),
				zap.String("listingID", listing.ID), zap.Error(err))
		}
	}
	return models.PlaceholderProvider(listing)
}

// providerDisplayName prefers the profile's full name, then the provider's
// business name, then the listing's own business name.
func providerDisplayName(view models.ListingView) string {
	if view.Profile != nil && view.Profile.FirstName != "" {
		return view.Profile.FullName()
	}
	if view.Provider.BusinessName != "" {
		return view.Provider.BusinessName
	}
	if view.BusinessName != "" {
		return view.BusinessName
	}
	return models.PlaceholderBusinessName
}
