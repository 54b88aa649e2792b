package catalog

import "servigo/models"

// Availability tags accepted by the filter. Both currently map to the same
// underlying provider approval flag.
const (
	AvailabilityVerified = "verified"
	AvailabilityLicensed = "licensed"
)

// Filter returns the subset of listings matching every active criterion.
// The result preserves the input order; no re-sorting happens here.
func Filter(listings []models.ListingView, criteria Criteria) []models.ListingView {
	filtered := make([]models.ListingView, 0, len(listings))
	for _, listing := range listings {
		if matches(listing, criteria) {
			filtered = append(filtered, listing)
		}
	}
	return filtered
}

func matches(listing models.ListingView, criteria Criteria) bool {
	if active(criteria.Category) && resolvedCategoryID(listing) != criteria.Category {
		return false
	}

	// Location is a literal match: case-sensitive, no normalization.
	if active(criteria.Location) && listing.Location != criteria.Location {
		return false
	}

	if len(criteria.Availability) > 0 {
		approved := listing.Provider.IsApproved
		ok := (containsTag(criteria.Availability, AvailabilityVerified) && approved) ||
			(containsTag(criteria.Availability, AvailabilityLicensed) && approved)
		if !ok {
			return false
		}
	}

	return true
}

// resolvedCategoryID prefers the provider's category, falling back to the
// listing's own category reference.
func resolvedCategoryID(listing models.ListingView) string {
	if listing.Provider.JobCategoryID != "" {
		return listing.Provider.JobCategoryID
	}
	return listing.JobCategoryID
}

// active reports whether a selector constrains the result ("" and "all"
// both mean unconstrained).
func active(selector string) bool {
	return selector != "" && selector != "all"
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
