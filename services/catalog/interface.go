package catalog

import (
	"context"

	"servigo/models"
)

// Criteria is the active filter set for browsing listings. Zero values (or
// the literal "all") disable the corresponding criterion.
type Criteria struct {
	Category     string   `json:"category" form:"category"`
	Location     string   `json:"location" form:"location"`
	Availability []string `json:"availability" form:"availability"`
}

// BrowseResult carries the filtered and partitioned listing view plus the
// value sets used to populate filter controls.
type BrowseResult struct {
	OnSite      []models.ListingView `json:"on_site"`
	Online      []models.ListingView `json:"online"`
	OnSiteCount int                  `json:"on_site_count"`
	OnlineCount int                  `json:"online_count"`
	Total       int                  `json:"total"`
	Locations   []string             `json:"locations"`
	Categories  []models.Category    `json:"categories"`
}

// CatalogService owns the enriched listing snapshot and the listing
// derivation pipeline over it.
type CatalogService interface {
	// LoadListings fetches active listings, enriches each with provider,
	// profile and photo data, and atomically publishes the result.
	LoadListings(ctx context.Context) error
	// Browse filters and partitions the latest published snapshot.
	Browse(criteria Criteria) (*BrowseResult, error)
	// Snapshot returns the latest published enriched listing set.
	Snapshot() []models.ListingView
	// Categories returns the latest fetched category set.
	Categories() []models.Category
	// CreateListing publishes a new listing and emits a change event.
	CreateListing(ctx context.Context, listing *models.Listing) error
	// DeactivateListing soft-deletes a listing and emits a change event.
	DeactivateListing(ctx context.Context, id string) error
	// Watch subscribes to the listings change channel for the lifetime of
	// ctx and re-runs LoadListings on every event.
	Watch(ctx context.Context)
}
