package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	categoryRepo "servigo/database/repository/category"
	imageRepo "servigo/database/repository/image"
	listingRepo "servigo/database/repository/listing"
	profileRepo "servigo/database/repository/profile"
	providerRepo "servigo/database/repository/provider"
	"servigo/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned by Browse when no snapshot has ever been
// published and the last load failed.
var ErrNotLoaded = errors.New("catalog: listings not loaded")

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Listings   listingRepo.ListingRepository
	Providers  providerRepo.ProviderRepository
	CategoryDB categoryRepo.CategoryRepository
	Profiles   profileRepo.ProfileRepository
	Images     imageRepo.ServiceImageRepository
	Notifier   ListingNotifier
	Logger     *zap.Logger

	mu         sync.RWMutex
	snapshot   []models.ListingView
	categories []models.Category
	loaded     bool
	loadErr    error

	// generation of the most recently started load; a completed load only
	// publishes when no newer load has started since.
	loadGen uint64
}

// LoadListings fetches the active listing set, enriches every listing and
// publishes the result as one unit. A failure in the primary listings query
// aborts the load; per-listing enrichment failures degrade to placeholder
// values instead.
func (s *DefaultCatalogService) LoadListings(ctx context.Context) error {
	gen := atomic.AddUint64(&s.loadGen, 1)

	// Category fetch failures keep the previously loaded category set.
	if categories, err := s.CategoryDB.GetAll(); err != nil {
		s.Logger.Warn("catalog: failed to fetch categories", zap.Error(err))
	} else {
		s.mu.Lock()
		s.categories = categories
		s.mu.Unlock()
	}

	listings, err := s.Listings.GetActive()
	if err != nil {
		s.mu.Lock()
		if gen == atomic.LoadUint64(&s.loadGen) && !s.loaded {
			s.loadErr = err
		}
		s.mu.Unlock()
		return fmt.Errorf("catalog: failed to load listings: %w", err)
	}

	views := s.enrichAll(ctx, listings)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A newer load has started; discard this result so the snapshot never
	// reverts to stale data.
	if gen != atomic.LoadUint64(&s.loadGen) {
		s.Logger.Debug("catalog: discarding superseded load", zap.Uint64("generation", gen))
		return nil
	}
	s.snapshot = views
	s.loaded = true
	s.loadErr = nil
	s.Logger.Info("catalog: published listing snapshot", zap.Int("listings", len(views)))
	return nil
}

// Browse filters and partitions the latest published snapshot.
func (s *DefaultCatalogService) Browse(criteria Criteria) (*BrowseResult, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	categories := s.categories
	loaded := s.loaded
	loadErr := s.loadErr
	s.mu.RUnlock()

	if !loaded {
		if loadErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotLoaded, loadErr)
		}
		return nil, ErrNotLoaded
	}

	filtered := Filter(snapshot, criteria)
	onSite, online := Partition(filtered, categories)

	return &BrowseResult{
		OnSite:      onSite,
		Online:      online,
		OnSiteCount: len(onSite),
		OnlineCount: len(online),
		Total:       len(filtered),
		Locations:   distinctLocations(snapshot),
		Categories:  categories,
	}, nil
}

// Snapshot returns the latest published enriched listing set.
func (s *DefaultCatalogService) Snapshot() []models.ListingView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Categories returns the latest fetched category set.
func (s *DefaultCatalogService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// CreateListing publishes a new listing and emits a change event so
// subscribers refresh their snapshot.
func (s *DefaultCatalogService) CreateListing(ctx context.Context, listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	listing.IsActive = true
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}

	if err := s.Listings.Create(listing); err != nil {
		return fmt.Errorf("catalog: failed to create listing: %w", err)
	}
	s.publishEvent(ctx, "insert", listing.ID)
	return nil
}

// DeactivateListing soft-deletes a listing and emits a change event.
func (s *DefaultCatalogService) DeactivateListing(ctx context.Context, id string) error {
	if err := s.Listings.Deactivate(id); err != nil {
		return fmt.Errorf("catalog: failed to deactivate listing: %w", err)
	}
	s.publishEvent(ctx, "delete", id)
	return nil
}

func (s *DefaultCatalogService) publishEvent(ctx context.Context, op, listingID string) {
	if s.Notifier == nil {
		return
	}
	event := models.ListingEvent{Op: op, ListingID: listingID, At: time.Now().UTC()}
	if err := s.Notifier.Publish(ctx, event); err != nil {
		s.Logger.Warn("catalog: failed to publish listing event",
			zap.String("op", op), zap.String("listingID", listingID), zap.Error(err))
	}
}

// Watch subscribes to the listings change channel and re-runs LoadListings
// on every event until ctx is canceled. Every change triggers a full reload
// rather than an incremental patch.
func (s *DefaultCatalogService) Watch(ctx context.Context) {
	if s.Notifier == nil {
		return
	}
	events, err := s.Notifier.Subscribe(ctx)
	if err != nil {
		s.Logger.Error("catalog: failed to subscribe to listing events", zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.Logger.Debug("catalog: listing change received",
				zap.String("op", event.Op), zap.String("listingID", event.ListingID))
			if err := s.LoadListings(ctx); err != nil {
				s.Logger.Error("catalog: reload after change failed", zap.Error(err))
			}
		}
	}
}

// distinctLocations returns the unique non-empty locations across the full
// snapshot, in first-seen order.
func distinctLocations(listings []models.ListingView) []string {
	seen := make(map[string]bool, len(listings))
	var locations []string
	for _, l := range listings {
		if l.Location == "" || seen[l.Location] {
			continue
		}
		seen[l.Location] = true
		locations = append(locations, l.Location)
	}
	return locations
}
