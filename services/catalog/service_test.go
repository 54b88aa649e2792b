package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"servigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*DefaultCatalogService, *memListingRepo, *memProviderRepo, *memCategoryRepo, *memProfileRepo, *memImageRepo, *memNotifier) {
	listings := &memListingRepo{}
	providers := &memProviderRepo{providers: map[string]models.Provider{}}
	categories := &memCategoryRepo{}
	profiles := &memProfileRepo{profiles: map[string]models.Profile{}}
	images := &memImageRepo{}
	notifier := &memNotifier{}

	svc := &DefaultCatalogService{
		Listings:   listings,
		Providers:  providers,
		CategoryDB: categories,
		Profiles:   profiles,
		Images:     images,
		Notifier:   notifier,
		Logger:     zap.NewNop(),
	}
	return svc, listings, providers, categories, profiles, images, notifier
}

func TestBrowseBeforeLoadReturnsErrNotLoaded(t *testing.T) {
	svc, _, _, _, _, _, _ := newTestService()

	_, err := svc.Browse(Criteria{})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestLoadListingsPublishesEnrichedSnapshot(t *testing.T) {
	svc, listings, providers, categories, profiles, images, _ := newTestService()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	listings.listings = []models.Listing{
		{ID: "l-old", ServiceProviderID: "p-1", UserID: "u-1", JobCategoryID: "cat-plumbing",
			Location: "Tunis", IsActive: true, CreatedAt: base},
		{ID: "l-new", ServiceProviderID: "p-2", JobCategoryID: "cat-web",
			Location: "Sfax", IsActive: true, CreatedAt: base.Add(time.Hour)},
		{ID: "l-inactive", ServiceProviderID: "p-1", IsActive: false, CreatedAt: base.Add(2 * time.Hour)},
	}
	providers.providers["p-1"] = models.Provider{
		ID: "p-1", BusinessName: "Plomberie Ben Salah", IsApproved: true, JobCategoryID: "cat-plumbing",
	}
	categories.categories = []models.Category{
		{ID: "cat-plumbing", Name: "Plumbing"},
		{ID: "cat-web", Name: "Web Development"},
	}
	profiles.profiles["u-1"] = models.Profile{ID: "u-1", FirstName: "Amine", LastName: "Ben Salah"}
	images.images = []models.ServiceImage{
		{ID: "img-1", ServiceID: "l-old", ImageURL: "https://cdn/x.jpg", IsPrimary: true},
	}

	require.NoError(t, svc.LoadListings(context.Background()))

	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 2, "inactive listings must not appear")

	// Newest first, per the repository ordering contract.
	assert.Equal(t, "l-new", snapshot[0].ID)
	assert.Equal(t, "l-old", snapshot[1].ID)

	// Resolved provider record, profile name and primary photo.
	enriched := snapshot[1]
	assert.Equal(t, "Plomberie Ben Salah", enriched.Provider.BusinessName)
	assert.True(t, enriched.Provider.IsApproved)
	assert.Equal(t, "Amine Ben Salah", enriched.ProviderName)
	assert.Equal(t, "https://cdn/x.jpg", enriched.ServicePhoto)

	// p-2 has no record; the placeholder takes its place.
	placeholder := snapshot[0]
	assert.Equal(t, "p-2", placeholder.Provider.ID)
	assert.Equal(t, models.PlaceholderBusinessName, placeholder.Provider.BusinessName)
	assert.False(t, placeholder.Provider.IsApproved)
	assert.Zero(t, placeholder.Provider.Rating)
}

func TestLoadListingsFailureKeepsPreviousSnapshot(t *testing.T) {
	svc, listings, _, _, _, _, _ := newTestService()
	listings.listings = []models.Listing{
		{ID: "l-1", IsActive: true, CreatedAt: time.Now()},
	}
	require.NoError(t, svc.LoadListings(context.Background()))
	require.Len(t, svc.Snapshot(), 1)

	listings.mu.Lock()
	listings.err = errors.New("connection reset")
	listings.mu.Unlock()

	err := svc.LoadListings(context.Background())
	require.Error(t, err)

	// The previous snapshot keeps serving.
	assert.Len(t, svc.Snapshot(), 1)
	result, err := svc.Browse(Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestLoadListingsCategoryFailureKeepsPreviousCategories(t *testing.T) {
	svc, listings, _, categories, _, _, _ := newTestService()
	listings.listings = []models.Listing{{ID: "l-1", IsActive: true, CreatedAt: time.Now()}}
	categories.categories = []models.Category{{ID: "cat-1", Name: "Plumbing"}}

	require.NoError(t, svc.LoadListings(context.Background()))
	require.Len(t, svc.Categories(), 1)

	categories.err = errors.New("connection reset")
	require.NoError(t, svc.LoadListings(context.Background()))
	assert.Len(t, svc.Categories(), 1)
}

func TestBrowseReportsCountsLocationsAndGroups(t *testing.T) {
	svc, listings, _, categories, _, _, _ := newTestService()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	listings.listings = []models.Listing{
		{ID: "l-1", JobCategoryID: "cat-plumbing", Location: "Tunis", IsActive: true, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "l-2", JobCategoryID: "cat-web", Location: "Sfax", IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "l-3", JobCategoryID: "cat-plumbing", Location: "Tunis", IsActive: true, CreatedAt: base.Add(time.Hour)},
		{ID: "l-4", JobCategoryID: "", Location: "Sousse", IsActive: true, CreatedAt: base},
	}
	categories.categories = []models.Category{
		{ID: "cat-plumbing", Name: "Plumbing"},
		{ID: "cat-web", Name: "Web Development"},
	}

	require.NoError(t, svc.LoadListings(context.Background()))

	result, err := svc.Browse(Criteria{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.OnSiteCount)
	assert.Equal(t, 1, result.OnlineCount)
	// l-4 has no category so it counts toward Total but neither group.
	assert.Equal(t, []string{"Tunis", "Sfax", "Sousse"}, result.Locations)
	assert.Len(t, result.Categories, 2)

	// Location values come from the full snapshot, not the filtered subset.
	result, err = svc.Browse(Criteria{Location: "Tunis"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"Tunis", "Sfax", "Sousse"}, result.Locations)
}

func TestCreateListingDefaultsAndPublishesEvent(t *testing.T) {
	svc, listings, _, _, _, _, notifier := newTestService()

	listing := models.Listing{Description: "Réparation fuites", Location: "Ariana"}
	require.NoError(t, svc.CreateListing(context.Background(), &listing))

	assert.NotEmpty(t, listing.ID)
	assert.True(t, listing.IsActive)
	assert.False(t, listing.CreatedAt.IsZero())

	stored, err := listings.GetByID(listing.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	events := notifier.published()
	require.Len(t, events, 1)
	assert.Equal(t, "insert", events[0].Op)
	assert.Equal(t, listing.ID, events[0].ListingID)
}

func TestDeactivateListingRemovesFromNextSnapshot(t *testing.T) {
	svc, listings, _, _, _, _, notifier := newTestService()
	listings.listings = []models.Listing{{ID: "l-1", IsActive: true, CreatedAt: time.Now()}}

	require.NoError(t, svc.LoadListings(context.Background()))
	require.Len(t, svc.Snapshot(), 1)

	require.NoError(t, svc.DeactivateListing(context.Background(), "l-1"))

	events := notifier.published()
	require.Len(t, events, 1)
	assert.Equal(t, "delete", events[0].Op)

	require.NoError(t, svc.LoadListings(context.Background()))
	assert.Empty(t, svc.Snapshot())
}

// gateProfileRepo blocks the first lookup until the gate opens, letting a
// test hold one load mid-enrichment while a newer load completes.
type gateProfileRepo struct {
	mu    sync.Mutex
	calls int
	gate  chan struct{}
}

func (r *gateProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()
	if first {
		<-r.gate
	}
	return nil, nil
}

func TestSupersededLoadNeverOverwritesNewerSnapshot(t *testing.T) {
	svc, listings, _, _, _, _, _ := newTestService()
	gate := &gateProfileRepo{gate: make(chan struct{})}
	svc.Profiles = gate

	listings.listings = []models.Listing{
		{ID: "l-1", UserID: "u-1", Description: "v1", IsActive: true, CreatedAt: time.Now()},
	}

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.LoadListings(context.Background())
	}()

	// Wait until the first load is parked inside enrichment.
	require.Eventually(t, func() bool {
		gate.mu.Lock()
		defer gate.mu.Unlock()
		return gate.calls == 1
	}, 2*time.Second, 10*time.Millisecond)

	listings.mu.Lock()
	listings.listings[0].Description = "v2"
	listings.mu.Unlock()

	require.NoError(t, svc.LoadListings(context.Background()))
	require.Equal(t, "v2", svc.Snapshot()[0].Description)

	close(gate.gate)
	require.NoError(t, <-firstDone)

	// The older load finished last but must not roll the snapshot back.
	assert.Equal(t, "v2", svc.Snapshot()[0].Description)
}

func TestWatchReloadsOnChangeEvents(t *testing.T) {
	svc, listings, _, _, _, _, notifier := newTestService()
	listings.listings = []models.Listing{{ID: "l-1", IsActive: true, CreatedAt: time.Now()}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		svc.Watch(ctx)
		close(done)
	}()

	require.NoError(t, notifier.Publish(ctx, models.ListingEvent{Op: "insert", ListingID: "l-1"}))

	require.Eventually(t, func() bool {
		return len(svc.Snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}
