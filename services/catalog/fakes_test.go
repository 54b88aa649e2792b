package catalog

import (
	"context"
	"sort"
	"sync"

	"servigo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repository fakes backing the service tests. Each fake keeps its
// records in a slice guarded by a mutex and honors the same contracts as the
// Mongo implementations (ordering, nil-on-missing, soft deletes).

type memListingRepo struct {
	mu       sync.Mutex
	listings []models.Listing
	err      error
}

func (r *memListingRepo) GetActive() ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var active []models.Listing
	for _, l := range r.listings {
		if l.IsActive {
			active = append(active, l)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

func (r *memListingRepo) GetByID(id string) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.listings {
		if r.listings[i].ID == id {
			l := r.listings[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (r *memListingRepo) GetActiveByProvider(providerID string) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Listing
	for _, l := range r.listings {
		if l.IsActive && l.ServiceProviderID == providerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memListingRepo) Create(listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.listings = append(r.listings, *listing)
	return nil
}

func (r *memListingRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return nil
}

func (r *memListingRepo) Deactivate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.listings {
		if r.listings[i].ID == id {
			r.listings[i].IsActive = false
		}
	}
	return nil
}

type memProviderRepo struct {
	mu        sync.Mutex
	providers map[string]models.Provider
	err       error
}

func (r *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if p, ok := r.providers[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memProviderRepo) GetAll() ([]models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Provider
	for _, p := range r.providers {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProviderRepo) Create(provider *models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.providers == nil {
		r.providers = make(map[string]models.Provider)
	}
	r.providers[provider.ID] = *provider
	return nil
}

func (r *memProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return nil
}

func (r *memProviderRepo) UpdateRating(id string, rating float64, totalReviews int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil
	}
	p.Rating = rating
	p.TotalReviews = totalReviews
	r.providers[id] = p
	return nil
}

type memCategoryRepo struct {
	categories []models.Category
	err        error
}

func (r *memCategoryRepo) GetAll() ([]models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories, nil
}

func (r *memCategoryRepo) GetByID(id string) (*models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

type memProfileRepo struct {
	profiles map[string]models.Profile
}

func (r *memProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	if p, ok := r.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

type memImageRepo struct {
	mu     sync.Mutex
	images []models.ServiceImage
}

func (r *memImageRepo) GetPrimaryByListing(listingID string) (*models.ServiceImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.images {
		if r.images[i].ServiceID == listingID && r.images[i].IsPrimary {
			img := r.images[i]
			return &img, nil
		}
	}
	return nil, nil
}

func (r *memImageRepo) GetByListing(listingID string) ([]models.ServiceImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ServiceImage
	for _, img := range r.images {
		if img.ServiceID == listingID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *memImageRepo) Create(image *models.ServiceImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if image.IsPrimary {
		for i := range r.images {
			if r.images[i].ServiceID == image.ServiceID {
				r.images[i].IsPrimary = false
			}
		}
	}
	r.images = append(r.images, *image)
	return nil
}

type memNotifier struct {
	mu     sync.Mutex
	events []models.ListingEvent
	ch     chan models.ListingEvent
}

func (n *memNotifier) channel() chan models.ListingEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ch == nil {
		n.ch = make(chan models.ListingEvent, 16)
	}
	return n.ch
}

func (n *memNotifier) Publish(ctx context.Context, event models.ListingEvent) error {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
	n.channel() <- event
	return nil
}

func (n *memNotifier) Subscribe(ctx context.Context) (<-chan models.ListingEvent, error) {
	return n.channel(), nil
}

func (n *memNotifier) published() []models.ListingEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.ListingEvent, len(n.events))
	copy(out, n.events)
	return out
}
