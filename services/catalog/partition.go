package catalog

import "servigo/models"

// serviceTypeByName is the static fallback classification applied when a
// category record carries no explicit service type tag.
var serviceTypeByName = map[string]string{
	"Plumbing":         models.ServiceTypeOnSite,
	"Electrical":       models.ServiceTypeOnSite,
	"Cleaning":         models.ServiceTypeOnSite,
	"Painting":         models.ServiceTypeOnSite,
	"Carpentry":        models.ServiceTypeOnSite,
	"Gardening":        models.ServiceTypeOnSite,
	"Air Conditioning": models.ServiceTypeOnSite,
	"Moving":           models.ServiceTypeOnSite,
	"Home Repair":      models.ServiceTypeOnSite,

	"Web Development":   models.ServiceTypeOnline,
	"Graphic Design":    models.ServiceTypeOnline,
	"Translation":       models.ServiceTypeOnline,
	"Tutoring":          models.ServiceTypeOnline,
	"Digital Marketing": models.ServiceTypeOnline,
	"Accounting":        models.ServiceTypeOnline,
	"IT Support":        models.ServiceTypeOnline,
}

// Classify resolves a category to "onsite" or "online". Precedence: the
// explicit tag on the record, then the static name mapping. Returns "" when
// neither resolves.
func Classify(category models.Category) string {
	switch category.ServiceType {
	case models.ServiceTypeOnSite, models.ServiceTypeOnline:
		return category.ServiceType
	}
	return serviceTypeByName[category.Name]
}

// Partition splits listings into disjoint on-site and online groups, each
// preserving the relative order of the input. A listing whose category is
// missing or unclassifiable belongs to neither group.
func Partition(listings []models.ListingView, categories []models.Category) (onSite, online []models.ListingView) {
	byID := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	onSite = make([]models.ListingView, 0, len(listings))
	online = make([]models.ListingView, 0, len(listings))
	for _, listing := range listings {
		category, ok := byID[listing.JobCategoryID]
		if !ok {
			continue
		}
		switch Classify(category) {
		case models.ServiceTypeOnSite:
			onSite = append(onSite, listing)
		case models.ServiceTypeOnline:
			online = append(online, listing)
		}
	}
	return onSite, online
}
