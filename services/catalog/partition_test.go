package catalog

import (
	"testing"

	"servigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExplicitTagWins(t *testing.T) {
	// An explicit tag overrides the name mapping even when they disagree.
	cat := models.Category{Name: "Plumbing", ServiceType: models.ServiceTypeOnline}
	assert.Equal(t, models.ServiceTypeOnline, Classify(cat))
}

func TestClassifyFallsBackToNameMapping(t *testing.T) {
	assert.Equal(t, models.ServiceTypeOnSite, Classify(models.Category{Name: "Plumbing"}))
	assert.Equal(t, models.ServiceTypeOnline, Classify(models.Category{Name: "Web Development"}))
	assert.Equal(t, "", Classify(models.Category{Name: "Astrology"}))
	assert.Equal(t, "", Classify(models.Category{Name: "plumbing"})) // mapping is exact
}

func TestClassifyIgnoresUnknownTag(t *testing.T) {
	cat := models.Category{Name: "Tutoring", ServiceType: "hybrid"}
	assert.Equal(t, models.ServiceTypeOnline, Classify(cat))
}

func TestPartitionDisjointGroupsPreserveOrder(t *testing.T) {
	categories := []models.Category{
		{ID: "cat-plumbing", Name: "Plumbing"},
		{ID: "cat-web", Name: "Web Development"},
	}
	listings := []models.ListingView{
		view("a", "cat-plumbing", "Tunis", true),
		view("b", "cat-web", "Tunis", true),
		view("c", "cat-plumbing", "Sfax", true),
		view("d", "cat-web", "Sousse", true),
	}

	onSite, online := Partition(listings, categories)

	require.Len(t, onSite, 2)
	assert.Equal(t, "a", onSite[0].ID)
	assert.Equal(t, "c", onSite[1].ID)

	require.Len(t, online, 2)
	assert.Equal(t, "b", online[0].ID)
	assert.Equal(t, "d", online[1].ID)
}

func TestPartitionExcludesUnclassifiableListings(t *testing.T) {
	categories := []models.Category{
		{ID: "cat-plumbing", Name: "Plumbing"},
		{ID: "cat-mystery", Name: "Astrology"}, // resolves to neither group
	}
	listings := []models.ListingView{
		view("a", "cat-plumbing", "Tunis", true),
		view("b", "cat-mystery", "Tunis", true),
		view("c", "", "Tunis", true),         // no category reference
		view("d", "cat-gone", "Tunis", true), // dangling reference
	}

	onSite, online := Partition(listings, categories)

	require.Len(t, onSite, 1)
	assert.Equal(t, "a", onSite[0].ID)
	assert.Empty(t, online)
}

func TestPartitionEmptyInput(t *testing.T) {
	onSite, online := Partition(nil, nil)
	assert.Empty(t, onSite)
	assert.Empty(t, online)
}
