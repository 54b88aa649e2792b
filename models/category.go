package models

// Service type classifications for categories.
const (
	ServiceTypeOnSite = "onsite"
	ServiceTypeOnline = "online"
)

// Category is a job category. ServiceType is the optional explicit
// classification tag; when absent, classification falls back to a static
// name mapping.
type Category struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	ServiceType string `bson:"service_type,omitempty" json:"service_type,omitempty"`
}
