package categoryRepo

import "servigo/models"

// CategoryRepository defines methods for job category data access.
type CategoryRepository interface {
	// GetAll retrieves all job categories.
	GetAll() ([]models.Category, error)
	// GetByID retrieves a category by its unique ID.
	GetByID(id string) (*models.Category, error)
}
