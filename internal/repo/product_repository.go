package repo

import "github.com/rogerio-castellano/storefront-api/internal/models"

// PageSize is the fixed listing page size for dashboard product queries.
const PageSize = 10

// ProductFilter carries the optional dashboard listing filters. A zero
// Page (or any out-of-range page) is clamped to the nearest valid page.
type ProductFilter struct {
	Search   string
	Status   string
	Category string
	Page     int
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	// Filter returns one page of products matching f ordered by creation
	// time descending, the total match count, and the served page number.
	Filter(f ProductFilter) ([]models.Product, int, int, error)
	// ToggleActive flips is_active in a single statement and returns the
	// resulting product.
	ToggleActive(id int) (models.Product, error)
	// LowStock lists active products whose stock fell below threshold.
	LowStock(threshold int) ([]models.Product, error)
	// Count returns the number of products.
	Count() (int, error)
}

// ClampPage maps a requested page onto [1..totalPages] given a total
// match count. An empty result set serves page 1.
func ClampPage(page, total int) int {
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
