package repo

import (
	"sort"
	"strings"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.Search != "" &&
		!containsFold(p.Name, f.Search) &&
		!containsFold(p.Description, f.Search) &&
		!containsFold(p.Category, f.Search) {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

func (r *InMemoryProductRepository) Filter(f ProductFilter) ([]models.Product, int, int, error) {
	var filtered []models.Product
	for _, p := range r.products {
		if matchesFilter(p, f) {
			filtered = append(filtered, p)
		}
	}

	// Newest first. IDs are assigned monotonically so they track creation order.
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })

	total := len(filtered)
	page := ClampPage(f.Page, total)

	start := clamp((page-1)*PageSize, 0, total)
	end := clamp(start+PageSize, start, total)
	return filtered[start:end], total, page, nil
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == product.Name {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products ordered by creation time descending.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByName(name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			if product.CreatedAt == "" {
				product.CreatedAt = p.CreatedAt
			}
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// ToggleActive flips the is_active flag of a product.
func (r *InMemoryProductRepository) ToggleActive(id int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].IsActive = !p.IsActive
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) LowStock(threshold int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.IsActive && p.StockQuantity < threshold {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockQuantity < out[j].StockQuantity })
	return out, nil
}

func (r *InMemoryProductRepository) Count() (int, error) {
	return len(r.products), nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
