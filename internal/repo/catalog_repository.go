package repo

import "github.com/rogerio-castellano/storefront-api/internal/models"

// CategoryRepository stores product categories shown on the storefront.
type CategoryRepository interface {
	Create(c models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByName(name string) (models.Category, error)
}

// StoreRepository stores the store directory entries.
type StoreRepository interface {
	Create(s models.Store) (models.Store, error)
	GetAll() ([]models.Store, error)
}

// BlogRepository stores blog posts. Slugs are unique.
type BlogRepository interface {
	Create(p models.BlogPost) (models.BlogPost, error)
	GetAll() ([]models.BlogPost, error)
	GetByID(id int) (models.BlogPost, error)
}
