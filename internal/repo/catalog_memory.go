package repo

import (
	"sort"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{nextID: 1}
}

func (r *InMemoryCategoryRepository) Create(c models.Category) (models.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryCategoryRepository) GetByName(name string) (models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = nil
}

type InMemoryStoreRepository struct {
	stores []models.Store
	nextID int
}

func NewInMemoryStoreRepository() *InMemoryStoreRepository {
	return &InMemoryStoreRepository{nextID: 1}
}

func (r *InMemoryStoreRepository) Create(s models.Store) (models.Store, error) {
	s.ID = r.nextID
	r.nextID++
	r.stores = append(r.stores, s)
	return s, nil
}

func (r *InMemoryStoreRepository) GetAll() ([]models.Store, error) {
	out := make([]models.Store, len(r.stores))
	copy(out, r.stores)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type InMemoryBlogRepository struct {
	posts  []models.BlogPost
	nextID int
}

func NewInMemoryBlogRepository() *InMemoryBlogRepository {
	return &InMemoryBlogRepository{nextID: 1}
}

func (r *InMemoryBlogRepository) Create(p models.BlogPost) (models.BlogPost, error) {
	for _, existing := range r.posts {
		if existing.Slug == p.Slug {
			return models.BlogPost{}, ErrDuplicatedValueUnique
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *InMemoryBlogRepository) GetAll() ([]models.BlogPost, error) {
	out := make([]models.BlogPost, len(r.posts))
	copy(out, r.posts)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *InMemoryBlogRepository) GetByID(id int) (models.BlogPost, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.BlogPost{}, ErrBlogPostNotFound
}
