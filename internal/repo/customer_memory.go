package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

type InMemoryCustomerRepository struct {
	customers []models.Customer
	nextID    int
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{nextID: 1}
}

func (r *InMemoryCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	for _, existing := range r.customers {
		if existing.UserID == c.UserID {
			return models.Customer{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *InMemoryCustomerRepository) GetByUserID(userID int) (models.Customer, error) {
	for _, c := range r.customers {
		if c.UserID == userID {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *InMemoryCustomerRepository) Count() (int, error) {
	return len(r.customers), nil
}

func (r *InMemoryCustomerRepository) CountCreatedSince(since time.Time) (int, error) {
	n := 0
	for _, c := range r.customers {
		if !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryCustomerRepository) Clear() {
	r.customers = nil
}
