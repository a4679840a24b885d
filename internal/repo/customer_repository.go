package repo

import (
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

// CustomerRepository stores storefront customer profiles. Each profile
// belongs to exactly one user; creating a second one for the same user
// fails with ErrDuplicatedValueUnique.
type CustomerRepository interface {
	Create(c models.Customer) (models.Customer, error)
	GetByUserID(userID int) (models.Customer, error)
	GetAll() ([]models.Customer, error)
	Count() (int, error)
	// CountCreatedSince counts customers created at or after since.
	CountCreatedSince(since time.Time) (int, error)
}
