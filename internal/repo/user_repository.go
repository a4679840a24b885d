package repo

import "github.com/rogerio-castellano/storefront-api/internal/models"

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
	// Delete removes a user row. Used to roll back registration when the
	// customer profile cannot be provisioned.
	Delete(id int) error
}
