package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO customers (user_id, phone, address, date_of_birth, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.UserID, c.Phone, c.Address, c.DateOfBirth, c.CreatedAt).Scan(&c.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Customer{}, ErrDuplicatedValueUnique
	}
	return c, err
}

func (r *PostgresCustomerRepository) GetByUserID(userID int) (models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.user_id, u.username, c.phone, c.address, c.date_of_birth, c.created_at
		 FROM customers c JOIN users u ON u.id = c.user_id
		 WHERE c.user_id = $1`, userID).
		Scan(&c.ID, &c.UserID, &c.Username, &c.Phone, &c.Address, &c.DateOfBirth, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, err
}

func (r *PostgresCustomerRepository) GetAll() ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.user_id, u.username, c.phone, c.address, c.date_of_birth, c.created_at
		 FROM customers c JOIN users u ON u.id = c.user_id
		 ORDER BY c.created_at DESC, c.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Username, &c.Phone, &c.Address, &c.DateOfBirth, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}

func (r *PostgresCustomerRepository) CountCreatedSince(since time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}
