package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(c models.Category) (models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, icon_path, status, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Name, c.IconPath, c.Status, c.CreatedAt).Scan(&c.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Category{}, ErrDuplicatedValueUnique
	}
	return c, err
}

func (r *PostgresCategoryRepository) GetAll() ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon_path, status, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IconPath, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) GetByName(name string) (models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, `SELECT id, name, icon_path, status, created_at FROM categories WHERE name = $1`, name).
		Scan(&c.ID, &c.Name, &c.IconPath, &c.Status, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

type PostgresStoreRepository struct {
	db *sql.DB
}

func NewPostgresStoreRepository(db *sql.DB) *PostgresStoreRepository {
	return &PostgresStoreRepository{db: db}
}

func (r *PostgresStoreRepository) Create(s models.Store) (models.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO stores (name, address, logo_path) VALUES ($1, $2, $3) RETURNING id`,
		s.Name, s.Address, s.LogoPath).Scan(&s.ID)
	return s, err
}

func (r *PostgresStoreRepository) GetAll() ([]models.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address, logo_path FROM stores ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []models.Store
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.LogoPath); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

type PostgresBlogRepository struct {
	db *sql.DB
}

func NewPostgresBlogRepository(db *sql.DB) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

func (r *PostgresBlogRepository) Create(p models.BlogPost) (models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO blog_posts (category, title, slug, content, image_path, read_time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.Category, p.Title, p.Slug, p.Content, p.ImagePath, p.ReadTime, p.CreatedAt).Scan(&p.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.BlogPost{}, ErrDuplicatedValueUnique
	}
	return p, err
}

func (r *PostgresBlogRepository) GetAll() ([]models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, title, slug, content, image_path, read_time, created_at FROM blog_posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Category, &p.Title, &p.Slug, &p.Content, &p.ImagePath, &p.ReadTime, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostgresBlogRepository) GetByID(id int) (models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.BlogPost
	err := r.db.QueryRowContext(ctx,
		`SELECT id, category, title, slug, content, image_path, read_time, created_at FROM blog_posts WHERE id = $1`, id).
		Scan(&p.ID, &p.Category, &p.Title, &p.Slug, &p.Content, &p.ImagePath, &p.ReadTime, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BlogPost{}, ErrBlogPostNotFound
	}
	return p, err
}
