package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

type PostgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// EnsureSnapshot relies on the unique index on dashboard_stats.date:
// concurrent first requests of a day race on the insert and the loser
// becomes a no-op.
func (r *PostgresStatsRepository) EnsureSnapshot(date string, totalCustomers int) error {
	query := `INSERT INTO dashboard_stats (date, total_earnings, daily_earnings, new_customers, total_customers)
		VALUES ($1, 0, 0, 0, $2)
		ON CONFLICT (date) DO NOTHING`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, date, totalCustomers)
	return err
}

func (r *PostgresStatsRepository) GetByDate(date string) (models.DashboardStats, error) {
	query := `SELECT id, date, total_earnings, daily_earnings, new_customers, total_customers
		FROM dashboard_stats WHERE date = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.DashboardStats
	err := r.db.QueryRowContext(ctx, query, date).
		Scan(&s.ID, &s.Date, &s.TotalEarnings, &s.DailyEarnings, &s.NewCustomers, &s.TotalCustomers)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DashboardStats{}, ErrSnapshotNotFound
	}
	return s, err
}

func (r *PostgresStatsRepository) MonthlyEarnings(month string) (float64, error) {
	query := `SELECT COALESCE(SUM(daily_earnings), 0) FROM dashboard_stats WHERE date LIKE $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, query, month+"-%").Scan(&sum)
	return sum, err
}

func (r *PostgresStatsRepository) RecordEarnings(date string, amount float64) error {
	query := `UPDATE dashboard_stats
		SET daily_earnings = daily_earnings + $1, total_earnings = total_earnings + $1
		WHERE date = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, amount, date)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
