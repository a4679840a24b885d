package repo

import "github.com/rogerio-castellano/storefront-api/internal/models"

// StatsRepository maintains the daily dashboard snapshots. Writes and
// reads are deliberately separated: EnsureSnapshot is the only way a row
// comes into existence, reads never create.
type StatsRepository interface {
	// EnsureSnapshot upserts a zero-valued row for date, initializing
	// total_customers to totalCustomers. Re-running it for the same date
	// is a no-op; the unique date constraint absorbs concurrent creation.
	EnsureSnapshot(date string, totalCustomers int) error
	// GetByDate returns the snapshot for date or ErrSnapshotNotFound.
	GetByDate(date string) (models.DashboardStats, error)
	// MonthlyEarnings sums daily_earnings over rows whose date falls in
	// the calendar month given by its "2006-01" prefix.
	MonthlyEarnings(month string) (float64, error)
	// RecordEarnings adds amount to the daily and cumulative earnings of
	// an existing snapshot row.
	RecordEarnings(date string, amount float64) error
}
