package repo

import (
	"strings"
	"sync"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

// InMemoryStatsRepository keeps snapshots keyed by date. The mutex plays
// the role of the unique-date constraint under concurrent EnsureSnapshot.
type InMemoryStatsRepository struct {
	mu        sync.Mutex
	snapshots map[string]models.DashboardStats
	nextID    int
}

func NewInMemoryStatsRepository() *InMemoryStatsRepository {
	return &InMemoryStatsRepository{
		snapshots: map[string]models.DashboardStats{},
		nextID:    1,
	}
}

func (r *InMemoryStatsRepository) EnsureSnapshot(date string, totalCustomers int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.snapshots[date]; ok {
		return nil
	}
	r.snapshots[date] = models.DashboardStats{
		ID:             r.nextID,
		Date:           date,
		TotalCustomers: totalCustomers,
	}
	r.nextID++
	return nil
}

func (r *InMemoryStatsRepository) GetByDate(date string) (models.DashboardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.snapshots[date]
	if !ok {
		return models.DashboardStats{}, ErrSnapshotNotFound
	}
	return s, nil
}

func (r *InMemoryStatsRepository) MonthlyEarnings(month string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum float64
	for date, s := range r.snapshots {
		if strings.HasPrefix(date, month+"-") {
			sum += s.DailyEarnings
		}
	}
	return sum, nil
}

func (r *InMemoryStatsRepository) RecordEarnings(date string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.snapshots[date]
	if !ok {
		return ErrSnapshotNotFound
	}
	s.DailyEarnings += amount
	s.TotalEarnings += amount
	r.snapshots[date] = s
	return nil
}

// Seed inserts a full snapshot row, replacing any existing row for the
// date. Test helper.
func (r *InMemoryStatsRepository) Seed(s models.DashboardStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	}
	r.snapshots[s.Date] = s
}

// SnapshotCount reports the number of stored rows. Test helper.
func (r *InMemoryStatsRepository) SnapshotCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func (r *InMemoryStatsRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = map[string]models.DashboardStats{}
}
