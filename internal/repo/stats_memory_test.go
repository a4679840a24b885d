package repo

import (
	"sync"
	"testing"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

func TestEnsureSnapshotIsIdempotent(t *testing.T) {
	r := NewInMemoryStatsRepository()

	if err := r.EnsureSnapshot("2026-08-30", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.EnsureSnapshot("2026-08-30", 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.SnapshotCount(); got != 1 {
		t.Fatalf("expected 1 snapshot, got %d", got)
	}

	s, err := r.GetByDate("2026-08-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalCustomers != 5 {
		t.Errorf("expected the first write to win, got %d total customers", s.TotalCustomers)
	}
}

func TestEnsureSnapshotConcurrent(t *testing.T) {
	r := NewInMemoryStatsRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.EnsureSnapshot("2026-08-30", 7)
		}()
	}
	wg.Wait()

	if got := r.SnapshotCount(); got != 1 {
		t.Fatalf("expected 1 snapshot after concurrent upserts, got %d", got)
	}
}

func TestRecordEarnings(t *testing.T) {
	r := NewInMemoryStatsRepository()
	r.Seed(models.DashboardStats{Date: "2026-08-30", TotalEarnings: 100})

	if err := r.RecordEarnings("2026-08-30", 25.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.RecordEarnings("2026-08-30", 4.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, _ := r.GetByDate("2026-08-30")
	if s.DailyEarnings != 30 {
		t.Errorf("expected daily earnings 30, got %v", s.DailyEarnings)
	}
	if s.TotalEarnings != 130 {
		t.Errorf("expected total earnings 130, got %v", s.TotalEarnings)
	}

	if err := r.RecordEarnings("1999-01-01", 1); err != ErrSnapshotNotFound {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestMonthlyEarnings(t *testing.T) {
	r := NewInMemoryStatsRepository()
	r.Seed(models.DashboardStats{Date: "2026-08-01", DailyEarnings: 10})
	r.Seed(models.DashboardStats{Date: "2026-08-15", DailyEarnings: 20})
	r.Seed(models.DashboardStats{Date: "2026-07-31", DailyEarnings: 40})

	sum, err := r.MonthlyEarnings("2026-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 30 {
		t.Errorf("expected 30 for August, got %v", sum)
	}

	empty, _ := r.MonthlyEarnings("2025-12")
	if empty != 0 {
		t.Errorf("expected 0 for a month without rows, got %v", empty)
	}
}
