// Package stats runs the background snapshot job. The dashboard read
// path also ensures today's row exists, so the loop only has to win the
// common case.
package stats

import (
	"log"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
	"github.com/rogerio-castellano/storefront-api/internal/repo"
)

// StartDailySnapshotLoop upserts the snapshot row for the current date
// on every tick. Safe to run alongside concurrent dashboard requests;
// the unique-date constraint makes the upsert idempotent.
func StartDailySnapshotLoop(statsRepo repo.StatsRepository, customerRepo repo.CustomerRepository, interval time.Duration) {
	for {
		EnsureToday(statsRepo, customerRepo)
		time.Sleep(interval)
	}
}

// EnsureToday creates today's snapshot row if it does not exist yet.
func EnsureToday(statsRepo repo.StatsRepository, customerRepo repo.CustomerRepository) {
	totalCustomers, err := customerRepo.Count()
	if err != nil {
		log.Printf("snapshot job: could not count customers: %v", err)
		return
	}
	today := time.Now().UTC().Format(models.DateLayout)
	if err := statsRepo.EnsureSnapshot(today, totalCustomers); err != nil {
		log.Printf("snapshot job: could not ensure snapshot for %s: %v", today, err)
	}
}
