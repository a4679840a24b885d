package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
	"github.com/rogerio-castellano/storefront-api/internal/redissvc"
)

// GetDashboardOverviewHandler godoc
// @Summary Dashboard statistics overview
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardOverview
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
// @Security BearerAuth
func GetDashboardOverviewHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	today := now.Format(models.DateLayout)

	// The daily loop normally creates the row; this covers the first
	// request after a cold start. The upsert is idempotent either way.
	totalCustomers, err := customerRepo.Count()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	if err := statsRepo.EnsureSnapshot(today, totalCustomers); err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	cacheKey := fmt.Sprintf(redissvc.KeyDashboardOverview, today)
	if Rdb != nil {
		if cached, err := Rdb.Get(Ctx, cacheKey).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	snapshot, err := statsRepo.GetByDate(today)
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	monthly, err := statsRepo.MonthlyEarnings(now.Format("2006-01"))
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	newCustomers, err := customerRepo.CountCreatedSince(startOfToday.AddDate(0, 0, -2))
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	totalProducts, err := productRepo.Count()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	overview := DashboardOverview{
		Today:                 snapshot,
		MonthlyEarnings:       monthly,
		NewCustomersLast2Days: newCustomers,
		TotalProducts:         totalProducts,
		TotalCustomers:        totalCustomers,
	}

	payload, err := json.Marshal(overview)
	if err != nil {
		http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
		return
	}
	if Rdb != nil {
		if err := Rdb.Set(Ctx, cacheKey, payload, redissvc.TTLDashboardOverview).Err(); err != nil {
			log.Printf("failed to cache dashboard overview: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// RecordEarningsHandler godoc
// @Summary Add revenue to a day's snapshot row
// @Tags dashboard
// @Accept json
// @Produce json
// @Param earnings body EarningsRequest true "amount and optional date (defaults to today)"
// @Success 200 {object} models.DashboardStats
// @Failure 400 {string} string "Invalid input"
// @Router /dashboard/earnings [post]
// @Security BearerAuth
func RecordEarningsHandler(w http.ResponseWriter, r *http.Request) {
	var req EarningsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "amount must be greater than zero", http.StatusBadRequest)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		http.Error(w, "date must use the YYYY-MM-DD layout", http.StatusBadRequest)
		return
	}

	totalCustomers, err := customerRepo.Count()
	if err != nil {
		http.Error(w, "failed to record earnings", http.StatusInternalServerError)
		return
	}
	if err := statsRepo.EnsureSnapshot(date, totalCustomers); err != nil {
		http.Error(w, "failed to record earnings", http.StatusInternalServerError)
		return
	}
	if err := statsRepo.RecordEarnings(date, req.Amount); err != nil {
		http.Error(w, "failed to record earnings", http.StatusInternalServerError)
		return
	}

	// The cached overview for that date is stale now.
	if Rdb != nil {
		cacheKey := fmt.Sprintf(redissvc.KeyDashboardOverview, date)
		if err := Rdb.Del(Ctx, cacheKey).Err(); err != nil {
			log.Printf("failed to invalidate dashboard cache: %v", err)
		}
	}

	snapshot, err := statsRepo.GetByDate(date)
	if err != nil {
		http.Error(w, "failed to record earnings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
