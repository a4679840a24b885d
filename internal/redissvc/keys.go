package redissvc

import "time"

const (
	// Cached dashboard overview: dashboard:overview:{date} -> JSON payload
	KeyDashboardOverview = "dashboard:overview:%s"

	// Low-stock event log consumed by the daily alert summary
	KeyLowStockLog = "alerts:lowstock:daily"
)

var (
	TTLDashboardOverview = 5 * time.Minute
)
