package models

// DateLayout is the format for all snapshot dates.
const DateLayout = "2006-01-02"

// DashboardStats is the daily statistics snapshot. At most one row
// exists per calendar date; the storage layer enforces uniqueness.
type DashboardStats struct {
	ID             int     `json:"id"`
	Date           string  `json:"date"`
	TotalEarnings  float64 `json:"total_earnings"`
	DailyEarnings  float64 `json:"daily_earnings"`
	NewCustomers   int     `json:"new_customers"`
	TotalCustomers int     `json:"total_customers"`
}
