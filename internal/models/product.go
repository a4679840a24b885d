package models

// Product statuses as stored in the status column.
const (
	StatusActive   = "active"
	StatusDraft    = "draft"
	StatusDeactive = "deactive"
)

// Product represents a catalog product managed from the dashboard.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
	Status        string  `json:"status"`
	IsActive      bool    `json:"is_active"`
	ImagePath     string  `json:"image_path,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// ValidStatus reports whether s is one of the known product statuses.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusDraft || s == StatusDeactive
}
