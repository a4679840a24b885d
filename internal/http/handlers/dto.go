package handlers

import "github.com/rogerio-castellano/storefront-api/internal/models"

type ProductRequest struct {
	Id            int     `json:"id,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
	Status        string  `json:"status"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type ProductResponse struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
	Status        string  `json:"status"`
	IsActive      bool    `json:"is_active"`
	ImagePath     string  `json:"image_path,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type ToggleStatusResult struct {
	Success  bool   `json:"success"`
	IsActive bool   `json:"is_active"`
	Message  string `json:"message"`
}

type DashboardOverview struct {
	Today                 models.DashboardStats `json:"today"`
	MonthlyEarnings       float64               `json:"monthly_earnings"`
	NewCustomersLast2Days int                   `json:"new_customers_last_2_days"`
	TotalProducts         int                   `json:"total_products"`
	TotalCustomers        int                   `json:"total_customers"`
}

type EarningsRequest struct {
	Date   string  `json:"date,omitempty"`
	Amount float64 `json:"amount"`
}

type CredentialsRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CategoryRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type StoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type BlogPostRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Content  string `json:"content"`
	ReadTime string `json:"read_time,omitempty"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
