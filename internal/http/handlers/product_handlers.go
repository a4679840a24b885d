package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront-api/internal/alerts"
	models "github.com/rogerio-castellano/storefront-api/internal/models"
	repo "github.com/rogerio-castellano/storefront-api/internal/repo"
)

func productResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		Status:        p.Status,
		IsActive:      p.IsActive,
		ImagePath:     p.ImagePath,
		CreatedAt:     p.CreatedAt,
	}
}

// decodeProductRequest accepts either a JSON body or a multipart form
// with an optional image file. The dashboard form posts multipart; API
// clients post JSON.
func decodeProductRequest(r *http.Request) (ProductRequest, string, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return ProductRequest{}, "", errors.New("invalid input")
		}
		return req, "", nil
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return ProductRequest{}, "", errors.New("invalid form")
	}

	req := ProductRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Status:      r.FormValue("status"),
	}
	req.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	req.StockQuantity, _ = strconv.Atoi(r.FormValue("stock_quantity"))

	imagePath := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if images == nil {
			return ProductRequest{}, "", errors.New("image uploads not available")
		}
		imagePath, err = images.Save(file, req.Category, header.Filename)
		if err != nil {
			log.Printf("failed to store uploaded image: %v", err)
			return ProductRequest{}, "", errors.New("could not store image")
		}
	}
	return req, imagePath, nil
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} map[string]string
// @Router /dashboard/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	req, imagePath, err := decodeProductRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	isActive := status == models.StatusActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := models.Product{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Status:        status,
		IsActive:      isActive,
		ImagePath:     imagePath,
		CreatedAt:     time.Now().Format(time.RFC3339),
		UpdatedAt:     time.Now().Format(time.RFC3339),
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product name duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	if created.IsActive && created.StockQuantity < lowStockThreshold {
		alerts.SendLowStockAlert(created)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(productResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products, newest first
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productResponse(product))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/products/{id} [put]
// @Security BearerAuth
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	req, imagePath, err := decodeProductRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	if imagePath == "" {
		imagePath = existing.ImagePath
	}

	product := models.Product{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Status:        status,
		IsActive:      isActive,
		ImagePath:     imagePath,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().Format(time.RFC3339),
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	if updated.IsActive && updated.StockQuantity < lowStockThreshold && existing.StockQuantity >= lowStockThreshold {
		alerts.SendLowStockAlert(updated)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productResponse(updated))
}

// ToggleProductStatusHandler godoc
// @Summary Flip a product's is_active flag
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ToggleStatusResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} ToggleStatusResult
// @Router /dashboard/products/{id}/toggle-status [post]
// @Security BearerAuth
func ToggleProductStatusHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.ToggleActive(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, ToggleStatusResult{
				Success: false,
				Message: "product not found",
			})
			return
		}
		http.Error(w, "could not toggle product status", http.StatusInternalServerError)
		return
	}

	state := "deactivated"
	if product.IsActive {
		state = "activated"
	}
	writeJSON(w, http.StatusOK, ToggleStatusResult{
		Success:  true,
		IsActive: product.IsActive,
		Message:  fmt.Sprintf("Product %q has been %s.", product.Name, state),
	})
}

// FilterProductsHandler godoc
// @Summary Search, filter and paginate dashboard products
// @Tags products
// @Produce json
// @Param search query string false "Match against name, description or category"
// @Param status query string false "Exact status"
// @Param category query string false "Exact category"
// @Param page query int false "Page number (clamped to the valid range)"
// @Success 200 {object} ProductsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/products [get]
// @Security BearerAuth
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	filter := repo.ProductFilter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Page:     page,
	}

	products, total, served, err := productRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total, Page: served, PageSize: repo.PageSize},
	}
	for i, p := range products {
		resp.Data[i] = productResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
