package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct accumulates every field violation so the caller can
// surface all of them in one response.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	// Rune count, not byte length: names are user-facing text.
	if utf8.RuneCountInString(strings.TrimSpace(p.Name)) < 2 {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Product name must be at least 2 characters long"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.StockQuantity < 0 {
		errs = append(errs, ProductValidationError{Field: "StockQuantity", Description: "Stock quantity cannot be negative"})
	}
	if p.Status != "" && !models.ValidStatus(p.Status) {
		errs = append(errs, ProductValidationError{Field: "Status", Description: "Status must be active, draft or deactive"})
	}
	return errs
}
