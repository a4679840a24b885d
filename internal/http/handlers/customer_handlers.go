package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rogerio-castellano/storefront-api/internal/repo"
)

// GetCustomersHandler godoc
// @Summary List customers, newest first
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/customers [get]
// @Security BearerAuth
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(customers); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetAccountHandler godoc
// @Summary The calling user's customer profile
// @Tags customers
// @Produce json
// @Success 200 {object} models.Customer
// @Failure 404 {string} string "No profile"
// @Router /account [get]
// @Security BearerAuth
func GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r)
	if userID == 0 {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	customer, err := customerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "no customer profile", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch profile", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}
