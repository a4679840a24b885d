package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/storefront-api/internal/http"
	handler "github.com/rogerio-castellano/storefront-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront-api/internal/models"
	"github.com/rogerio-castellano/storefront-api/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	customerRepo *repo.InMemoryCustomerRepository
	statsRepo    *repo.InMemoryStatsRepository
	categoryRepo *repo.InMemoryCategoryRepository
	userRepo     *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	customerRepo = repo.NewInMemoryCustomerRepository()
	handler.SetCustomerRepo(customerRepo)

	statsRepo = repo.NewInMemoryStatsRepository()
	handler.SetStatsRepo(statsRepo)

	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)

	handler.SetStoreRepo(repo.NewInMemoryStoreRepository())
	handler.SetBlogRepo(repo.NewInMemoryBlogRepository())

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllStats() {
	statsRepo.Clear()
}

func clearAllCustomers() {
	customerRepo.Clear()
}

// runWithVisitorCleanup resets the per-IP limiter so rate-limited auth
// endpoints do not bleed state between subtests.
func runWithVisitorCleanup(t *testing.T, name string, fn func(t *testing.T)) {
	rl.CleanupAllVisitors()
	t.Run(name, fn)
}

func generateToken(r http.Handler, username, password string) (string, error) {
	rl.CleanupAllVisitors()
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/dashboard/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func toggleProduct(r http.Handler, productID int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/dashboard/products/%d/toggle-status", productID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func filterProducts(r http.Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard/products"+query, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getDashboard(r http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
