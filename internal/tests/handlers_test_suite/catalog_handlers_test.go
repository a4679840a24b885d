package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/storefront-api/internal/http"
	handler "github.com/rogerio-castellano/storefront-api/internal/http/handlers"
	"github.com/rogerio-castellano/storefront-api/internal/imagestore"
	"github.com/rogerio-castellano/storefront-api/internal/models"
)

func postAuthedJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategories(t *testing.T) {
	categoryRepo.Clear()
	r := api.NewRouter()

	t.Run("create with default status", func(t *testing.T) {
		w := postAuthedJSON(r, "/dashboard/categories", handler.CategoryRequest{Name: "Beverages"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
		}
		var created models.Category
		if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if created.Status != models.CategoryPublished {
			t.Errorf("expected default status published, got %q", created.Status)
		}
	})

	t.Run("duplicated name conflicts", func(t *testing.T) {
		if w := postAuthedJSON(r, "/dashboard/categories", handler.CategoryRequest{Name: "Snacks"}); w.Code != http.StatusCreated {
			t.Fatalf("expected status 201 Created, got %d", w.Code)
		}
		if w := postAuthedJSON(r, "/dashboard/categories", handler.CategoryRequest{Name: "Snacks"}); w.Code != http.StatusConflict {
			t.Fatalf("expected status 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		w := postAuthedJSON(r, "/dashboard/categories", handler.CategoryRequest{Name: "Frozen", Status: "hidden"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("listing is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 OK, got %d", w.Code)
		}
		var categories []models.Category
		if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(categories))
		}
	})
}

func TestStores(t *testing.T) {
	r := api.NewRouter()

	w := postAuthedJSON(r, "/dashboard/stores", handler.StoreRequest{Name: "Harbour Outlet", Address: "2 Dock Road"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/stores", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d", w2.Code)
	}
	var stores []models.Store
	if err := json.NewDecoder(w2.Body).Decode(&stores); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	found := false
	for _, s := range stores {
		if s.Name == "Harbour Outlet" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected to find the created store, got %+v", stores)
	}
}

func TestBlogPosts(t *testing.T) {
	r := api.NewRouter()

	post := handler.BlogPostRequest{
		Category: "news",
		Title:    "Summer opening hours",
		Slug:     "summer-opening-hours",
		Content:  "We are open longer in July and August.",
		ReadTime: "2 min",
	}

	w := postAuthedJSON(r, "/dashboard/blog", post)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.BlogPost
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	t.Run("duplicated slug conflicts", func(t *testing.T) {
		if w := postAuthedJSON(r, "/dashboard/blog", post); w.Code != http.StatusConflict {
			t.Fatalf("expected status 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("title and slug are required", func(t *testing.T) {
		if w := postAuthedJSON(r, "/dashboard/blog", handler.BlogPostRequest{Title: "No slug"}); w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("fetch by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/blog/%d", created.ID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 OK, got %d", w.Code)
		}
		var fetched models.BlogPost
		if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if fetched.Slug != post.Slug {
			t.Errorf("expected slug %q, got %q", post.Slug, fetched.Slug)
		}
	})

	t.Run("missing post yields 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog/9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 Not Found, got %d", w.Code)
		}
	})
}

func postMultipart(r http.Handler, path string, fields map[string]string, fileField, filename, fileContent string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, filename)
		part.Write([]byte(fileContent))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryWithIcon(t *testing.T) {
	categoryRepo.Clear()
	handler.SetImageStore(imagestore.New(t.TempDir()))
	r := api.NewRouter()

	w := postMultipart(r, "/dashboard/categories",
		map[string]string{"name": "Bakery"}, "icon", "bakery.png", "png-bytes")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Category
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.IconPath == "" {
		t.Error("expected the uploaded icon path on the category")
	}
	if !strings.HasSuffix(created.IconPath, ".png") {
		t.Errorf("expected the icon to keep its extension, got %q", created.IconPath)
	}
	if created.Status != models.CategoryPublished {
		t.Errorf("expected default status published, got %q", created.Status)
	}
}

func TestCreateStoreWithLogo(t *testing.T) {
	handler.SetImageStore(imagestore.New(t.TempDir()))
	r := api.NewRouter()

	w := postMultipart(r, "/dashboard/stores",
		map[string]string{"name": "Riverside Branch", "address": "7 Mill Lane"}, "logo", "logo.jpg", "jpg-bytes")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Store
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.LogoPath == "" {
		t.Error("expected the uploaded logo path on the store")
	}
}

func TestCreateBlogPostWithImage(t *testing.T) {
	handler.SetImageStore(imagestore.New(t.TempDir()))
	r := api.NewRouter()

	fields := map[string]string{
		"category": "news",
		"title":    "Harvest week",
		"slug":     "harvest-week",
		"content":  "Fresh produce all week.",
	}
	w := postMultipart(r, "/dashboard/blog", fields, "image", "field.jpg", "jpg-bytes")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.BlogPost
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.ImagePath == "" {
		t.Error("expected the uploaded image path on the post")
	}
	if created.Slug != "harvest-week" {
		t.Errorf("expected the form fields to carry over, got %+v", created)
	}
}

func TestCreateCategoryMultipartWithoutIcon(t *testing.T) {
	categoryRepo.Clear()
	r := api.NewRouter()

	w := postMultipart(r, "/dashboard/categories",
		map[string]string{"name": "Dairy"}, "", "", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Category
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.IconPath != "" {
		t.Errorf("expected no icon path without an upload, got %q", created.IconPath)
	}
}

func TestGetCustomers(t *testing.T) {
	clearAllCustomers()
	r := api.NewRouter()

	customerRepo.Create(models.Customer{UserID: 201, Username: "first"})
	customerRepo.Create(models.Customer{UserID: 202, Username: "second"})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/customers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d", w.Code)
	}
	var customers []models.Customer
	if err := json.NewDecoder(w.Body).Decode(&customers); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	// Newest first.
	if customers[0].Username != "second" {
		t.Errorf("expected the newest customer first, got %q", customers[0].Username)
	}
}
