package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront-api/internal/models"
	"github.com/rogerio-castellano/storefront-api/internal/repo"
)

// saveUpload stores an optional file from a multipart field below dir
// and returns its relative path. No file in the form is not an error.
func saveUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil
	}
	defer file.Close()

	if images == nil {
		return "", errors.New("image uploads not available")
	}
	path, err := images.Save(file, dir, header.Filename)
	if err != nil {
		log.Printf("failed to store uploaded image: %v", err)
		return "", errors.New("could not store image")
	}
	return path, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// GetCategoriesHandler godoc
// @Summary List storefront categories
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Success 201 {object} models.Category
// @Failure 400 {string} string "Invalid input"
// @Router /dashboard/categories [post]
// @Security BearerAuth
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	var iconPath string
	if isMultipart(r) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		req = CategoryRequest{Name: r.FormValue("name"), Status: r.FormValue("status")}
		var err error
		if iconPath, err = saveUpload(r, "icon", "category_icons"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "category name is required", http.StatusBadRequest)
		return
	}

	status := req.Status
	if status == "" {
		status = models.CategoryPublished
	}
	if status != models.CategoryPublished && status != models.CategoryUnpublished {
		http.Error(w, "status must be published or unpublished", http.StatusBadRequest)
		return
	}

	created, err := categoryRepo.Create(models.Category{
		Name:      strings.TrimSpace(req.Name),
		IconPath:  iconPath,
		Status:    status,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "category already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetStoresHandler godoc
// @Summary List the store directory
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Store
// @Router /stores [get]
func GetStoresHandler(w http.ResponseWriter, r *http.Request) {
	stores, err := storeRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch stores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stores)
}

// CreateStoreHandler godoc
// @Summary Create a store entry
// @Tags catalog
// @Accept json
// @Produce json
// @Success 201 {object} models.Store
// @Failure 400 {string} string "Invalid input"
// @Router /dashboard/stores [post]
// @Security BearerAuth
func CreateStoreHandler(w http.ResponseWriter, r *http.Request) {
	var req StoreRequest
	var logoPath string
	if isMultipart(r) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		req = StoreRequest{Name: r.FormValue("name"), Address: r.FormValue("address")}
		var err error
		if logoPath, err = saveUpload(r, "logo", "store_logos"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "store name is required", http.StatusBadRequest)
		return
	}

	created, err := storeRepo.Create(models.Store{
		Name:     strings.TrimSpace(req.Name),
		Address:  req.Address,
		LogoPath: logoPath,
	})
	if err != nil {
		http.Error(w, "could not create store", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetBlogPostsHandler godoc
// @Summary List blog posts, newest first
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /blog [get]
func GetBlogPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := blogRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch blog posts", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// GetBlogPostByIDHandler godoc
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {string} string "Not found"
// @Router /blog/{id} [get]
func GetBlogPostByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrBlogPostNotFound) {
			http.Error(w, "blog post not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch blog post", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// CreateBlogPostHandler godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Success 201 {object} models.BlogPost
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Duplicate slug"
// @Router /dashboard/blog [post]
// @Security BearerAuth
func CreateBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	var req BlogPostRequest
	var imagePath string
	if isMultipart(r) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		req = BlogPostRequest{
			Category: r.FormValue("category"),
			Title:    r.FormValue("title"),
			Slug:     r.FormValue("slug"),
			Content:  r.FormValue("content"),
			ReadTime: r.FormValue("read_time"),
		}
		var err error
		if imagePath, err = saveUpload(r, "image", "blog"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" {
		http.Error(w, "title and slug are required", http.StatusBadRequest)
		return
	}

	created, err := blogRepo.Create(models.BlogPost{
		Category:  req.Category,
		Title:     strings.TrimSpace(req.Title),
		Slug:      strings.TrimSpace(req.Slug),
		Content:   req.Content,
		ImagePath: imagePath,
		ReadTime:  req.ReadTime,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "slug already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create blog post", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
