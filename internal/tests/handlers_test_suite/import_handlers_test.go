package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/storefront-api/internal/http"
	handler "github.com/rogerio-castellano/storefront-api/internal/http/handlers"
)

func importCSV(r http.Handler, csvContent, query string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/dashboard/products/import"+query, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProducts(t *testing.T) {
	clearAllProducts()
	r := api.NewRouter()

	csvContent := "name,description,price,category,stock_quantity,status\n" +
		"Green Tea,loose leaf,4.5,drinks,120,active\n" +
		"Black Tea,strong blend,4.0,drinks,90,draft\n"

	w := importCSV(r, csvContent, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported products, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}

	products, _ := productRepo.GetAll()
	if len(products) != 2 {
		t.Fatalf("expected 2 stored products, got %d", len(products))
	}
}

func TestImportProductsSkipMode(t *testing.T) {
	clearAllProducts()
	r := api.NewRouter()

	if w := createProduct(r, handler.ProductRequest{Name: "Green Tea", Price: 9, StockQuantity: 10}); w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d", w.Code)
	}

	csvContent := "name,description,price,category,stock_quantity\n" +
		"Green Tea,loose leaf,4.5,drinks,120\n" +
		"White Tea,delicate,6.0,drinks,30\n"

	w := importCSV(r, csvContent, "")
	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported product in skip mode, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 skipped-row error, got %v", result.Errors)
	}

	existing, err := productRepo.GetByName("Green Tea")
	if err != nil {
		t.Fatalf("expected Green Tea to still exist: %v", err)
	}
	if existing.Price != 9 {
		t.Errorf("expected the existing product to be untouched, got price %v", existing.Price)
	}
}

func TestImportProductsUpdateMode(t *testing.T) {
	clearAllProducts()
	r := api.NewRouter()

	if w := createProduct(r, handler.ProductRequest{Name: "Green Tea", Price: 9, StockQuantity: 10}); w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 Created, got %d", w.Code)
	}

	csvContent := "name,description,price,category,stock_quantity\n" +
		"Green Tea,loose leaf,4.5,drinks,120\n"

	w := importCSV(r, csvContent, "?mode=update")
	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 updated product, got %d", result.ImportedProductsCount)
	}

	updated, err := productRepo.GetByName("Green Tea")
	if err != nil {
		t.Fatalf("expected Green Tea to exist: %v", err)
	}
	if updated.Price != 4.5 || updated.StockQuantity != 120 {
		t.Errorf("expected the product to be updated, got %+v", updated)
	}
}

func TestImportProductsRowValidation(t *testing.T) {
	clearAllProducts()
	r := api.NewRouter()

	csvContent := "name,description,price,category,stock_quantity\n" +
		"Valid Item,fine,2.5,misc,10\n" +
		"Bad Item,free,0,misc,10\n" +
		"Worse Item,negative stock,3,misc,-4\n" +
		"é,single-rune name,3,misc,5\n" +
		"Чай,two runes are enough,3,misc,5\n"

	w := importCSV(r, csvContent, "")
	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported products, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 row errors, got %v", result.Errors)
	}
}

func TestImportProductsMissingColumn(t *testing.T) {
	clearAllProducts()
	r := api.NewRouter()

	csvContent := "name,description,category\nOrphan,no price,misc\n"
	w := importCSV(r, csvContent, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 Bad Request, got %d: %s", w.Code, w.Body.String())
	}
}

func TestImportProductsMissingFile(t *testing.T) {
	clearAllProducts()
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/dashboard/products/import", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 Bad Request, got %d", w.Code)
	}
}
