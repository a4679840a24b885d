package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront-api/internal/models"
	"github.com/rogerio-castellano/storefront-api/internal/repo"
)

func TestSummaryBodyListsProductsStillBelowThreshold(t *testing.T) {
	r := repo.NewInMemoryProductRepository()
	r.Create(models.Product{Name: "Nearly Gone", StockQuantity: 2, Status: models.StatusActive, IsActive: true})
	r.Create(models.Product{Name: "Well Stocked", StockQuantity: 500, Status: models.StatusActive, IsActive: true})

	SetProductRepo(r)
	defer SetProductRepo(nil)
	lowStockThreshold = 10

	logs := []LowStockEntry{
		{ProductID: 1, Name: "Nearly Gone", Stock: 2, Time: time.Now()},
	}
	body := summaryBody(logs)

	if !strings.Contains(body, "Still Below Threshold") {
		t.Fatal("expected the summary to carry a current low-stock section")
	}
	if !strings.Contains(body, "Nearly Gone") {
		t.Error("expected the low-stock product in the summary")
	}
	if strings.Contains(body, "Well Stocked") {
		t.Error("did not expect a sufficiently stocked product in the summary")
	}
	if !strings.Contains(body, "Total events: <strong>1</strong>") {
		t.Errorf("expected the event count in the summary, got: %s", body)
	}
}

func TestSummaryBodyWithoutRepo(t *testing.T) {
	SetProductRepo(nil)

	body := summaryBody(nil)
	if strings.Contains(body, "Still Below Threshold") {
		t.Error("expected no current low-stock section without a repository")
	}
}
