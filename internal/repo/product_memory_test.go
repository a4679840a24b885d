package repo

import (
	"fmt"
	"testing"

	"github.com/rogerio-castellano/storefront-api/internal/models"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  int
	}{
		{name: "zero page serves page one", page: 0, total: 25, want: 1},
		{name: "negative page serves page one", page: -3, total: 25, want: 1},
		{name: "valid page passes through", page: 2, total: 25, want: 2},
		{name: "page past the end clamps to the last page", page: 9, total: 25, want: 3},
		{name: "empty result set serves page one", page: 4, total: 0, want: 1},
		{name: "exact multiple of the page size", page: 3, total: 20, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.total); got != tt.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
			}
		})
	}
}

func TestInMemoryFilter(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed := []models.Product{
		{Name: "Apple Juice", Description: "pressed fruit drink", Category: "drinks", Status: models.StatusActive, IsActive: true},
		{Name: "Orange Juice", Description: "citrus drink", Category: "drinks", Status: models.StatusActive, IsActive: true},
		{Name: "Pineapple Slices", Description: "canned fruit", Category: "canned", Status: models.StatusDraft},
	}
	for _, p := range seed {
		if _, err := r.Create(p); err != nil {
			t.Fatalf("seeding failed: %v", err)
		}
	}

	t.Run("search spans name, description and category", func(t *testing.T) {
		got, total, _, err := r.Filter(ProductFilter{Search: "JUICE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 2 || len(got) != 2 {
			t.Fatalf("expected 2 matches, got total=%d len=%d", total, len(got))
		}
		if got[0].Name != "Orange Juice" || got[1].Name != "Apple Juice" {
			t.Errorf("expected newest first, got %q then %q", got[0].Name, got[1].Name)
		}
	})

	t.Run("status narrows the match", func(t *testing.T) {
		got, total, _, err := r.Filter(ProductFilter{Search: "fruit", Status: models.StatusDraft})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 || got[0].Name != "Pineapple Slices" {
			t.Errorf("expected only the draft product, got %+v", got)
		}
	})

	t.Run("served page is reported", func(t *testing.T) {
		_, _, served, err := r.Filter(ProductFilter{Page: 42})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if served != 1 {
			t.Errorf("expected the clamped page 1, got %d", served)
		}
	})
}

func TestInMemoryFilterPagination(t *testing.T) {
	r := NewInMemoryProductRepository()
	for i := 1; i <= PageSize+4; i++ {
		_, err := r.Create(models.Product{Name: fmt.Sprintf("Item %02d", i), Status: models.StatusActive})
		if err != nil {
			t.Fatalf("seeding failed: %v", err)
		}
	}

	got, total, served, err := r.Filter(ProductFilter{Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != PageSize+4 {
		t.Errorf("expected total %d, got %d", PageSize+4, total)
	}
	if served != 2 {
		t.Errorf("expected served page 2, got %d", served)
	}
	if len(got) != 4 {
		t.Errorf("expected 4 items on the last page, got %d", len(got))
	}
}

func TestInMemoryToggleActive(t *testing.T) {
	r := NewInMemoryProductRepository()
	created, err := r.Create(models.Product{Name: "Switchable", Status: models.StatusActive, IsActive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	toggled, err := r.ToggleActive(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.IsActive {
		t.Error("expected the flag to flip to false")
	}

	restored, err := r.ToggleActive(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !restored.IsActive {
		t.Error("expected a second toggle to restore the flag")
	}

	if _, err := r.ToggleActive(9999); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
