package handlers

import "testing"

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name   string
		req    ProductRequest
		fields []string
	}{
		{
			name:   "valid product",
			req:    ProductRequest{Name: "Laptop", Price: 10, StockQuantity: 5},
			fields: nil,
		},
		{
			name:   "two-character name is the minimum",
			req:    ProductRequest{Name: "Go", Price: 1, StockQuantity: 0},
			fields: nil,
		},
		{
			name:   "zero stock is allowed",
			req:    ProductRequest{Name: "Sold Out", Price: 1, StockQuantity: 0},
			fields: nil,
		},
		{
			name:   "whitespace does not count towards the name length",
			req:    ProductRequest{Name: "  a  ", Price: 1, StockQuantity: 1},
			fields: []string{"Name"},
		},
		{
			name:   "a single multibyte rune is still too short",
			req:    ProductRequest{Name: "é", Price: 1, StockQuantity: 1},
			fields: []string{"Name"},
		},
		{
			name:   "two multibyte runes meet the minimum",
			req:    ProductRequest{Name: "éé", Price: 1, StockQuantity: 1},
			fields: nil,
		},
		{
			name:   "free products are rejected",
			req:    ProductRequest{Name: "Freebie", Price: 0, StockQuantity: 1},
			fields: []string{"Price"},
		},
		{
			name:   "all violations are accumulated",
			req:    ProductRequest{Name: "x", Price: -2, StockQuantity: -1, Status: "bogus"},
			fields: []string{"Name", "Price", "StockQuantity", "Status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateProduct(tt.req)
			if len(got) != len(tt.fields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.fields), len(got), got)
			}
			for i, field := range tt.fields {
				if got[i].Field != field {
					t.Errorf("error %d: expected field %q, got %q", i, field, got[i].Field)
				}
			}
		})
	}
}
