package dto

import "testing"

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestProductSearchFilter_HasFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter ProductSearchFilter
		want   bool
	}{
		{name: "empty filter", filter: ProductSearchFilter{}, want: false},
		{name: "search text", filter: ProductSearchFilter{Search: "camiseta"}, want: true},
		{name: "category", filter: ProductSearchFilter{Category: "Ropa"}, want: true},
		{name: "brand", filter: ProductSearchFilter{Brand: "SportCo"}, want: true},
		{name: "min price", filter: ProductSearchFilter{MinPrice: floatPtr(10)}, want: true},
		{name: "max price", filter: ProductSearchFilter{MaxPrice: floatPtr(50)}, want: true},
		{name: "in stock true", filter: ProductSearchFilter{InStock: boolPtr(true)}, want: true},
		{name: "in stock false still counts", filter: ProductSearchFilter{InStock: boolPtr(false)}, want: true},
		{name: "tags", filter: ProductSearchFilter{Tags: []string{"deporte"}}, want: true},
		{name: "empty tag list does not count", filter: ProductSearchFilter{Tags: []string{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.HasFilters(); got != tt.want {
				t.Errorf("HasFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageRequest_Window(t *testing.T) {
	page := PageRequest{Page: 3, Size: 25}
	if page.Skip() != 75 {
		t.Errorf("Skip() = %d, want 75", page.Skip())
	}
	if page.Limit() != 25 {
		t.Errorf("Limit() = %d, want 25", page.Limit())
	}
}
