package dto

import (
	"testing"

	"github.com/ecommerce-catalog/catalog-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestToProductResponse(t *testing.T) {
	t.Run("nil record maps to nil", func(t *testing.T) {
		require.Nil(t, ToProductResponse(nil))
	})

	t.Run("discounted product reports percentage", func(t *testing.T) {
		product := domain.Product{
			ID:       "p-001",
			Name:     "Camiseta Deportiva",
			Category: "Ropa",
			Brand:    "SportCo",
			Price:    20.00,
			OldPrice: floatPtr(25.00),
			Stock:    intPtr(3),
			Tags:     []string{"deporte", "verano"},
		}

		resp := ToProductResponse(&product)
		require.NotNil(t, resp)
		assert.Equal(t, "p-001", resp.ID)
		assert.True(t, resp.Available)
		require.NotNil(t, resp.DiscountPercentage)
		assert.Equal(t, 20, *resp.DiscountPercentage)
	})

	t.Run("discount percentage omitted without discount", func(t *testing.T) {
		product := domain.Product{ID: "p-002", Price: 39.99, Stock: intPtr(12)}

		resp := ToProductResponse(&product)
		require.NotNil(t, resp)
		assert.Nil(t, resp.DiscountPercentage)
		assert.True(t, resp.Available)
	})

	t.Run("absent stock means unavailable", func(t *testing.T) {
		product := domain.Product{ID: "p-008", Price: 27.50}

		resp := ToProductResponse(&product)
		require.NotNil(t, resp)
		assert.False(t, resp.Available)
		assert.Nil(t, resp.Stock)
	})
}

func TestToPageResponse(t *testing.T) {
	products := []domain.Product{
		{ID: "p-001", Price: 20.00},
		{ID: "p-002", Price: 39.99},
	}

	tests := []struct {
		name           string
		page           int
		size           int
		total          int64
		wantTotalPages int
		wantFirst      bool
		wantLast       bool
	}{
		{name: "first of many", page: 0, size: 2, total: 10, wantTotalPages: 5, wantFirst: true, wantLast: false},
		{name: "middle page", page: 2, size: 2, total: 10, wantTotalPages: 5, wantFirst: false, wantLast: false},
		{name: "last page", page: 4, size: 2, total: 10, wantTotalPages: 5, wantFirst: false, wantLast: true},
		{name: "partial last page rounds up", page: 0, size: 20, total: 2, wantTotalPages: 1, wantFirst: true, wantLast: true},
		{name: "uneven total rounds up", page: 0, size: 3, total: 10, wantTotalPages: 4, wantFirst: true, wantLast: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ToPageResponse(products, tt.page, tt.size, tt.total)
			assert.Len(t, resp.Content, len(products))
			assert.Equal(t, tt.page, resp.Page)
			assert.Equal(t, tt.size, resp.Size)
			assert.Equal(t, tt.total, resp.TotalElements)
			assert.Equal(t, tt.wantTotalPages, resp.TotalPages)
			assert.Equal(t, tt.wantFirst, resp.First)
			assert.Equal(t, tt.wantLast, resp.Last)
		})
	}

	t.Run("empty result set", func(t *testing.T) {
		resp := ToPageResponse(nil, 0, 20, 0)
		assert.NotNil(t, resp.Content)
		assert.Empty(t, resp.Content)
		assert.Equal(t, 0, resp.TotalPages)
		assert.True(t, resp.First)
		assert.True(t, resp.Last)
	})
}
