package service

import (
	"context"

	"github.com/ecommerce-catalog/catalog-service/internal/dto"
)

type ProductService interface {
	FindByID(ctx context.Context, id string) (product *dto.ProductResponse, err error)
	SearchProducts(ctx context.Context, filter dto.ProductSearchFilter, page int, size int, sortBy string, sortDirection string) (result dto.PageResponse, err error)
	GetCategories(ctx context.Context) (categories []string, err error)
	GetBrands(ctx context.Context) (brands []string, err error)
}
