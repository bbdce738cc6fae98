package repository

import (
	"context"

	"github.com/ecommerce-catalog/catalog-service/internal/domain"
	"github.com/ecommerce-catalog/catalog-service/internal/dto"
)

// ProductRepository is the persistence contract of the catalog. A missing
// record is signalled by a nil product, never by an error; errors always
// mean the storage layer itself failed.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (product *domain.Product, err error)
	FindAll(ctx context.Context, page dto.PageRequest) (data []domain.Product, total int64, err error)
	FindByFilters(ctx context.Context, filter dto.ProductSearchFilter, page dto.PageRequest) (data []domain.Product, total int64, err error)
	FindDistinctCategories(ctx context.Context) (categories []string, err error)
	FindDistinctBrands(ctx context.Context) (brands []string, err error)
	Save(ctx context.Context, data domain.Product) (err error)
	SaveAll(ctx context.Context, data []domain.Product) (err error)
	Count(ctx context.Context) (count int64, err error)
	DeleteAll(ctx context.Context) (err error)
}
