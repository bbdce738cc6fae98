package service

import (
	"context"
	"strings"

	"github.com/ecommerce-catalog/catalog-service/internal/domain"
	"github.com/ecommerce-catalog/catalog-service/internal/dto"
	"github.com/ecommerce-catalog/catalog-service/internal/repository"
	"github.com/ecommerce-catalog/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const defaultPageSize = 20

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

func CreateProductService(repo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{repo: repo}
}

// FindByID is the only place that turns a missing record into a typed
// not-found error.
func (s *ProductServiceImpl) FindByID(ctx context.Context, id string) (product *dto.ProductResponse, err error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}

	if record == nil {
		return nil, errs.ProductNotFound(id)
	}

	return dto.ToProductResponse(record), nil
}

func (s *ProductServiceImpl) SearchProducts(ctx context.Context, filter dto.ProductSearchFilter, page int, size int, sortBy string, sortDirection string) (result dto.PageResponse, err error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}

	pageReq := dto.PageRequest{
		Page:     page,
		Size:     size,
		SortBy:   sortBy,
		SortDesc: strings.EqualFold(sortDirection, "desc"),
	}

	var (
		data  []domain.Product
		total int64
	)

	if filter.HasFilters() {
		data, total, err = s.repo.FindByFilters(ctx, filter, pageReq)
	} else {
		data, total, err = s.repo.FindAll(ctx, pageReq)
	}

	if err != nil {
		return
	}

	log.Ctx(ctx).Debug().Int64("total", total).Msg("products found")

	return dto.ToPageResponse(data, page, size, total), nil
}

func (s *ProductServiceImpl) GetCategories(ctx context.Context) (categories []string, err error) {
	return s.repo.FindDistinctCategories(ctx)
}

func (s *ProductServiceImpl) GetBrands(ctx context.Context) (brands []string, err error) {
	return s.repo.FindDistinctBrands(ctx)
}
