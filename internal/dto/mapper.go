package dto

import "github.com/ecommerce-catalog/catalog-service/internal/domain"

// ToProductResponse converts a domain record to its wire shape. The
// discount percentage is reported only when a discount actually exists;
// otherwise the field is omitted from the payload entirely.
func ToProductResponse(product *domain.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	resp := &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Brand:       product.Brand,
		Price:       product.Price,
		OldPrice:    product.OldPrice,
		Stock:       product.Stock,
		Tags:        product.Tags,
		ImageURL:    product.ImageURL,
		Available:   product.Available(),
	}

	if product.HasDiscount() {
		percentage := product.DiscountPercentage()
		resp.DiscountPercentage = &percentage
	}

	return resp
}

// ToPageResponse maps one page of records and fills in the page metadata.
func ToPageResponse(products []domain.Product, page int, size int, total int64) PageResponse {
	content := make([]ProductResponse, 0, len(products))
	for i := range products {
		content = append(content, *ToProductResponse(&products[i]))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PageResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page == totalPages-1 || totalPages == 0,
	}
}
