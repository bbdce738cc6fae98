package dto

// ProductSearchFilter carries the optional search criteria of one request.
// Fields stay nil/empty when the caller did not supply them so that
// "absent" never collapses into "zero".
type ProductSearchFilter struct {
	Search   string   `query:"search"`
	Category string   `query:"category"`
	Brand    string   `query:"brand"`
	MinPrice *float64 `query:"minPrice"`
	MaxPrice *float64 `query:"maxPrice"`
	InStock  *bool    `query:"inStock"`
	Tags     []string `query:"tags"`
}

// HasFilters reports whether at least one criterion is set. An explicit
// inStock=false still counts as a criterion.
func (f ProductSearchFilter) HasFilters() bool {
	return f.Search != "" || f.Category != "" || f.Brand != "" ||
		f.MinPrice != nil || f.MaxPrice != nil || f.InStock != nil ||
		len(f.Tags) > 0
}

// PageRequest is the pagination and sort window of one query. Page is
// zero-based; results are unsorted unless SortBy is non-empty.
type PageRequest struct {
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
}

func (p PageRequest) Skip() int64 {
	return int64(p.Page) * int64(p.Size)
}

func (p PageRequest) Limit() int64 {
	return int64(p.Size)
}
