package dto

type ProductResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Price              float64  `json:"price"`
	OldPrice           *float64 `json:"oldPrice,omitempty"`
	Stock              *int     `json:"stock,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	Available          bool     `json:"available"`
	DiscountPercentage *int     `json:"discountPercentage,omitempty"`
}

type PageResponse struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	First         bool              `json:"first"`
	Last          bool              `json:"last"`
}
