package contracts

import "github.com/Memoyu/Mbill/internal/domain/category"

type CategoryListResponse struct {
	Categories []*category.View `json:"categories"`
	Total      int              `json:"total"`
}

type CategoryResponse struct {
	Category *category.View `json:"category"`
}
