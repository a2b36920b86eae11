package contracts

import (
	"github.com/Memoyu/Mbill/internal/domain/bill"
	"github.com/Memoyu/Mbill/internal/domain/category"
)

type MonthTotalResponse struct {
	Total *bill.MonthTotal `json:"total"`
}

type YearTotalResponse struct {
	Total *bill.YearTotal `json:"total"`
}

type ExpenseCategoryStatsResponse struct {
	Breakdown *category.Breakdown `json:"breakdown"`
}

type ExpenseTrendResponse struct {
	Points []bill.TrendPoint `json:"points"`
}
