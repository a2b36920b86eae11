package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Memoyu/Mbill/internal/domain/bill"
	"github.com/Memoyu/Mbill/internal/pkg"
)

type BillCreateRequest struct {
	Type          string          `json:"type" binding:"required,oneof=expense income repayment transfer"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Time          time.Time       `json:"time" binding:"required"`
	CategoryId    string          `json:"categoryId" binding:"omitempty,len=26"`
	AssetId       string          `json:"assetId" binding:"required,len=26"`
	TargetAssetId string          `json:"targetAssetId" binding:"omitempty,len=26"`
	Description   string          `json:"description" binding:"omitempty,max=255"`
}

type BillUpdateRequest struct {
	Type          string          `json:"type" binding:"required,oneof=expense income repayment transfer"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Time          time.Time       `json:"time" binding:"required"`
	CategoryId    string          `json:"categoryId" binding:"omitempty,len=26"`
	AssetId       string          `json:"assetId" binding:"required,len=26"`
	TargetAssetId string          `json:"targetAssetId" binding:"omitempty,len=26"`
	Description   string          `json:"description" binding:"omitempty,max=255"`
}

type BillCreateResponse struct {
	Message string     `json:"message"`
	Bill    *bill.Bill `json:"bill"`
}

type BillUpdateResponse struct {
	Message string     `json:"message"`
	Bill    *bill.Bill `json:"bill"`
}

type BillDetailResponse struct {
	Bill *bill.Detail `json:"bill"`
}

type BillDayListResponse struct {
	Day   *bill.DayBucket `json:"day"`
	Total int             `json:"total"`
}

type BillMonthPageResponse struct {
	*pkg.PaginatedResponse[bill.DayBucket]
}

type BillDayCountsResponse struct {
	Days []bill.DayCount `json:"days"`
}
