package bill

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// View is a bill enriched for display: category name and icon resolved,
// time reduced to the clock portion.
type View struct {
	Id           ulid.ULID       `json:"id"`
	Type         Type            `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Time         string          `json:"time"`
	Category     string          `json:"category"`
	CategoryIcon string          `json:"categoryIcon"`
	AssetId      ulid.ULID       `json:"assetId"`
	Description  string          `json:"description"`
}

// Detail is the single-bill view, additionally carrying the asset name.
type Detail struct {
	Id            ulid.ULID       `json:"id"`
	OwnerId       ulid.ULID       `json:"ownerId"`
	Type          Type            `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Time          time.Time       `json:"time"`
	Category      string          `json:"category"`
	CategoryIcon  string          `json:"categoryIcon"`
	Asset         string          `json:"asset"`
	AssetId       ulid.ULID       `json:"assetId"`
	TargetAssetId *ulid.ULID      `json:"targetAssetId"`
	Description   string          `json:"description"`
}

// DayBucket groups one calendar day's bills, newest first.
type DayBucket struct {
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
	Items   []View `json:"items"`
}

// DayCount is one calendar date with the number of bills recorded on it.
type DayCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Count int `json:"count"`
}

// MonthTotal carries the month's expense and income sums, formatted for
// display.
type MonthTotal struct {
	Expense string `json:"expense"`
	Income  string `json:"income"`
}

type YearTotal struct {
	Expense  string `json:"expense"`
	Income   string `json:"income"`
	PreOrder string `json:"preOrder"`
}

// TrendPoint is one window of an expense trend series.
type TrendPoint struct {
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
}
