package bill

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeExpense   Type = "expense"
	TypeIncome    Type = "income"
	TypeRepayment Type = "repayment"
	TypeTransfer  Type = "transfer"
)

func (t Type) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeRepayment, TypeTransfer:
		return true
	}
	return false
}

// Bill is a single recorded monetary transaction. CategoryId is nil for
// transfer and repayment bills; TargetAssetId is set only for
// transfers. Deleted bills are excluded from every query and
// aggregation.
type Bill struct {
	Id            ulid.ULID       `json:"id"`
	OwnerId       ulid.ULID       `json:"ownerId"`
	Time          time.Time       `json:"time"`
	Type          Type            `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryId    *ulid.ULID      `json:"categoryId"`
	AssetId       ulid.ULID       `json:"assetId"`
	TargetAssetId *ulid.ULID      `json:"targetAssetId"`
	Description   string          `json:"description"`
	Deleted       bool            `json:"-"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
