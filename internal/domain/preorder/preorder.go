package preorder

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// PreOrder is a planned outlay recorded ahead of the bill it will
// eventually become. Year totals report its sum alongside the realized
// expense/income totals.
type PreOrder struct {
	Id        ulid.ULID       `json:"id"`
	OwnerId   ulid.ULID       `json:"ownerId"`
	Time      time.Time       `json:"time"`
	Amount    decimal.Decimal `json:"amount"`
	Name      string          `json:"name"`
	Deleted   bool            `json:"-"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
