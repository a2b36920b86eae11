package asset

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Asset is an account money moves in and out of (cash, bank card, ...).
type Asset struct {
	Id        ulid.ULID `json:"id"`
	OwnerId   ulid.ULID `json:"ownerId"`
	Name      string    `json:"name"`
	IconRef   string    `json:"iconRef"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
