package preorder

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Store queries pre-orders. Deleted records are never returned.
type Store interface {
	QueryByYear(ctx context.Context, ownerID ulid.ULID, year int) ([]*PreOrder, error)
}
