package asset

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Lookup resolves assets by id. A missing row surfaces as
// appErrors.ErrAssetNotFound.
type Lookup interface {
	Get(ctx context.Context, id ulid.ULID) (*Asset, error)
}

type Repository interface {
	Lookup
	ListByOwner(ctx context.Context, ownerID ulid.ULID) ([]*Asset, error)
}
