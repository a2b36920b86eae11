package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Lookup resolves category nodes by id. Implementations translate a
// missing row into appErrors.ErrCategoryNotFound; the aggregation layer
// treats that as a data-integrity fault, never as an empty result.
type Lookup interface {
	Get(ctx context.Context, id ulid.ULID) (*Category, error)
	// GetParent returns the root ancestor of the given leaf category.
	GetParent(ctx context.Context, id ulid.ULID) (*Category, error)
}

// Repository extends Lookup with the listing operations the HTTP layer
// uses.
type Repository interface {
	Lookup
	List(ctx context.Context) ([]*Category, error)
	ListChildren(ctx context.Context, parentID ulid.ULID) ([]*Category, error)
}

// IconResolver turns a stored icon reference into a serveable URL.
type IconResolver interface {
	Resolve(ref string) string
}
