package bill

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Memoyu/Mbill/internal/pkg"
)

// Store is the bill persistence contract. Every query excludes deleted
// bills and applies only the filter predicates that are set.
type Store interface {
	Create(ctx context.Context, b *Bill) error
	Update(ctx context.Context, b *Bill) error
	SoftDelete(ctx context.Context, id, ownerID ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Bill, error)
	Query(ctx context.Context, f Filter, sort Sort) ([]*Bill, error)
	QueryPaged(ctx context.Context, f Filter, sort Sort, pagination *pkg.PaginationParams) ([]*Bill, int64, error)
}
