package bill

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Filter is the declarative query predicate handed to the bill store. Nil
// optional fields impose no constraint; the store must never treat a
// zero value as a filter. Deleted bills are excluded unconditionally.
type Filter struct {
	OwnerId    *ulid.ULID
	Begin      time.Time
	End        time.Time
	Type       *Type
	CategoryId *ulid.ULID
	AssetId    *ulid.ULID
}

// ListOptions are the caller-supplied optional predicates shared by the
// listing operations.
type ListOptions struct {
	Type       *Type
	CategoryId *ulid.ULID
	AssetId    *ulid.ULID
}

func (o ListOptions) apply(f *Filter) {
	f.Type = o.Type
	f.CategoryId = o.CategoryId
	f.AssetId = o.AssetId
}
