package bill

import (
	"strings"

	appErrors "github.com/Memoyu/Mbill/internal/errors"
)

// Sortable fields form a closed set so caller-supplied sort expressions
// can never reach the store unvalidated.
type SortField string

const (
	SortByTime   SortField = "time"
	SortByAmount SortField = "amount"
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

type Sort struct {
	Field     SortField
	Direction SortDirection
}

func DefaultSort() Sort {
	return Sort{Field: SortByTime, Direction: SortDesc}
}

// ParseSort validates a caller-supplied sort expression of the form
// "field-direction" (the external contract uses '-' where the store
// grammar uses a space, e.g. "time-DESC"). An empty expression yields
// the default time-descending sort; anything outside the closed field
// and direction sets fails before any store query runs.
func ParseSort(expr string) (Sort, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return DefaultSort(), nil
	}

	parts := strings.Fields(strings.ReplaceAll(expr, "-", " "))

	sort := DefaultSort()
	switch len(parts) {
	case 1:
		sort.Field = SortField(strings.ToLower(parts[0]))
	case 2:
		sort.Field = SortField(strings.ToLower(parts[0]))
		sort.Direction = SortDirection(strings.ToUpper(parts[1]))
	default:
		return Sort{}, appErrors.NewValidationError("sort", "unparseable sort expression")
	}

	switch sort.Field {
	case SortByTime, SortByAmount:
	default:
		return Sort{}, appErrors.NewValidationError("sort", "unknown sort field")
	}
	switch sort.Direction {
	case SortAsc, SortDesc:
	default:
		return Sort{}, appErrors.NewValidationError("sort", "unknown sort direction")
	}

	return sort, nil
}
