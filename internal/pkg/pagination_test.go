package pkg_test

import (
	"testing"

	"github.com/Memoyu/Mbill/internal/pkg"
)

func TestNormalizePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        *pkg.PaginationParams
		wantPage  int
		wantLimit int
	}{
		{name: "nil defaults", in: nil, wantPage: 1, wantLimit: 10},
		{name: "zero page", in: &pkg.PaginationParams{Page: 0, Limit: 20}, wantPage: 1, wantLimit: 20},
		{name: "zero limit", in: &pkg.PaginationParams{Page: 3, Limit: 0}, wantPage: 3, wantLimit: 10},
		{name: "limit capped", in: &pkg.PaginationParams{Page: 1, Limit: 500}, wantPage: 1, wantLimit: 100},
		{name: "valid passes through", in: &pkg.PaginationParams{Page: 2, Limit: 25}, wantPage: 2, wantLimit: 25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pkg.NormalizePagination(tt.in)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Fatalf("NormalizePagination = {Page: %d, Limit: %d}, want {Page: %d, Limit: %d}",
					got.Page, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPaginatedResponseTotalPages(t *testing.T) {
	t.Parallel()

	resp := pkg.NewPaginatedResponse([]int{1, 2, 3}, 1, 10, 23)
	if resp.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", resp.TotalPages)
	}

	empty := pkg.NewPaginatedResponse([]int{}, 1, 10, 0)
	if empty.TotalPages != 1 {
		t.Fatalf("TotalPages for empty set = %d, want 1", empty.TotalPages)
	}

	if offset := (&pkg.PaginationParams{Page: 3, Limit: 10}).Offset(); offset != 20 {
		t.Fatalf("Offset = %d, want 20", offset)
	}
}
