package bill_test

import (
	"testing"

	"github.com/Memoyu/Mbill/internal/domain/bill"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		want    bill.Sort
		wantErr bool
	}{
		{
			name: "empty defaults to time descending",
			expr: "",
			want: bill.Sort{Field: bill.SortByTime, Direction: bill.SortDesc},
		},
		{
			name: "dash separated",
			expr: "amount-ASC",
			want: bill.Sort{Field: bill.SortByAmount, Direction: bill.SortAsc},
		},
		{
			name: "space separated",
			expr: "time DESC",
			want: bill.Sort{Field: bill.SortByTime, Direction: bill.SortDesc},
		},
		{
			name: "field only keeps default direction",
			expr: "amount",
			want: bill.Sort{Field: bill.SortByAmount, Direction: bill.SortDesc},
		},
		{
			name: "mixed case normalized",
			expr: "Time-desc",
			want: bill.Sort{Field: bill.SortByTime, Direction: bill.SortDesc},
		},
		{
			name:    "unknown field rejected",
			expr:    "category-ASC",
			wantErr: true,
		},
		{
			name:    "unknown direction rejected",
			expr:    "time-SIDEWAYS",
			wantErr: true,
		},
		{
			name:    "too many tokens rejected",
			expr:    "time-ASC-DESC",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bill.ParseSort(tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSort(%q) expected error, got %+v", tt.expr, got)
				}
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != "VALIDATION_ERROR" {
					t.Fatalf("ParseSort(%q) error = %v, want VALIDATION_ERROR", tt.expr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSort(%q) unexpected error: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSort(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}
