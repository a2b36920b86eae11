package pkg_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Memoyu/Mbill/internal/pkg"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "zero", in: "0", want: "0.00"},
		{name: "small", in: "12.5", want: "12.50"},
		{name: "hundreds", in: "999.99", want: "999.99"},
		{name: "thousands", in: "1234.56", want: "1,234.56"},
		{name: "exact grouping boundary", in: "100000", want: "100,000.00"},
		{name: "millions", in: "1234567.891", want: "1,234,567.89"},
		{name: "negative", in: "-98765.4", want: "-98,765.40"},
		{name: "negative thousands boundary", in: "-1000", want: "-1,000.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			if err != nil {
				t.Fatalf("bad fixture %q: %v", tt.in, err)
			}
			if got := pkg.FormatAmount(d); got != tt.want {
				t.Fatalf("FormatAmount(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
