package domain_test

import (
	"testing"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		digits int32
		want   string
	}{
		{name: "converted KZT sum", in: "21", digits: 4, want: "21"},
		{name: "four digits kept above one", in: "123.456", digits: 4, want: "123.5"},
		{name: "small fraction", in: "0.0021345", digits: 4, want: "0.002135"},
		{name: "half-up at boundary", in: "123.45", digits: 4, want: "123.5"},
		{name: "large value truncates to integer scale", in: "987654.3", digits: 4, want: "987700"},
		{name: "exactly four digits unchanged", in: "12.34", digits: 4, want: "12.34"},
		{name: "zero stays zero", in: "0", digits: 4, want: "0"},
		{name: "negative rounds by absolute magnitude", in: "-123.456", digits: 4, want: "-123.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.RoundSignificant(decimal.RequireFromString(tt.in), tt.digits)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"RoundSignificant(%s, %d) = %s, want %s", tt.in, tt.digits, got, tt.want)
		})
	}
}
