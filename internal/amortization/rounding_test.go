package amortization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int64
	}{
		{name: "below half", input: 4594.49, want: 4594},
		{name: "above half", input: 4594.51, want: 4595},
		{name: "half rounds up", input: 2.5, want: 3},
		{name: "half rounds up on odd", input: 3.5, want: 4},
		{name: "zero", input: 0, want: 0},
		{name: "whole", input: 86066, want: 86066},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundCents(tt.input))
		})
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "whole dollars", input: "10000", want: 1000000},
		{name: "cents", input: "1234.56", want: 123456},
		{name: "sub-cent rounds up at half", input: "0.005", want: 1},
		{name: "sub-cent rounds down", input: "0.004", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCents(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestMonthlyRateAndTerm(t *testing.T) {
	assert.InDelta(t, 0.005, MonthlyRate(6), 1e-15)
	assert.Equal(t, 0.0, MonthlyRate(0))
	assert.Equal(t, 360, TermMonths(30))
}
