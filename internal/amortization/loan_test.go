package amortization

import (
	"errors"
	"testing"

	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanSchedule(t *testing.T) {
	s, err := NewLoanSchedule(LoanInput{
		Principal:         decimal.NewFromInt(10000),
		AnnualRatePercent: 6,
		TermYears:         1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000000), s.PrincipalCents)
	assert.InDelta(t, 0.005, s.MonthlyRate, 1e-15)
	assert.Equal(t, 12, s.TermMonths)
	assert.Equal(t, int64(86066), s.MonthlyPaymentCents)

	items, err := s.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 13)

	summary := s.Summarize(items)
	assert.Equal(t, Summary{
		PrincipalCents:      1000000,
		AnnualRatePercent:   6,
		TermMonths:          12,
		MonthlyPaymentCents: 86066,
		Payments:            12,
		FinalPaymentCents:   86070,
		TotalPaidCents:      1032796,
		TotalInterestCents:  32796,
	}, summary)
}

func TestNewLoanScheduleDegenerate(t *testing.T) {
	// An absurd APR makes even a twelve month payment exceed one cent of principal.
	_, err := NewLoanSchedule(LoanInput{
		Principal:         decimal.RequireFromString("0.01"),
		AnnualRatePercent: 100000,
		TermYears:         1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDegenerateLoan))
}

func TestSummarizeEmpty(t *testing.T) {
	s := &LoanSchedule{PrincipalCents: 100, TermMonths: 12}
	summary := s.Summarize(nil)
	assert.Zero(t, summary.Payments)
	assert.Equal(t, int64(100), summary.PrincipalCents)
}
