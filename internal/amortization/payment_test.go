package amortization

import (
	"errors"
	"testing"

	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthlyPayment(t *testing.T) {
	tests := []struct {
		name           string
		principalCents int64
		annualRate     float64
		termMonths     int
		want           int64
		wantErr        error
	}{
		{
			name:           "six percent one year",
			principalCents: 1000000,
			annualRate:     6,
			termMonths:     12,
			want:           86066,
		},
		{
			name:           "thirty year mortgage",
			principalCents: 10000000,
			annualRate:     5,
			termMonths:     360,
			want:           53682,
		},
		{
			name:           "five year car loan",
			principalCents: 2000000,
			annualRate:     7.5,
			termMonths:     60,
			want:           40076,
		},
		{
			name:           "zero rate divides evenly",
			principalCents: 100000,
			annualRate:     0,
			termMonths:     10,
			want:           10000,
		},
		{
			name:           "zero rate rounds to nearest cent",
			principalCents: 1000,
			annualRate:     0,
			termMonths:     7,
			want:           143,
		},
		{
			name:           "tiny principal rounds to zero",
			principalCents: 1,
			annualRate:     6,
			termMonths:     12,
			want:           0,
		},
		{
			name:           "payment above principal is degenerate",
			principalCents: 100,
			annualRate:     1000,
			termMonths:     1,
			wantErr:        apperrors.ErrDegenerateLoan,
		},
		{
			name:           "payment equal to principal is degenerate",
			principalCents: 100000,
			annualRate:     0,
			termMonths:     1,
			wantErr:        apperrors.ErrDegenerateLoan,
		},
		{
			name:           "non-positive principal",
			principalCents: 0,
			annualRate:     6,
			termMonths:     12,
			wantErr:        apperrors.ErrInvalidInput,
		},
		{
			name:           "non-positive term",
			principalCents: 100000,
			annualRate:     6,
			termMonths:     0,
			wantErr:        apperrors.ErrInvalidInput,
		},
		{
			name:           "negative rate",
			principalCents: 100000,
			annualRate:     -1,
			termMonths:     12,
			wantErr:        apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMonthlyPayment(tt.principalCents, MonthlyRate(tt.annualRate), tt.termMonths)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeMonthlyPaymentHighRateLongTerm(t *testing.T) {
	// 1000% over a year still amortizes: the payment stays below the principal.
	got, err := ComputeMonthlyPayment(100, MonthlyRate(1000), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(83), got)
}
