package amortization

import (
	"fmt"
	"math"

	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/cloud-ru/amortization-go/pkg/utils"
)

// ComputeMonthlyPayment derives the level payment that amortizes principalCents over termMonths.
//
// The payment is rounded exactly once. A payment that is not below the principal is rejected
// with apperrors.ErrDegenerateLoan.
func ComputeMonthlyPayment(principalCents int64, monthlyRate float64, termMonths int) (int64, error) {
	if principalCents <= 0 {
		return 0, apperrors.NewValidationError("principal", "must be positive")
	}
	if termMonths <= 0 {
		return 0, apperrors.NewValidationError("term", "must be positive")
	}
	if !utils.IsFinite(monthlyRate) || monthlyRate < 0 {
		return 0, apperrors.NewValidationError("annual_rate_percent", "must be a non-negative number")
	}

	p := float64(principalCents)
	n := float64(termMonths)

	var raw float64
	if monthlyRate == 0 || 1+monthlyRate == 1 {
		raw = p / n
	} else {
		raw = p * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
	}

	if !utils.IsFinite(raw) {
		return 0, fmt.Errorf("%w: monthly payment is not a finite number", apperrors.ErrDegenerateLoan)
	}

	payment := RoundCents(raw)
	if payment >= principalCents {
		return 0, fmt.Errorf("%w: monthly payment of %d cents is not below principal of %d cents",
			apperrors.ErrDegenerateLoan, payment, principalCents)
	}
	return payment, nil
}
