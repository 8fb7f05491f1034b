package amortization

import (
	"fmt"

	"github.com/cloud-ru/amortization-go/internal/apperrors"
)

// GenerateSchedule walks the balance from principalCents to zero and returns one LineItem per
// period, preceded by a synthetic row 0 describing the initial state.
//
// Generation stops once the balance reaches zero or after termMonths+1 periods. A schedule that
// is still open at that point is reported as apperrors.ErrSafetyBoundExceeded.
func GenerateSchedule(principalCents int64, monthlyRate float64, termMonths int, paymentCents int64) ([]LineItem, error) {
	maxPayments := termMonths + 1

	items := make([]LineItem, 0, max(termMonths+2, 1))
	items = append(items, LineItem{BalanceCents: principalCents})

	balance := principalCents
	paymentNumber := 1
	var totalPaid, totalInterest int64

	for balance > 0 && paymentNumber <= maxPayments {
		// interest accrues on the current balance, not the original principal
		interest := RoundCents(float64(balance) * monthlyRate)
		payoff := balance + interest

		payment := paymentCents
		if payoff < payment {
			payment = payoff
		}

		// The last scheduled period always closes the loan. This covers a level payment
		// that rounds down to zero or to interest only, and any residue left by rounding.
		if paymentNumber == termMonths {
			payment = payoff
		}

		principalPaid := payment - interest
		newBalance := balance - principalPaid

		totalPaid += payment
		totalInterest += interest

		items = append(items, LineItem{
			PaymentNumber:        paymentNumber,
			PaymentAmountCents:   payment,
			InterestPortionCents: interest,
			BalanceCents:         newBalance,
			TotalPaidCents:       totalPaid,
			TotalInterestCents:   totalInterest,
		})

		paymentNumber++
		balance = newBalance
	}

	if balance != 0 {
		return nil, fmt.Errorf("%w: balance of %d cents left after %d payments",
			apperrors.ErrSafetyBoundExceeded, balance, paymentNumber-1)
	}
	return items, nil
}
