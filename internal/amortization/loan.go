package amortization

import "fmt"

// LoanSchedule is a loan reduced to the integer and rate values the generator works with.
type LoanSchedule struct {
	PrincipalCents      int64
	AnnualRatePercent   float64
	MonthlyRate         float64
	TermMonths          int
	MonthlyPaymentCents int64
}

// NewLoanSchedule converts input and derives the monthly payment.
// Range checks are the caller's job; only a degenerate payment is rejected here.
func NewLoanSchedule(input LoanInput) (*LoanSchedule, error) {
	s := &LoanSchedule{
		PrincipalCents:    ToCents(input.Principal),
		AnnualRatePercent: input.AnnualRatePercent,
		MonthlyRate:       MonthlyRate(input.AnnualRatePercent),
		TermMonths:        TermMonths(input.TermYears),
	}

	payment, err := ComputeMonthlyPayment(s.PrincipalCents, s.MonthlyRate, s.TermMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to build loan schedule: %w", err)
	}
	s.MonthlyPaymentCents = payment

	return s, nil
}

// LineItems generates the full schedule for s.
func (s *LoanSchedule) LineItems() ([]LineItem, error) {
	return GenerateSchedule(s.PrincipalCents, s.MonthlyRate, s.TermMonths, s.MonthlyPaymentCents)
}

// Summarize aggregates the rows produced by s.
func (s *LoanSchedule) Summarize(items []LineItem) Summary {
	summary := Summary{
		PrincipalCents:      s.PrincipalCents,
		AnnualRatePercent:   s.AnnualRatePercent,
		TermMonths:          s.TermMonths,
		MonthlyPaymentCents: s.MonthlyPaymentCents,
	}
	if len(items) == 0 {
		return summary
	}

	last := items[len(items)-1]
	summary.Payments = last.PaymentNumber
	summary.FinalPaymentCents = last.PaymentAmountCents
	summary.TotalPaidCents = last.TotalPaidCents
	summary.TotalInterestCents = last.TotalInterestCents
	return summary
}
