package amortization

import "github.com/shopspring/decimal"

// LoanInput holds validated user input in major currency units.
type LoanInput struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent float64         `json:"annual_rate_percent"`
	TermYears         int             `json:"term_years"`
}

// LineItem is one row of an amortization schedule. Monetary fields are in cents.
type LineItem struct {
	PaymentNumber        int   `json:"payment_number"`
	PaymentAmountCents   int64 `json:"payment_amount_cents"`
	InterestPortionCents int64 `json:"interest_portion_cents"`
	BalanceCents         int64 `json:"balance_cents"`
	TotalPaidCents       int64 `json:"total_paid_cents"`
	TotalInterestCents   int64 `json:"total_interest_cents"`
}

// Summary aggregates a generated schedule.
type Summary struct {
	PrincipalCents      int64   `json:"principal_cents"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	TermMonths          int     `json:"term_months"`
	MonthlyPaymentCents int64   `json:"monthly_payment_cents"`
	Payments            int     `json:"payments"`
	FinalPaymentCents   int64   `json:"final_payment_cents"`
	TotalPaidCents      int64   `json:"total_paid_cents"`
	TotalInterestCents  int64   `json:"total_interest_cents"`
}
