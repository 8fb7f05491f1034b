package report

import (
	"encoding/json"
	"io"

	"github.com/cloud-ru/amortization-go/internal/amortization"
)

// Money is an amount in cents that renders in major units with two decimals.
type Money int64

func (m Money) String() string {
	return FormatCents(int64(m))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Row is a LineItem in major currency units.
type Row struct {
	PaymentNumber     int   `json:"payment_number"`
	PaymentAmount     Money `json:"payment_amount"`
	PaymentInterest   Money `json:"payment_interest"`
	CurrentBalance    Money `json:"current_balance"`
	TotalPayments     Money `json:"total_payments"`
	TotalInterestPaid Money `json:"total_interest_paid"`
}

// Rows converts line items to major-unit rows.
func Rows(items []amortization.LineItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{
			PaymentNumber:     item.PaymentNumber,
			PaymentAmount:     Money(item.PaymentAmountCents),
			PaymentInterest:   Money(item.InterestPortionCents),
			CurrentBalance:    Money(item.BalanceCents),
			TotalPayments:     Money(item.TotalPaidCents),
			TotalInterestPaid: Money(item.TotalInterestCents),
		})
	}
	return rows
}

// JSONWriter renders the schedule as a JSON array of rows.
type JSONWriter struct {
	Indent bool
}

func (j *JSONWriter) WriteSchedule(w io.Writer, items []amortization.LineItem) error {
	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(Rows(items))
}
