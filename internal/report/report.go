// Package report renders amortization schedules for people and programs.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/shopspring/decimal"
)

// Column headers, in output order.
var Columns = []string{
	"PaymentNumber",
	"PaymentAmount",
	"PaymentInterest",
	"CurrentBalance",
	"TotalPayments",
	"TotalInterestPaid",
}

// Writer renders a schedule to an output stream.
type Writer interface {
	WriteSchedule(w io.Writer, items []amortization.LineItem) error
}

// New returns the Writer for format ("text" or "json").
func New(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextWriter(), nil
	case "json":
		return &JSONWriter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// ToMajor converts cents to major currency units.
func ToMajor(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders cents in major units with exactly two decimal places.
func FormatCents(cents int64) string {
	return ToMajor(cents).StringFixed(2)
}
