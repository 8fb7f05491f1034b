package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cloud-ru/amortization-go/internal/amortization"
)

const defaultColumnWidth = 20

// TextWriter renders a fixed-width table with left-aligned columns.
type TextWriter struct {
	ColumnWidth int
}

func NewTextWriter() *TextWriter {
	return &TextWriter{ColumnWidth: defaultColumnWidth}
}

func (t *TextWriter) WriteSchedule(w io.Writer, items []amortization.LineItem) error {
	width := t.ColumnWidth
	if width <= 0 {
		width = defaultColumnWidth
	}

	bw := bufio.NewWriter(w)
	for _, name := range Columns {
		fmt.Fprintf(bw, "%-*s", width, name)
	}
	bw.WriteString("\n")

	for _, item := range items {
		fmt.Fprintf(bw, "%-*d%-*s%-*s%-*s%-*s%-*s\n",
			width, item.PaymentNumber,
			width, FormatCents(item.PaymentAmountCents),
			width, FormatCents(item.InterestPortionCents),
			width, FormatCents(item.BalanceCents),
			width, FormatCents(item.TotalPaidCents),
			width, FormatCents(item.TotalInterestCents),
		)
	}

	return bw.Flush()
}
