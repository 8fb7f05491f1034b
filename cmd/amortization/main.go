// Command amortization prompts for a loan and prints its amortization schedule.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/console"
	"github.com/cloud-ru/amortization-go/internal/logging"
	"github.com/cloud-ru/amortization-go/internal/report"
)

const (
	exitOK = iota
	exitInput
	exitRejected
	exitInternal
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(exitInternal)
	}
	logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	os.Exit(run(cfg, os.Stdin, os.Stdout))
}

func run(cfg *config.Config, in io.Reader, out io.Writer) int {
	writer, err := report.New(cfg.OutputFormat)
	if err != nil {
		slog.Error("invalid output format", "error", err)
		return exitInternal
	}

	input, err := console.NewPrompter(cfg, in, out).ReadLoanInput()
	if err != nil {
		slog.Error("failed to read loan input", "error", err)
		fmt.Fprint(out, "\nUnable to read the values entered. Terminating program.\n")
		return exitInput
	}

	loan, err := amortization.NewLoanSchedule(input)
	if err != nil {
		slog.Warn("loan rejected", "reason", apperrors.Kind(err), "error", err)
		fmt.Fprint(out, "Unable to process the values entered. Terminating program.\n")
		return exitRejected
	}

	items, err := loan.LineItems()
	if err != nil {
		if errors.Is(err, apperrors.ErrSafetyBoundExceeded) {
			slog.Error("schedule did not close within its term", "payment_cents", loan.MonthlyPaymentCents,
				"term_months", loan.TermMonths, "error", err)
		}
		fmt.Fprint(out, "Unable to process the values entered. Terminating program.\n")
		return exitInternal
	}

	slog.Debug("schedule generated", "payments", len(items)-1, "payment_cents", loan.MonthlyPaymentCents)

	if err := writer.WriteSchedule(out, items); err != nil {
		slog.Error("failed to write schedule", "error", err)
		return exitInternal
	}
	return exitOK
}
