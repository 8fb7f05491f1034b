// Package console reads loan parameters interactively.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/validators"
	"github.com/shopspring/decimal"
)

const (
	promptAmount = "Please enter the amount you would like to borrow: "
	promptRate   = "Please enter the annual percentage rate used to repay the loan: "
	promptTerm   = "Please enter the term, in years, over which the loan is repaid: "

	invalidValue = "An invalid value was entered.\n"
)

// ErrInputClosed is returned when the input ends before all values were read.
var ErrInputClosed = errors.New("input closed before all values were entered")

// Prompter asks for loan parameters until each one parses and passes range validation.
type Prompter struct {
	cfg     *config.Config
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(cfg *config.Config, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		cfg:     cfg,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLoanInput prompts for amount, APR and term in that order.
func (p *Prompter) ReadLoanInput() (amortization.LoanInput, error) {
	var input amortization.LoanInput

	err := p.ask(promptAmount, func(line string) error {
		amount, err := decimal.NewFromString(line)
		if err != nil {
			return err
		}
		if err := validators.CheckPrincipal(p.cfg, amount); err != nil {
			return err
		}
		input.Principal = amount
		return nil
	})
	if err != nil {
		return input, err
	}

	err = p.ask(promptRate, func(line string) error {
		rate, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return err
		}
		if err := validators.CheckRate(p.cfg, rate); err != nil {
			return err
		}
		input.AnnualRatePercent = rate
		return nil
	})
	if err != nil {
		return input, err
	}

	err = p.ask(promptTerm, func(line string) error {
		years, err := strconv.Atoi(line)
		if err != nil {
			return err
		}
		if err := validators.CheckTermYears(p.cfg, years); err != nil {
			return err
		}
		input.TermYears = years
		return nil
	})
	return input, err
}

// ask repeats prompt until accept succeeds on a line of input.
func (p *Prompter) ask(prompt string, accept func(line string) error) error {
	for {
		fmt.Fprint(p.out, prompt)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return ErrInputClosed
		}

		err := accept(strings.TrimSpace(p.scanner.Text()))
		if err == nil {
			return nil
		}

		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprint(p.out, vErr.Message+" ")
		}
		fmt.Fprint(p.out, invalidValue)
	}
}
