package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// ValidateNumberRange checks that value is finite and lies in [minInclusive; maxInclusive].
func ValidateNumberRange(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return apperrors.NewValidationError(name, "value is not a finite number")
	}
	if value < minInclusive || value > maxInclusive {
		return apperrors.NewValidationError(name,
			fmt.Sprintf("Please enter a positive value between %v and %v.", minInclusive, maxInclusive))
	}
	return nil
}

// ValidateIntRange checks that value lies in [minInclusive; maxInclusive].
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return apperrors.NewValidationError(name,
			fmt.Sprintf("Please enter a positive integer value between %d and %d.", minInclusive, maxInclusive))
	}
	return nil
}

// CheckPrincipal checks the borrowed amount.
func CheckPrincipal(cfg *config.Config, principal decimal.Decimal) error {
	lo := decimal.NewFromFloat(cfg.MinPrincipal)
	hi := decimal.NewFromFloat(cfg.MaxPrincipal)
	if principal.LessThan(lo) || principal.GreaterThan(hi) || !principal.IsPositive() {
		return apperrors.NewValidationError("principal",
			fmt.Sprintf("Please enter a positive value between %s and %s.", lo.String(), hi.String()))
	}
	return nil
}

// CheckRate checks the annual percentage rate.
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumberRange("annual_rate_percent", rate, cfg.MinRate, cfg.MaxRate)
}

// CheckTermYears checks the loan term.
func CheckTermYears(cfg *config.Config, years int) error {
	return ValidateIntRange("term_years", years, cfg.MinTermYears, cfg.MaxTermYears)
}

// ValidateLoanInput runs every range check and joins the failures.
func ValidateLoanInput(cfg *config.Config, input amortization.LoanInput) error {
	return errors.Join(
		CheckPrincipal(cfg, input.Principal),
		CheckRate(cfg, input.AnnualRatePercent),
		CheckTermYears(cfg, input.TermYears),
	)
}
