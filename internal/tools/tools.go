package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/cloud-ru/amortization-go/internal/cache"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/metrics"
	"github.com/cloud-ru/amortization-go/internal/report"
	"github.com/cloud-ru/amortization-go/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const AmortizationScheduleTool = "amortization_schedule"

// bounds for converting term_years to int before range validation
var (
	minTermYears = decimal.NewFromInt(math.MinInt32)
	maxTermYears = decimal.NewFromInt(math.MaxInt32)
)

// ToolHandler handles one tool invocation.
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ScheduleResult is the response of the amortization_schedule tool.
type ScheduleResult struct {
	ID       uuid.UUID               `json:"id"`
	Cached   bool                    `json:"cached"`
	Summary  amortization.Summary    `json:"summary"`
	Schedule []report.Row            `json:"schedule"`
	Items    []amortization.LineItem `json:"-"`
}

type cachedSchedule struct {
	Summary amortization.Summary    `json:"summary"`
	Items   []amortization.LineItem `json:"items"`
}

func newResult(entry cachedSchedule, cached bool) *ScheduleResult {
	return &ScheduleResult{
		ID:       uuid.New(),
		Cached:   cached,
		Summary:  entry.Summary,
		Schedule: report.Rows(entry.Items),
		Items:    entry.Items,
	}
}

// AmortizationScheduleHandler validates the loan parameters, builds the schedule and caches it.
// store may be nil.
func AmortizationScheduleHandler(cfg *config.Config, tracer trace.Tracer, store cache.Cache) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := AmortizationScheduleTool

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		input, err := loanInputFromParams(params)
		if err != nil {
			return nil, fail(ctx, span, toolName, err)
		}

		span.SetAttributes(
			attribute.String("principal", input.Principal.String()),
			attribute.Float64("annual_rate_percent", input.AnnualRatePercent),
			attribute.Int("term_years", input.TermYears),
		)

		if err := validators.ValidateLoanInput(cfg, input); err != nil {
			return nil, fail(ctx, span, toolName, err)
		}

		key := cache.Key(input)
		if store != nil {
			if raw, ok := store.Get(ctx, key); ok {
				var hit cachedSchedule
				if err := json.Unmarshal([]byte(raw), &hit); err == nil {
					metrics.CacheLookups.WithLabelValues("hit").Inc()
					metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
					span.SetAttributes(attribute.Bool("cached", true))
					return newResult(hit, true), nil
				}
				slog.WarnContext(ctx, "discarding unreadable cache entry", "key", key)
			}
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}

		loan, err := amortization.NewLoanSchedule(input)
		if err != nil {
			return nil, fail(ctx, span, toolName, err)
		}

		items, err := loan.LineItems()
		if err != nil {
			return nil, fail(ctx, span, toolName, err)
		}

		summary := loan.Summarize(items)
		entry := cachedSchedule{Summary: summary, Items: items}

		if store != nil {
			if raw, err := json.Marshal(entry); err == nil {
				if err := store.Set(ctx, key, string(raw)); err != nil {
					slog.WarnContext(ctx, "failed to cache schedule", "key", key, "error", err)
				}
			}
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int64("monthly_payment_cents", summary.MonthlyPaymentCents),
			attribute.Int("payments", summary.Payments),
			attribute.Int64("total_paid_cents", summary.TotalPaidCents),
		)
		metrics.SchedulePayments.Observe(float64(summary.Payments))
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		return newResult(entry, false), nil
	}
}

// fail records err on the span, metrics and log, then returns it unchanged.
func fail(ctx context.Context, span trace.Span, toolName string, err error) error {
	kind := apperrors.Kind(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
	span.SetAttributes(attribute.String("error", kind))

	status := "error"
	if errors.Is(err, apperrors.ErrInvalidInput) {
		status = "validation_error"
	}
	metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, kind).Inc()

	switch kind {
	case "invalid_input", "degenerate_loan":
		slog.InfoContext(ctx, "loan rejected", "tool", toolName, "reason", kind, "error", err)
	default:
		slog.ErrorContext(ctx, "schedule generation failed", "tool", toolName, "reason", kind, "error", err)
	}
	return err
}

func loanInputFromParams(params map[string]interface{}) (amortization.LoanInput, error) {
	var input amortization.LoanInput
	var err error

	if input.Principal, err = paramDecimal(params, "principal"); err != nil {
		return input, err
	}
	rate, err := paramDecimal(params, "annual_rate_percent")
	if err != nil {
		return input, err
	}
	input.AnnualRatePercent = rate.InexactFloat64()

	years, err := paramDecimal(params, "term_years")
	if err != nil {
		return input, err
	}
	if !years.IsInteger() {
		return input, apperrors.NewValidationError("term_years", "must be a whole number of years")
	}
	if years.LessThan(minTermYears) || years.GreaterThan(maxTermYears) {
		return input, apperrors.NewValidationError("term_years", "value is out of range")
	}
	input.TermYears = int(years.IntPart())

	return input, nil
}

// paramDecimal accepts JSON numbers (float64 or json.Number) and numeric strings.
func paramDecimal(params map[string]interface{}, name string) (decimal.Decimal, error) {
	raw, ok := params[name]
	if !ok {
		return decimal.Zero, apperrors.NewValidationError(name, "parameter is required")
	}

	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case json.Number:
		return parseDecimal(name, v.String())
	case string:
		return parseDecimal(name, v)
	default:
		return decimal.Zero, apperrors.NewValidationError(name, fmt.Sprintf("unsupported type %T", raw))
	}
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationErrorWithCause(name, strconv.Quote(s)+" is not a number", err)
	}
	return d, nil
}
