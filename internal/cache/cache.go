// Package cache stores rendered schedules keyed by their loan input.
package cache

import (
	"context"
	"strconv"

	"github.com/cloud-ru/amortization-go/internal/amortization"
)

// Cache is a string key/value store. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key derives the cache key for input. Schedules are pure functions of their input,
// so equal inputs always map to the same entry.
func Key(input amortization.LoanInput) string {
	return "schedule:" + amortization.RoundingPolicy + ":" +
		input.Principal.String() + ":" +
		strconv.FormatFloat(input.AnnualRatePercent, 'g', -1, 64) + ":" +
		strconv.Itoa(input.TermYears)
}
