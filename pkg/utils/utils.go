package utils

import "math"

// IsFinite reports whether value is neither infinite nor NaN.
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
