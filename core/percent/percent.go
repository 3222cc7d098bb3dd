// Package percent implements a simple and straightforward type for percentage values.
//
// Percentages are kept distinct from absolute integers. They resolve against a base
// with floor division, i.e. Percent(p).Of(b) == ⌊p·b/100⌋.
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values.
// Values above 100 are legal (e.g., 150% of a parent's width).
type Percent int32

// FromInt creates a percentage from an integer. Negative values are clamped to 0.
func FromInt(n int) Percent {
	if n <= 0 {
		return Percent(0)
	}
	if n > math.MaxInt32 {
		return Percent(math.MaxInt32)
	}
	return Percent(n)
}

// FromFloat creates a percentage from a float, rounding to the nearest integer.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= math.MaxInt32 || math.IsInf(f, 1):
		return Percent(math.MaxInt32)
	}
	return Percent(math.Round(f))
}

// FromString parses strings like "50%" or "50".
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return FromInt(n), nil
}

// Of resolves p against base. The result is floored, even for negative bases.
func (p Percent) Of(base int) int {
	return floorDiv(int64(p)*int64(base), 100)
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

func floorDiv(a, b int64) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return int(q)
}
