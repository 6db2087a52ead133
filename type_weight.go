package monitor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Weight represents a holding's weight as a percentage of the fund.
type Weight struct {
	value decimal.Decimal
}

// significantDelta is the move, in percentage points, above which a weight
// change is reported. A move of exactly this size is not significant.
var significantDelta = decimal.RequireFromString("0.01")

// ParseWeight parses the textual weight of a holding. The feed formats
// weights as bare numbers or with a trailing percent sign ("5.32", "5.32%",
// " 5.32 % "). An empty value means zero.
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return Weight{}, nil
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return Weight{value: value}, nil
}

// W is a convenient factory for Weight.
func W[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Weight {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Weight{value: v}
	case float32:
		return Weight{value: decimal.NewFromFloat32(v)}
	case float64:
		return Weight{value: decimal.NewFromFloat(v)}
	case int:
		return Weight{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Weight{value: decimal.NewFromInt32(v)}
	case int64:
		return Weight{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

func (w Weight) Sub(x Weight) Weight    { return Weight{value: w.value.Sub(x.value)} }
func (w Weight) Abs() Weight            { return Weight{value: w.value.Abs()} }
func (w Weight) Equal(x Weight) bool    { return w.value.Equal(x.value) }
func (w Weight) LessThan(x Weight) bool { return w.value.LessThan(x.value) }
func (w Weight) IsZero() bool           { return w.value.IsZero() }

// Significant reports whether the weight, taken as an absolute move, is
// large enough to appear in a report.
func (w Weight) Significant() bool { return w.value.Abs().GreaterThan(significantDelta) }

// String formats the weight with three decimals, e.g. "5.000%".
func (w Weight) String() string {
	return w.value.StringFixed(3) + "%"
}

// SignedString is like String but always carries the sign, e.g. "+0.020%".
func (w Weight) SignedString() string {
	s := w.value.StringFixed(3)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}
