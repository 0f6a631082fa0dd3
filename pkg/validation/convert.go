package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Form values are validated strings. These helpers convert them after
// validation has passed; empty or malformed input yields the zero value.

func Int(s string) int {
	return int(Int64(s))
}

func Int64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

// OptionalInt64 returns nil for empty input or zero.
func OptionalInt64(s string) *int64 {
	n := Int64(s)
	if n == 0 {
		return nil
	}
	return &n
}

func Decimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// OptionalDecimal returns nil for empty input.
func OptionalDecimal(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d := Decimal(s)
	return &d
}

func Date(s string) time.Time {
	t, _ := time.Parse(DateLayout, strings.TrimSpace(s))
	return t
}

// OptionalDate returns nil for empty input.
func OptionalDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := Date(s)
	return &t
}
