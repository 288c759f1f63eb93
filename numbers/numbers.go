// Package numbers provides numeric string validation, coercion and
// formatting helpers.
package numbers

import (
	"math"
	"strconv"

	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/optional"
)

// ToInt parses the string as an integer, empty when it is not one.
func ToInt(s string) optional.Optional[int64] {
	v, err := cast.ToInt64E(s)
	if err != nil {
		return optional.Empty[int64]()
	}
	return optional.Of(v)
}

// ToFloat parses the string as a float, empty when it is not one.
func ToFloat(s string) optional.Optional[float64] {
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return optional.Empty[float64]()
	}
	return optional.Of(v)
}

// IsInt returns true if the string holds a valid integer.
func IsInt(s string) bool {
	return ToInt(s).IsPresent()
}

// IsFloat returns true if the string holds a valid number.
func IsFloat(s string) bool {
	return ToFloat(s).IsPresent()
}

// Format renders the value with a fixed number of decimal places.
// A negative decimals panics with errs.IllegalArgument.
func Format(value float64, decimals int) string {
	if decimals < 0 {
		panic(errs.IllegalArgumentf("decimals must not be negative, decimals = %d", decimals))
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// FormatLocalized renders the value with a fixed number of decimal
// places and the grouping separators of the given locale.
func FormatLocalized(value float64, decimals int, tag language.Tag) string {
	if decimals < 0 {
		panic(errs.IllegalArgumentf("decimals must not be negative, decimals = %d", decimals))
	}
	printer := message.NewPrinter(tag)
	return printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Compare compares two floats within epsilon: 0 when they are within
// epsilon of each other, -1 when a is smaller, 1 when larger.
func Compare(a, b, epsilon float64) int {
	if math.Abs(a-b) <= epsilon {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
