// Package currency renders rupee amounts the way the front desk reads them.
package currency

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const Symbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount with Indian digit grouping and two decimals, e.g. ₹1,23,456.50.
func Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + Symbol + printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// ParseAmount reads user input leniently. Anything that is not a finite number counts as zero.
func ParseAmount(input string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(input), Symbol), ",", ""))
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// IsNumeric reports whether input parses as a finite number.
func IsNumeric(input string) bool {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(input), Symbol), ",", ""))

	value, err := strconv.ParseFloat(cleaned, 64)

	return err == nil && !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Round2 rounds to paise.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Remaining is the outstanding balance, never negative.
func Remaining(total, paid float64) float64 {
	return math.Max(0, Round2(total-paid))
}

// Amount is a money value decoded from either a JSON number or a numeric string.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0

		return nil
	}

	*a = Amount(ParseAmount(strings.Trim(string(data), `"`)))

	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}

func (a Amount) String() string {
	return Format(float64(a))
}
