// Package format renders monetary and percentage values the way the
// dashboard displays them: French-style grouping with the MAD currency.
package format

import (
	"fmt"
	"strings"
)

// Currency formats an amount as "1 234,56 MAD". Negative amounts keep a
// leading minus sign.
func Currency(amount float64) string {
	return Number(amount) + " MAD"
}

// SignedCurrency is Currency with an explicit "+" on positive amounts,
// used for budget differences.
func SignedCurrency(amount float64) string {
	if amount >= 0 {
		return "+" + Currency(amount)
	}
	return Currency(amount)
}

// Percent formats a rate already expressed in percent, e.g. 12.5 -> "12,50 %".
func Percent(rate float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", rate), ".", ",") + " %"
}

// Number formats an amount with two decimals, comma decimal separator
// and thin-space thousand grouping.
func Number(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, " ") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
