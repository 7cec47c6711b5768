package view

import (
	"fmt"
	"strconv"
	"strings"

	"workspace-admin/pkg/datemath"
)

// Money renders an amount as "EGP 1,234.50".
func Money(currency string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(whole, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s%s %s.%s", sign, currency, b.String(), frac)
}

// SignedMoney prefixes payments with + and withdrawals with -.
func SignedMoney(currency, txType string, amount float64) string {
	if txType == "withdrawal" {
		return "-" + Money(currency, amount)
	}
	return "+" + Money(currency, amount)
}

// Date renders a timestamp as "Jan 2, 2006". Unparseable values pass through.
func Date(value string) string {
	if value == "" {
		return "-"
	}
	t, err := datemath.ParseTime(value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006")
}

// DateTime renders a timestamp as "Jan 2, 2006 15:04".
func DateTime(value string) string {
	if value == "" {
		return "-"
	}
	t, err := datemath.ParseTime(value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006 15:04")
}

// Clock renders the time of day of a timestamp, "-" when empty.
func Clock(value string) string {
	if value == "" {
		return "-"
	}
	t, err := datemath.ParseTime(value)
	if err != nil {
		return value
	}
	return t.Format("15:04")
}

// Title upper-cases the first letter: "pending" -> "Pending".
func Title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Or returns fallback when s is empty.
func Or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
