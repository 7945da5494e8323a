// Package moneyfmt renders rupee amounts with Indian digit grouping
// (lakh/crore style: 12,34,56,789). The calculation engine itself returns
// plain numbers; only presentation layers format.
package moneyfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rupees formats a whole-rupee amount with the ₹ sign and Indian grouping.
func Rupees(d decimal.Decimal) string {
	return "₹" + Group(d.Round(0))
}

// Group applies Indian digit grouping to a decimal: the last three integer
// digits form one group, every two digits before that form another.
func Group(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
