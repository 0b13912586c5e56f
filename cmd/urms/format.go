package main

import (
	"fmt"
	"strings"
)

// formatINR formats a rupee amount with comma separators and the currency
// sign (e.g. 45230 -> "₹45,230").
func formatINR(n int) string {
	if n < 0 {
		return "-" + formatINR(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return "₹" + s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return "₹" + b.String()
}
