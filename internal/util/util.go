// Package util holds small shared formatting helpers.
package util

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount for receipts and reports, e.g.
// "$1,250.00".
func FormatCurrency(value float64) string {
	if value < 0 {
		return "-" + FormatCurrency(-value)
	}

	intPart := int(value)
	cents := int((value-float64(intPart))*100 + 0.5)
	if cents >= 100 {
		intPart++
		cents -= 100
	}

	return fmt.Sprintf("$%s.%02d", addThousandsSeparators(intPart), cents)
}

func addThousandsSeparators(value int) string {
	str := strconv.Itoa(value)
	var parts []string
	for i := len(str); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{str[start:i]}, parts...)
	}

	return strings.Join(parts, ",")
}
