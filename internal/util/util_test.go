package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{120.5, "$120.50"},
		{999.999, "$1,000.00"},
		{1250, "$1,250.00"},
		{1234567.89, "$1,234,567.89"},
		{-30, "-$30.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCurrency(tc.value))
		})
	}
}
