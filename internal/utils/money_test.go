package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"1500", 1500},
		{"1234.56", 1234.56},
		{"", 0.0},
		{"   ", 0.0},
		{"abc", 0.0},
		{"0,50", 0.5},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseBRL(tc.in), "input %q", tc.in)
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 1.234.567,80", FormatBRL(1234567.8))
	assert.Equal(t, "R$ 999,99", FormatBRL(999.99))
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "N/A", FormatDateBR(nil))

	ts := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2024 14:30", FormatDateBR(&ts))
}
