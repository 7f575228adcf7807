package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseBRL converts a salary value into a float. Plain numeric strings
// are taken as-is; otherwise the Brazilian currency shape is assumed
// ("R$ 1.234,56" with "." thousands and "," decimal). Anything
// unparseable is 0.0 — salary is a cosmetic field, never a hard failure.
func ParseBRL(value string) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0.0
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// FormatBRL renders a float as "R$ 1.234,56".
func FormatBRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "R$ -" + b.String() + "," + decPart
	}
	return out
}

// FormatDateBR renders a timestamp as "DD/MM/AAAA HH:MM".
func FormatDateBR(value *time.Time) string {
	if value == nil {
		return "N/A"
	}
	return value.Format("02/01/2006 15:04")
}
