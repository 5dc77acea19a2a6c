package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a decimal amount string with exactly two fractional
// digits regardless of input precision, rounding half away from zero
// ("10" -> "10.00", "9.999" -> "10.00", "9.994" -> "9.99").
func FormatAmount(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("amount is empty")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %v", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("invalid amount %q", raw)
	}
	return strconv.FormatFloat(Round(v), 'f', 2, 64), nil
}

func Round(value float64) float64 {
	return math.Round(value*100) / 100
}
