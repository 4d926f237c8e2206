// Package format renders counts the way the dashboard shows them.
package format

import "strconv"

// Number renders n compactly: 999 -> "999", 1500 -> "1.5K", 2500000 -> "2.5M".
func Number(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// Percent returns received/needed as a whole percentage capped at 100.
// Non-positive inputs yield 0.
func Percent(received, needed int) int {
	if needed <= 0 || received <= 0 {
		return 0
	}
	p := (received*200 + needed) / (2 * needed)
	if p > 100 {
		return 100
	}
	return p
}
