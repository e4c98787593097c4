// Package utils provides common formatting helpers.
package utils

import "strconv"

// FormatCount formats a non-negative count with comma thousands separators.
// Negative values are formatted with a leading minus sign.
func FormatCount(n int) string {
	s := strconv.Itoa(n)

	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}

	if len(s) <= 3 {
		return sign + s
	}

	// Insert a comma before every group of three digits from the right.
	var out []byte

	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}

	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}

		out = append(out, s[i:i+3]...)
	}

	return sign + string(out)
}

// TruncateString truncates a string to maxLength runes, appending "..."
// when the string was shortened.
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength]) + "..."
}
