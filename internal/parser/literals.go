package parser

import "strconv"

func parseInt32(text string) int32 {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		// The lexer only hands us scanner.Int tokens here; an out-of-range
		// literal still needs a value, so saturate rather than panic.
		if n > 0 {
			return 1<<31 - 1
		}
		return -(1 << 31)
	}
	return int32(n)
}

func parseFloat(text string) float64 {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return f
}

func unquote(text string) string {
	s, err := strconv.Unquote(text)
	if err != nil {
		return text
	}
	return s
}
