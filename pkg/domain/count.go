package domain

import "strconv"

// ParsePositiveInt parses text as a strictly positive base-10 integer.
// Zero, negative and non-numeric text all fail with an *InvalidCountError
// that keeps the literal text for diagnostics.
func ParsePositiveInt(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, &InvalidCountError{Text: text}
	}
	return n, nil
}

// ParseCount is ParsePositiveInt with the unit ("line" or "byte") recorded
// on the error, so it renders as "illegal line count -- <text>".
func ParseCount(unit, text string) (int, error) {
	n, err := ParsePositiveInt(text)
	if err != nil {
		return 0, &InvalidCountError{Unit: unit, Text: text}
	}
	return n, nil
}
