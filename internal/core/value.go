// Package core provides the transaction domain model shared by every
// other package: dates, values, kinds and duplicate removal.
//
// This file contains parsing of monetary values from export strings.
package core

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidValue = errors.New("invalid value")

// ParseValue converts a decimal string from an export into a signed float.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign. Thousands separators are not supported: exports
// write plain decimals.
//
// Examples:
//
//	ParseValue("-12.34") -> -12.34, nil
//	ParseValue("12,34")  -> 12.34, nil
//	ParseValue("")       -> 0, ErrInvalidValue
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidValue
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")

	rest := s
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
		rest = rest[1:]
	}
	if rest == "" {
		return 0, ErrInvalidValue
	}
	parts := strings.Split(rest, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidValue
	}
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return 0, ErrInvalidValue
			}
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidValue
	}
	return v, nil
}
