package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingFields         = errors.New("missing required fields")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidDate           = errors.New("invalid createdAt")
	ErrMissingQueryParams    = errors.New("missing required query parameters: id, year, month")
	ErrNonNumericQueryParams = errors.New("query parameters id, year, and month must be numbers")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrUserNotFound          = errors.New("user not found")
)

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// asInteger reports whether f holds an exact integer value.
func asInteger(f float64) (int64, bool) {
	if math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

// isMissingNumber treats zero and non-finite values as absent.
func isMissingNumber(f float64) bool {
	return f == 0 || math.IsNaN(f) || math.IsInf(f, 0)
}
