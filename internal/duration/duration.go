// Package duration parses sleep durations written as a number with an
// optional unit suffix.
package duration

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrSyntax is wrapped by every ParseError.
	ErrSyntax = errors.New("invalid duration")
	// ErrMissing is returned by Sum when there is nothing to add up.
	ErrMissing = errors.New("no duration given")
)

// Unit factors in seconds, keyed by lower-case suffix.
var units = map[byte]float64{
	's': 1,
	'm': 60,
	'h': 60 * 60,
	'd': 24 * 60 * 60,
}

// ParseError reports a token that could not be parsed.
type ParseError struct {
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrSyntax, e.Token, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Parse converts a token such as "5", "1.5m", "2H" or "inf" into seconds.
// The suffix is one of s, m, h or d (case-insensitive); seconds when omitted.
// Sign is not checked here: negative and NaN values are rejected by the
// caller before sleeping.
func Parse(token string) (float64, error) {
	if token == "" {
		return 0, &ParseError{Token: token, Msg: "empty"}
	}

	number := token
	factor := 1.0
	last := token[len(token)-1]
	if last < '0' || last > '9' {
		if f, ok := units[lower(last)]; ok {
			factor = f
			number = token[:len(token)-1]
		}
	}
	if number == "" {
		return 0, &ParseError{Token: token, Msg: "missing number"}
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ParseFloat returns ±Inf for overflow, which is still a valid duration.
			return value * factor, nil
		}
		return 0, &ParseError{Token: token, Msg: "not a number"}
	}
	return value * factor, nil
}

// Sum parses every token and returns the total in seconds.
func Sum(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrMissing
	}
	var total float64
	for _, token := range tokens {
		v, err := Parse(token)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
