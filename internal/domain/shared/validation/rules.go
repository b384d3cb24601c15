package validation

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted for date fields.
const DateLayout = "2006-01-02"

var formats = validator.New()

func pass(context.Context) (bool, error) { return true, nil }

// Required rejects empty or whitespace-only strings.
func Required(s string) Rule {
	return func(context.Context) (bool, error) {
		return strings.TrimSpace(s) != "", nil
	}
}

// MaxLength rejects strings longer than n characters.
func MaxLength(s string, n int) Rule {
	return func(context.Context) (bool, error) {
		return utf8.RuneCountInString(s) <= n, nil
	}
}

// MinLength rejects non-empty strings shorter than n characters.
func MinLength(s string, n int) Rule {
	return func(context.Context) (bool, error) {
		return s == "" || utf8.RuneCountInString(s) >= n, nil
	}
}

// Email accepts an empty string or a well-formed address.
func Email(s string) Rule {
	if s == "" {
		return pass
	}
	return func(context.Context) (bool, error) {
		return formats.Var(s, "email") == nil, nil
	}
}

// URL accepts an empty string or an absolute URL.
func URL(s string) Rule {
	if s == "" {
		return pass
	}
	return func(context.Context) (bool, error) {
		return formats.Var(s, "url") == nil, nil
	}
}

// Date accepts an empty string or a YYYY-MM-DD calendar date.
func Date(s string) Rule {
	return func(context.Context) (bool, error) {
		if s == "" {
			return true, nil
		}
		_, err := ParseDate(s)
		return err == nil, nil
	}
}

// ParseDate parses a calendar date, also accepting RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// NonNegative accepts nil or a value >= 0.
func NonNegative(d *decimal.Decimal) Rule {
	return func(context.Context) (bool, error) {
		return d == nil || !d.IsNegative(), nil
	}
}

// MaxDecimalPlaces accepts nil or a value with at most places fractional digits.
func MaxDecimalPlaces(d *decimal.Decimal, places int32) Rule {
	return func(context.Context) (bool, error) {
		return d == nil || d.Equal(d.Truncate(places)), nil
	}
}

// OneOf accepts an empty string or one of the allowed values.
func OneOf(s string, allowed ...string) Rule {
	return func(context.Context) (bool, error) {
		if s == "" {
			return true, nil
		}
		for _, a := range allowed {
			if s == a {
				return true, nil
			}
		}
		return false, nil
	}
}

// Exists delegates to a store lookup. It accepts when the lookup reports a hit.
func Exists(lookup func(ctx context.Context) (bool, error)) Rule {
	return func(ctx context.Context) (bool, error) {
		return lookup(ctx)
	}
}

// Unique delegates to a store lookup and accepts when no other record holds the value.
func Unique(taken func(ctx context.Context) (bool, error)) Rule {
	return func(ctx context.Context) (bool, error) {
		exists, err := taken(ctx)
		if err != nil {
			return false, err
		}
		return !exists, nil
	}
}

// When runs rule only if cond holds, otherwise it passes.
func When(cond bool, rule Rule) Rule {
	if !cond {
		return pass
	}
	return rule
}
