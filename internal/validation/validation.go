// Package validation implements declarative per-field rule sets.
//
// Each endpoint declares a table of fields, each with an ordered list of
// composable rules. Evaluation is eager: every rule of every field runs and
// all violations are collected into Errors, so a client sees the complete
// picture in one response instead of fixing fields one at a time.
//
// Presence is owned by Required: the other rules report ok on an absent
// value, otherwise an empty optional field would fail format rules it was
// never subject to.
package validation

import (
	"fmt"
	"regexp"
)

// emailPattern is deliberately permissive: one @, non-empty local and
// domain parts, a dot in the domain. Real verification happens by sending
// mail, not by regex.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Rule checks a single value and returns a human-readable message for a
// violation, or "" when the value passes.
type Rule func(value any) string

// Field pairs a named value with its rule list.
type Field struct {
	Name  string
	Value any
	Rules []Rule
}

// Errors maps field name to the messages of every violated rule, in rule
// order. A nil/empty Errors means the input passed.
type Errors map[string][]string

// Check evaluates fields in declaration order and collects all violations.
func Check(fields ...Field) Errors {
	var errs Errors
	for _, f := range fields {
		for _, rule := range f.Rules {
			if msg := rule(f.Value); msg != "" {
				if errs == nil {
					errs = make(Errors)
				}
				errs[f.Name] = append(errs[f.Name], msg)
			}
		}
	}
	return errs
}

// absent reports whether a value counts as "not provided".
func absent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *float64:
		return x == nil
	default:
		return false
	}
}

// number extracts a numeric value. ok is false for absent or non-numeric
// input.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case *float64:
		if x == nil {
			return 0, false
		}
		return *x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Required fails on an absent value.
func Required(name string) Rule {
	return func(v any) string {
		if absent(v) {
			return fmt.Sprintf("The %s field is required.", name)
		}
		return ""
	}
}

// String fails when a present value is not a string.
func String(name string) Rule {
	return func(v any) string {
		if absent(v) {
			return ""
		}
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("The %s field must be a string.", name)
		}
		return ""
	}
}

// Numeric fails when a present value is not numeric.
func Numeric(name string) Rule {
	return func(v any) string {
		if absent(v) {
			return ""
		}
		if _, ok := number(v); !ok {
			return fmt.Sprintf("The %s field must be a number.", name)
		}
		return ""
	}
}

// Min enforces a lower bound: length for strings, value for numbers.
func Min(name string, min float64) Rule {
	return func(v any) string {
		if absent(v) {
			return ""
		}
		if s, ok := v.(string); ok {
			if len(s) < int(min) {
				return fmt.Sprintf("The %s field must be at least %d characters.", name, int(min))
			}
			return ""
		}
		if n, ok := number(v); ok && n < min {
			return fmt.Sprintf("The %s field must be at least %g.", name, min)
		}
		return ""
	}
}

// Max enforces an upper bound: length for strings, value for numbers.
func Max(name string, max float64) Rule {
	return func(v any) string {
		if absent(v) {
			return ""
		}
		if s, ok := v.(string); ok {
			if len(s) > int(max) {
				return fmt.Sprintf("The %s field must not exceed %d characters.", name, int(max))
			}
			return ""
		}
		if n, ok := number(v); ok && n > max {
			return fmt.Sprintf("The %s field must not exceed %g.", name, max)
		}
		return ""
	}
}

// Email fails when a present string is not a plausible email address.
func Email(name string) Rule {
	return func(v any) string {
		if absent(v) {
			return ""
		}
		s, ok := v.(string)
		if !ok || !emailPattern.MatchString(s) {
			return fmt.Sprintf("The %s field must be a valid email address.", name)
		}
		return ""
	}
}

// Confirmed fails when a non-empty confirmation value differs from the
// field under validation. An empty confirmation passes: the endpoint
// decides whether confirmation is mandatory by adding Required on the
// confirmation field itself.
func Confirmed(name, confirmation string) Rule {
	return func(v any) string {
		if absent(v) || confirmation == "" {
			return ""
		}
		if s, ok := v.(string); ok && s != confirmation {
			return fmt.Sprintf("The %s field confirmation does not match.", name)
		}
		return ""
	}
}

// Unique fails when taken reports the present value as already used. The
// predicate typically closes over a storage lookup; a lookup failure should
// report "not taken" and let the storage layer's constraint catch the race.
func Unique(name string, taken func(value string) bool) Rule {
	return func(v any) string {
		if absent(v) {
			return ""
		}
		if s, ok := v.(string); ok && taken(s) {
			return fmt.Sprintf("The %s has already been taken.", name)
		}
		return ""
	}
}
