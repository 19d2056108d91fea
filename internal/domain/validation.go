package domain

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// looseEmailPattern accepts local@domain.tld with no whitespace in any part.
var looseEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ruleValidator evaluates FieldRule tags. It is safe for concurrent use.
var ruleValidator = newRuleValidator()

func newRuleValidator() *validator.Validate {
	v := validator.New()
	// The stock "email" tag is stricter than the address syntax clients have
	// always been allowed to submit.
	if err := v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		// ALLOW-PANIC: tag registration only fails on programmer error
		panic(err)
	}
	return v
}

// Validate checks a submission against the kind's required fields and rules.
//
// Presence is checked first and reports every missing field at once. Only
// when all fields are present are the rules evaluated, in declaration order,
// returning the first failure. The returned error is a *ValidationError
// wrapping ErrValidation, or nil.
func (k Kind) Validate(sub Submission) error {
	if missing := k.MissingFields(sub); len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	for _, rule := range k.Rules {
		if !rule.passes(sub) {
			return NewValidationError(rule.Field, rule.Message, ErrValidation)
		}
	}

	return nil
}

// MissingFields returns the required fields that are absent or hold an
// empty value (nil, "", 0, false), in declaration order.
func (k Kind) MissingFields(sub Submission) []string {
	var missing []string
	for _, field := range k.RequiredFields {
		if !isPresent(sub[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

// isPresent treats zero-ish scalars as missing. This is intentionally coarse:
// a required count of 0 is reported as missing rather than out of range.
func isPresent(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}

func (r FieldRule) passes(sub Submission) bool {
	value, ok := sub[r.Field]
	if !ok || !hasType(value, r.Type) {
		return false
	}

	if r.Tag == "" {
		return true
	}

	if r.CompareTo != "" {
		return ruleValidator.VarWithValue(value, sub[r.CompareTo], r.Tag) == nil
	}
	return ruleValidator.Var(value, r.Tag) == nil
}

func hasType(v any, t ValueType) bool {
	switch t {
	case TypeNumber:
		f, ok := v.(float64)
		return ok && !math.IsNaN(f)
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeList:
		switch v.(type) {
		case []any, []string:
			return true
		}
		return false
	default:
		return true
	}
}
