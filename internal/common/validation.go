package common

import (
	"fmt"
	"strings"
	"time"
)

// FieldError is one failed rule on one configuration key.
type FieldError struct {
	Field   string
	Value   any
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s (got %q)", e.Field, e.Message, fmt.Sprint(e.Value))
}

// Rule returns a non-empty message when value is unacceptable.
type Rule func(value any) string

// Validator collects field errors across several checks.
type Validator struct {
	errs []FieldError
}

func NewValidator() *Validator { return &Validator{} }

// Field applies rules to value, recording every failure under name.
func (v *Validator) Field(name string, value any, rules ...Rule) *Validator {
	for _, rule := range rules {
		if msg := rule(value); msg != "" {
			v.errs = append(v.errs, FieldError{Field: name, Value: value, Message: msg})
		}
	}
	return v
}

func (v *Validator) HasErrors() bool { return len(v.errs) > 0 }

func (v *Validator) Errors() []FieldError { return v.errs }

// ErrorMessage joins all failures with "; ".
func (v *Validator) ErrorMessage() string {
	msgs := make([]string, 0, len(v.errs))
	for _, e := range v.errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Required rejects blank strings.
func Required(value any) string {
	if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
		return ""
	}
	return "is required"
}

// Positive rejects zero or negative durations and ints.
func Positive(value any) string {
	switch n := value.(type) {
	case time.Duration:
		if n > 0 {
			return ""
		}
	case int:
		if n > 0 {
			return ""
		}
	}
	return "must be positive"
}

// OneOf accepts only the listed strings.
func OneOf(allowed ...string) Rule {
	return func(value any) string {
		s, _ := value.(string)
		for _, a := range allowed {
			if s == a {
				return ""
			}
		}
		return "must be one of " + strings.Join(allowed, ", ")
	}
}
