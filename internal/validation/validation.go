package validation

import (
	"net/url"
	"strings"
)

// FieldError represents a single failed form rule.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the ordered result of a form check; empty means the form is valid.
type Errors []FieldError

// Empty reports whether no rule failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether field failed at least one rule.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Rule проверяет одно поле формы.
type Rule struct {
	Field   string
	Message string
	Check   func(value string) bool
}

// NotEmpty требует хотя бы один непробельный символ.
func NotEmpty(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
	}
}

// MaxBytes ограничивает длину значения в байтах (не в рунах).
func MaxBytes(field string, limit int, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check:   func(v string) bool { return len(v) <= limit },
	}
}

// Validate applies rules in order and collects every failure.
func Validate(form url.Values, rules ...Rule) Errors {
	var errs Errors
	for _, r := range rules {
		if !r.Check(form.Get(r.Field)) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}
