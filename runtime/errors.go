package runtime

import (
	"fmt"
	"strings"
)

// ValidationError reports a configuration problem detected while
// constructing a subject: a required value is missing, a value cannot be
// parsed as its declared type, or a conditionally required value is absent
// while its condition holds. It is never recovered internally; a deployment
// with broken configuration should crash at startup, not at first use.
type ValidationError struct {
	// Subject is the canonical name of the subject being constructed.
	Subject string
	// Variable is the canonical name of the offending variable.
	Variable string
	// Reason describes what went wrong.
	Reason string
	// Condition is the predicate that made the variable required, in
	// schema notation. Empty unless this is a conditional-requirement
	// failure.
	Condition string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("config %s: %s: %s", strings.ToLower(e.Subject), e.Variable, e.Reason)
	if e.Condition != "" {
		msg += fmt.Sprintf(" (required when %s)", e.Condition)
	}

	return msg
}

// Missing reports a required variable with no value and no default.
func Missing(subject, variable string) *ValidationError {
	return &ValidationError{
		Subject:  subject,
		Variable: variable,
		Reason:   "required value is not set",
	}
}

// BadValue reports a value that cannot be parsed as its declared type.
func BadValue(subject, variable, value, want string) *ValidationError {
	return &ValidationError{
		Subject:  subject,
		Variable: variable,
		Reason:   fmt.Sprintf("cannot parse %q as %s", value, want),
	}
}

// ConditionalMissing reports an absent variable whose requiredness
// condition is satisfied.
func ConditionalMissing(subject, variable, cond string) *ValidationError {
	return &ValidationError{
		Subject:   subject,
		Variable:  variable,
		Reason:    "value is not set",
		Condition: cond,
	}
}

// UnknownApplicationError reports an application name the generated module
// does not know. It is deliberately a distinct kind from ValidationError so
// a typo in an application name is never mistaken for missing configuration.
type UnknownApplicationError struct {
	// Application is the unknown name as given.
	Application string
	// Known lists the applications the module was generated for.
	Known []string
}

func (e *UnknownApplicationError) Error() string {
	return fmt.Sprintf("unknown application %q (known: %s)",
		e.Application, strings.Join(e.Known, ", "))
}
