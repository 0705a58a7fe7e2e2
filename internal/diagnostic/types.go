package diagnostic

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Diagnostics accumulates every problem found while parsing a schema
// document. Parsing never stops at the first error; the whole document is
// checked and all records are reported together.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single finding, anchored to a schema position.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this class of finding
	// (e.g. "unknown_type", "duplicate_variable").
	Code string
	// Message is the human-readable description.
	Message string
	// Subject names the schema subject this relates to (if any).
	Subject string
	// Variable names the variable within the subject (if any).
	Variable string
}

// Severity is the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject, variable string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Variable: variable,
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, variable string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Variable: variable,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns the combined error from all error diagnostics, or nil if
// there are none. Individual records stay addressable via multierr.Errors.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var err error
	for _, e := range d.Errors {
		err = multierr.Append(err, fmt.Errorf("%s", e.String()))
	}

	return err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Variable != "" {
		prefix = append(prefix, d.Variable)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
