// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrMissingField matches a MissingFieldError.
	ErrMissingField = errors.New("connspec: missing required field")
	// ErrUnloadableDriver matches an UnloadableDriverError.
	ErrUnloadableDriver = errors.New("connspec: driver cannot be loaded")
	// ErrAmbiguousConfiguration matches an AmbiguousConfigurationError.
	ErrAmbiguousConfiguration = errors.New("connspec: fields of more than one connection strategy are set")
	// ErrUnresolvableConfiguration matches an UnresolvableConfigurationError.
	ErrUnresolvableConfiguration = errors.New("connspec: no connection strategy can be resolved")
	// ErrMalformedPort matches a MalformedPortError.
	ErrMalformedPort = errors.New("connspec: port is not an integer")
	// ErrDriverNotRegistered is the cause of an UnloadableDriverError raised
	// by a probe that reported the driver missing.
	ErrDriverNotRegistered = errors.New("driver not registered")
)

// MissingFieldError reports a required field of the attempted strategy that is blank or absent.
type MissingFieldError struct {
	Strategy Type
	Field    Field
	Label    string
	msg      string
}

func (e *MissingFieldError) Error() string        { return e.msg }
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// UnloadableDriverError reports a driver name the probe could not resolve.
type UnloadableDriverError struct {
	Strategy Type
	Driver   string
	Err      error
	msg      string
}

func (e *UnloadableDriverError) Error() string        { return e.msg }
func (e *UnloadableDriverError) Unwrap() error        { return e.Err }
func (e *UnloadableDriverError) Is(target error) bool { return target == ErrUnloadableDriver }

// AmbiguousConfigurationError reports a field of another strategy populated
// alongside the resolved one. ResolvedField is the field that selected the
// resolved strategy.
type AmbiguousConfigurationError struct {
	Field         Field
	Label         string
	Resolved      Type
	ResolvedField Field
	msg           string
}

func (e *AmbiguousConfigurationError) Error() string        { return e.msg }
func (e *AmbiguousConfigurationError) Is(target error) bool { return target == ErrAmbiguousConfiguration }

// UnresolvableConfigurationError aggregates the failure of every strategy.
type UnresolvableConfigurationError struct {
	attempts *multierror.Error
	msg      string
}

func (e *UnresolvableConfigurationError) Error() string        { return e.msg }
func (e *UnresolvableConfigurationError) Is(target error) bool { return target == ErrUnresolvableConfiguration }

// Unwrap exposes the per strategy failures to errors.Is and errors.As.
func (e *UnresolvableConfigurationError) Unwrap() []error { return e.Attempts() }

// Attempts returns the per strategy failures in priority order.
func (e *UnresolvableConfigurationError) Attempts() []error {
	if e.attempts == nil {
		return nil
	}
	return e.attempts.WrappedErrors()
}

// Detail renders one line per failed strategy for diagnostics.
func (e *UnresolvableConfigurationError) Detail() string {
	if e.attempts == nil {
		return ""
	}
	return e.attempts.Error()
}

// MalformedPortError reports a port that does not parse as an integer.
type MalformedPortError struct {
	Value string
	Err   error
	msg   string
}

func (e *MalformedPortError) Error() string        { return e.msg }
func (e *MalformedPortError) Unwrap() error        { return e.Err }
func (e *MalformedPortError) Is(target error) bool { return target == ErrMalformedPort }

// FieldOf returns the field an error is attributed to, if any.
func FieldOf(err error) (Field, bool) {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Field, true
	}
	var ambiguous *AmbiguousConfigurationError
	if errors.As(err, &ambiguous) {
		return ambiguous.Field, true
	}
	var driver *UnloadableDriverError
	if errors.As(err, &driver) {
		return FieldDriverName, true
	}
	var port *MalformedPortError
	if errors.As(err, &port) {
		return FieldPort, true
	}
	return 0, false
}

func strategyOf(err error) Type {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Strategy
	}
	var driver *UnloadableDriverError
	if errors.As(err, &driver) {
		return driver.Strategy
	}
	return TypeUnset
}

// attemptFormat renders each failed attempt on its own line, prefixed by its strategy.
func attemptFormat(es []error) string {
	lines := make([]string, 0, len(es))
	for _, err := range es {
		lines = append(lines, fmt.Sprintf("  * %s: %s", strategyOf(err), err))
	}
	return strings.Join(lines, "\n")
}

func joinMessages(es []error) string {
	msgs := make([]string, 0, len(es))
	for _, err := range es {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, " | ")
}
