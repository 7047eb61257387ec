package webfaction

import (
	"errors"
	"fmt"
)

// Common errors returned before any remote call is made.
var (
	// ErrMissingCredentials indicates an empty username or password.
	ErrMissingCredentials = errors.New("webfaction: username and password are required")

	// ErrMissingMachine indicates no target machine was given for login.
	ErrMissingMachine = errors.New("webfaction: target machine is required")

	// ErrInvalidName indicates a resource name the control panel would reject.
	ErrInvalidName = errors.New("webfaction: invalid resource name")

	// ErrInvalidDatabaseType indicates a database type other than mysql or postgresql.
	ErrInvalidDatabaseType = errors.New("webfaction: invalid database type")

	// ErrInvalidShell indicates an unsupported login shell.
	ErrInvalidShell = errors.New("webfaction: invalid shell")

	// ErrEmptyCommand indicates a blank system command.
	ErrEmptyCommand = errors.New("webfaction: empty command")
)

// CallError wraps a failed remote call with the API method that produced it.
// No further classification is attempted; the remote service owns the
// semantics of its faults.
type CallError struct {
	Method string
	Err    error
}

// Error implements the error interface
func (e *CallError) Error() string {
	return fmt.Sprintf("webfaction: %s failed: %v", e.Method, e.Err)
}

// Unwrap returns the underlying transport or fault error.
func (e *CallError) Unwrap() error { return e.Err }
