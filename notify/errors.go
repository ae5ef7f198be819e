// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"errors"
	"fmt"
)

// ValidationError reports a request field that failed validation.
// Validation always happens before any network or subprocess I/O.
type ValidationError struct {
	// Field names the offending input in flag spelling: "message",
	// "room-id", "homeserver-url", or "access-token".
	Field string
	// Detail is a human-readable description of the failure.
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("notify: invalid %s: %s", e.Field, e.Detail)
}

// IsValidationError reports whether err is a *ValidationError, and if
// so for which field.
func IsValidationError(err error) (string, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field, true
	}
	return "", false
}

// TransportError reports a non-200 response from the homeserver on
// the direct delivery path.
type TransportError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body, kept for diagnostics. Matrix
	// error responses are JSON ({"errcode": ..., "error": ...}), but
	// the body is passed through verbatim rather than parsed — the
	// notifier has no error-code-specific behavior.
	Body string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("notify: homeserver returned status %d: %s", e.StatusCode, e.Body)
}

// SubprocessError reports a non-zero exit from the external E2E
// client.
type SubprocessError struct {
	// Command is the binary that was invoked.
	Command string
	// ExitCode is the subprocess exit status.
	ExitCode int
	// Output is the subprocess's combined stdout and stderr, trimmed.
	// matrix-commander writes its diagnostics (e.g. "E153: Credentials
	// file was not found") to stderr.
	Output string
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("notify: %s exited with code %d: %s", e.Command, e.ExitCode, e.Output)
}
