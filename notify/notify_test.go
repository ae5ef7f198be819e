// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// noIOTransport fails the test if any HTTP request is attempted. Used
// to prove that validation failures never reach the network.
type noIOTransport struct {
	t *testing.T
}

func (transport noIOTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	transport.t.Errorf("unexpected HTTP request to %s during validation failure", request.URL)
	return nil, errors.New("no I/O expected")
}

// noIONotifier builds a Notifier whose HTTP client and commander
// binary both fail the test if exercised.
func noIONotifier(t *testing.T) *Notifier {
	t.Helper()
	return NewNotifier(NotifierConfig{
		HTTPClient: &http.Client{Transport: noIOTransport{t: t}},
		Commander:  "/nonexistent/commander-should-not-run",
	})
}

func TestSendValidatesMessage(t *testing.T) {
	notifier := noIONotifier(t)

	for _, message := range []string{"", " ", "\t", "\n", "  \t\n  "} {
		_, err := notifier.Send(context.Background(), Request{
			RoomID:  "!abc:matrix.org",
			Message: message,
		})
		field, ok := IsValidationError(err)
		if !ok {
			t.Errorf("Send with message %q: expected validation error, got %v", message, err)
			continue
		}
		if field != "message" {
			t.Errorf("Send with message %q: expected field %q, got %q", message, "message", field)
		}
	}
}

func TestSendValidatesRoomID(t *testing.T) {
	notifier := noIONotifier(t)

	for _, roomID := range []string{"", "xyz:matrix.org", "!xyz", "!:matrix.org", "!abc:", "!a:b:c"} {
		_, err := notifier.Send(context.Background(), Request{
			RoomID:  roomID,
			Message: "hello",
		})
		field, ok := IsValidationError(err)
		if !ok {
			t.Errorf("Send with room %q: expected validation error, got %v", roomID, err)
			continue
		}
		if field != "room-id" {
			t.Errorf("Send with room %q: expected field %q, got %q", roomID, "room-id", field)
		}
	}
}

func TestSendValidationOrder(t *testing.T) {
	// A blank message wins over a malformed room ID: the message is
	// checked first.
	notifier := noIONotifier(t)

	_, err := notifier.Send(context.Background(), Request{
		RoomID:  "not-a-room",
		Message: "   ",
	})
	field, ok := IsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if field != "message" {
		t.Errorf("expected message validated before room ID, got field %q", field)
	}
}

func TestSendValidatesCredentialsForDirectPath(t *testing.T) {
	notifier := noIONotifier(t)

	t.Run("missing homeserver URL", func(t *testing.T) {
		_, err := notifier.Send(context.Background(), Request{
			RoomID:      "!abc:matrix.org",
			Message:     "hello",
			AccessToken: "syt_token",
		})
		field, ok := IsValidationError(err)
		if !ok || field != "homeserver-url" {
			t.Errorf("expected homeserver-url validation error, got %v", err)
		}
	})

	t.Run("whitespace access token", func(t *testing.T) {
		_, err := notifier.Send(context.Background(), Request{
			RoomID:        "!abc:matrix.org",
			Message:       "hello",
			HomeserverURL: "https://matrix.example.org",
			AccessToken:   "   ",
		})
		field, ok := IsValidationError(err)
		if !ok || field != "access-token" {
			t.Errorf("expected access-token validation error, got %v", err)
		}
	})

	t.Run("homeserver URL checked before access token", func(t *testing.T) {
		_, err := notifier.Send(context.Background(), Request{
			RoomID:  "!abc:matrix.org",
			Message: "hello",
		})
		field, ok := IsValidationError(err)
		if !ok || field != "homeserver-url" {
			t.Errorf("expected homeserver-url validation error, got %v", err)
		}
	})
}

func TestErrorStrings(t *testing.T) {
	validationErr := &ValidationError{Field: "message", Detail: "cannot be empty or just whitespace"}
	if validationErr.Error() != "notify: invalid message: cannot be empty or just whitespace" {
		t.Errorf("unexpected validation error string: %s", validationErr)
	}

	transportErr := &TransportError{StatusCode: 403, Body: "Forbidden"}
	if transportErr.Error() != "notify: homeserver returned status 403: Forbidden" {
		t.Errorf("unexpected transport error string: %s", transportErr)
	}

	subprocessErr := &SubprocessError{Command: "matrix-commander", ExitCode: 1, Output: "E153: Credentials file was not found."}
	if subprocessErr.Error() != "notify: matrix-commander exited with code 1: E153: Credentials file was not found." {
		t.Errorf("unexpected subprocess error string: %s", subprocessErr)
	}
}
