// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bureau-foundation/matrix-notify/lib/ref"
)

// DefaultCommander is the binary invoked for E2E delivery when
// NotifierConfig.Commander is empty. Resolved via PATH.
const DefaultCommander = "matrix-commander"

// Request describes a single message delivery. Nothing is persisted —
// a Request lives for exactly one Send call.
type Request struct {
	// RoomID is the target room, shaped "!localpart:serverpart". The
	// sending account must already be a member of the room.
	RoomID string

	// Message is the text to send, interpreted as HTML.
	Message string

	// UseE2E selects the delivery path: false for the direct
	// homeserver PUT, true for the external E2E client. The two paths
	// are mutually exclusive; a failure on the selected path is never
	// retried on the other.
	UseE2E bool

	// HomeserverURL is the base URL of the homeserver. Required when
	// UseE2E is false; ignored otherwise (the E2E client reads the
	// homeserver from its own credentials store).
	HomeserverURL string

	// AccessToken is the bearer token for the direct path. Required
	// when UseE2E is false; ignored otherwise.
	AccessToken string
}

// Outcome describes a successful delivery.
type Outcome struct {
	// RoomID is the validated target room.
	RoomID ref.RoomID

	// Message is the text that was sent.
	Message string

	// E2E reports which path delivered the message.
	E2E bool

	// TransactionID is the idempotency key used on the direct path.
	// Empty for E2E delivery.
	TransactionID string

	// EventID is the room event created by the direct path, as
	// reported by the homeserver. Empty for E2E delivery (the
	// external client does not report it) or when the homeserver
	// response could not be parsed.
	EventID string
}

// sender is the contract shared by the two delivery paths: one
// attempt, one outcome, no retry.
type sender interface {
	deliver(ctx context.Context, request Request, roomID ref.RoomID) (*Outcome, error)
}

// NotifierConfig holds configuration for creating a Notifier.
type NotifierConfig struct {
	// HTTPClient is used by the direct delivery path. If nil,
	// http.DefaultClient is used. No timeout is imposed here — callers
	// requiring bounded latency pass a context with a deadline.
	HTTPClient *http.Client

	// Commander is the E2E client binary (name on PATH or an absolute
	// path). If empty, DefaultCommander is used.
	Commander string

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Notifier sends messages to Matrix rooms. It holds no per-message
// state and is safe for reuse across Send calls.
type Notifier struct {
	httpClient       *http.Client
	commander        string
	logger           *slog.Logger
	newTransactionID func() string
}

// NewNotifier creates a Notifier from config, applying defaults for
// unset fields.
func NewNotifier(config NotifierConfig) *Notifier {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	commander := config.Commander
	if commander == "" {
		commander = DefaultCommander
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		httpClient:       httpClient,
		commander:        commander,
		logger:           logger,
		newTransactionID: uuid.NewString,
	}
}

// Send validates the request and executes the selected delivery path.
//
// Validation order (first failure wins, no I/O before the whole pass
// succeeds): message must be non-blank, room ID must parse, and — on
// the direct path only, checked inside delivery — homeserver URL and
// access token must be non-blank. Failures come back as
// *ValidationError, *TransportError, or *SubprocessError.
func (n *Notifier) Send(ctx context.Context, request Request) (*Outcome, error) {
	if strings.TrimSpace(request.Message) == "" {
		return nil, &ValidationError{Field: "message", Detail: "cannot be empty or just whitespace"}
	}

	roomID, err := ref.ParseRoomID(request.RoomID)
	if err != nil {
		return nil, &ValidationError{Field: "room-id", Detail: err.Error()}
	}

	var path sender
	if request.UseE2E {
		path = &commanderSender{binary: n.commander, logger: n.logger}
	} else {
		path = &directSender{
			httpClient:       n.httpClient,
			logger:           n.logger,
			newTransactionID: n.newTransactionID,
		}
	}

	return path.deliver(ctx, request, roomID)
}
