// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bureau-foundation/matrix-notify/lib/htmlfmt"
	"github.com/bureau-foundation/matrix-notify/lib/netutil"
	"github.com/bureau-foundation/matrix-notify/lib/ref"
)

// messageContent is the m.room.message event body for the direct
// path. Field names are the Matrix client-server API wire contract.
type messageContent struct {
	MsgType       string `json:"msgtype"`
	Body          string `json:"body"`
	Format        string `json:"format"`
	FormattedBody string `json:"formatted_body"`
}

// sendEventResponse is the homeserver's response to a message send.
type sendEventResponse struct {
	EventID string `json:"event_id"`
}

// directSender delivers via an authenticated PUT to the homeserver's
// room-message endpoint. The message is stored plaintext-at-rest on
// the server.
type directSender struct {
	httpClient       *http.Client
	logger           *slog.Logger
	newTransactionID func() string
}

func (s *directSender) deliver(ctx context.Context, request Request, roomID ref.RoomID) (*Outcome, error) {
	homeserverURL := strings.TrimSpace(request.HomeserverURL)
	if homeserverURL == "" {
		return nil, &ValidationError{Field: "homeserver-url", Detail: "required for sending without E2E"}
	}
	accessToken := strings.TrimSpace(request.AccessToken)
	if accessToken == "" {
		return nil, &ValidationError{Field: "access-token", Detail: "required for sending without E2E"}
	}

	// The message goes out twice: verbatim as formatted_body (HTML),
	// and degraded to a plaintext fallback as body.
	content := messageContent{
		MsgType:       "m.text",
		Body:          htmlfmt.Strip(request.Message),
		Format:        "org.matrix.custom.html",
		FormattedBody: request.Message,
	}
	encoded, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("notify: encoding message content: %w", err)
	}

	// A fresh transaction ID per attempt. Matrix uses it to
	// deduplicate retried requests; the notifier never retries, so
	// sending the same message twice produces two room events.
	transactionID := s.newTransactionID()

	// Request URLs are built by string concatenation — url.URL
	// re-encodes path segments and would double-encode the room ID.
	requestURL := strings.TrimRight(homeserverURL, "/") +
		"/_matrix/client/r0/rooms/" + url.PathEscape(roomID.String()) +
		"/send/m.room.message/" + url.PathEscape(transactionID)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPut, requestURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("notify: creating send request: %w", err)
	}
	httpRequest.Header.Set("Authorization", "Bearer "+accessToken)
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.ContentLength = int64(len(encoded))

	response, err := s.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("notify: sending to %q: %w", roomID, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("notify: reading homeserver response: %w", err)
	}

	// Exactly 200 counts as delivered. Anything else — including
	// other 2xx codes a proxy might produce — is a failure carrying
	// the status and body for diagnostics.
	if response.StatusCode != http.StatusOK {
		return nil, &TransportError{
			StatusCode: response.StatusCode,
			Body:       string(responseBody),
		}
	}

	// The event ID is informational; a homeserver that answers 200
	// with an unparseable body still delivered the message.
	var sendResponse sendEventResponse
	if err := json.Unmarshal(responseBody, &sendResponse); err != nil {
		s.logger.Warn("unparseable send response from homeserver",
			"room_id", roomID,
			"error", err,
		)
	}

	s.logger.Info("sent matrix message",
		"room_id", roomID,
		"transaction_id", transactionID,
		"event_id", sendResponse.EventID,
	)

	return &Outcome{
		RoomID:        roomID,
		Message:       request.Message,
		TransactionID: transactionID,
		EventID:       sendResponse.EventID,
	}, nil
}
