// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/bureau-foundation/matrix-notify/lib/ref"
)

// commanderSender delivers via an external E2E-capable client run as
// a subprocess. The client is an opaque collaborator: it owns the
// credentials store and encryption sessions (provisioned out of band
// with its --login / --verify flows), and this path only observes its
// exit status.
type commanderSender struct {
	binary string
	logger *slog.Logger
}

func (s *commanderSender) deliver(ctx context.Context, request Request, roomID ref.RoomID) (*Outcome, error) {
	// --html tells the client to interpret the message body as HTML,
	// matching what the direct path sends as formatted_body.
	command := exec.CommandContext(ctx, s.binary,
		"-m", request.Message,
		"--room", roomID.String(),
		"--html",
	)

	output, err := command.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &SubprocessError{
				Command:  s.binary,
				ExitCode: exitErr.ExitCode(),
				Output:   strings.TrimSpace(string(output)),
			}
		}
		// Binary missing or not executable — no subprocess ran.
		return nil, fmt.Errorf("notify: running %s: %w", s.binary, err)
	}

	s.logger.Info("sent matrix message via E2E client",
		"room_id", roomID,
		"commander", s.binary,
	)

	return &Outcome{
		RoomID:  roomID,
		Message: request.Message,
		E2E:     true,
	}, nil
}
