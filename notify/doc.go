// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package notify delivers a single text message to a Matrix room.
//
// A [Notifier] validates a [Request] and executes exactly one of two
// mutually exclusive delivery paths. The direct path issues a
// bearer-token PUT to the homeserver's room-message endpoint with a
// fresh UUID transaction ID per attempt; the message is stored
// plaintext-at-rest on the server. The E2E path delegates to an
// external encryption-capable client (matrix-commander by default)
// run as a subprocess, which requires a previously provisioned and
// session-verified credentials store that this package never creates
// or inspects. There is no fallback between the paths and no retry on
// any failure.
//
// Failures are returned as typed errors usable with errors.As:
// [*ValidationError] (bad input, detected before any I/O),
// [*TransportError] (non-200 homeserver response, carrying status and
// body), and [*SubprocessError] (non-zero E2E client exit, carrying
// the tool's own output). Send is a plain function call with no
// process-exit side effects — the CLI adapter in cmd/matrix-notify
// owns printing and exit codes.
package notify
