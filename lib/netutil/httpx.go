// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O utilities for matrix-notify.
//
// ReadResponse bounds response body reads at MaxResponseSize so that a
// misbehaving homeserver cannot force an unbounded allocation. This is
// for JSON API responses — not for streaming transfers, which should
// be read incrementally with io.Copy.
package netutil

import "io"

// MaxResponseSize is the bound on response body reads: 256 MB.
// Legitimate Matrix client-server API responses are orders of
// magnitude smaller; the limit is intentionally generous so that it
// never interferes with normal operation.
const MaxResponseSize int64 = 256 << 20

// ReadResponse reads an HTTP response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading homeserver responses.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
