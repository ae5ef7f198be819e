// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// matrix-notify is a one-shot sender for Matrix rooms: it delivers a
// single message and exits. Delivery is either a direct bearer-token
// PUT to the homeserver (plaintext-at-rest on the server) or, with
// --use-e2e, a delegation to matrix-commander for end-to-end
// encrypted delivery. Exit code 0 means delivered; 1 means any
// validation, transport, or subprocess failure.
package main
