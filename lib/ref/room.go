// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// RoomID is a validated Matrix room ID (e.g., "!abc123:matrix.org").
//
// Room IDs are server-assigned opaque identifiers: a '!' sigil, an
// opaque local part, a single ':' separator, and the server name.
// matrix-notify never constructs room IDs — they come from room
// settings in a Matrix client and are parsed into this type at the
// flag/config boundary.
//
// The notifier's room contract admits exactly one ':'. Server names
// with an explicit port ("matrix.org:8448") are therefore rejected;
// this matches the delivery contract of the external E2E client and
// keeps both delivery paths addressing the same set of rooms.
//
// RoomID is an immutable value type. The zero value is not valid;
// use IsZero to check.
type RoomID struct {
	id string
}

// ParseRoomID validates and wraps a raw Matrix room ID string.
// Returns an error if the string is empty, doesn't start with '!',
// has an empty local or server part, or contains more than one ':'.
func ParseRoomID(raw string) (RoomID, error) {
	if raw == "" {
		return RoomID{}, fmt.Errorf("empty room ID")
	}
	if raw[0] != '!' {
		return RoomID{}, fmt.Errorf("room ID must start with '!': %q", raw)
	}

	localPart, serverName, found := strings.Cut(raw[1:], ":")
	if !found {
		return RoomID{}, fmt.Errorf("room ID missing ':server' suffix: %q", raw)
	}
	if localPart == "" {
		return RoomID{}, fmt.Errorf("room ID has empty local part: %q", raw)
	}
	if serverName == "" {
		return RoomID{}, fmt.Errorf("room ID has empty server name: %q", raw)
	}
	if strings.ContainsRune(serverName, ':') {
		return RoomID{}, fmt.Errorf("room ID must contain exactly one ':': %q", raw)
	}

	return RoomID{id: raw}, nil
}

// String returns the full room ID string (e.g., "!abc123:matrix.org").
func (r RoomID) String() string { return r.id }

// IsZero reports whether the RoomID is the zero value (uninitialized).
func (r RoomID) IsZero() bool { return r.id == "" }
