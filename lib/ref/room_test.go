// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "testing"

func TestParseRoomID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, raw := range []string{
			"!abc:def",
			"!abc123:matrix.org",
			"!x:y",
			"!with-dashes_and.dots:matrix-client.matrix.org",
		} {
			roomID, err := ParseRoomID(raw)
			if err != nil {
				t.Errorf("ParseRoomID(%q) failed: %v", raw, err)
				continue
			}
			if roomID.String() != raw {
				t.Errorf("ParseRoomID(%q) round-trip mismatch: %q", raw, roomID.String())
			}
			if roomID.IsZero() {
				t.Errorf("ParseRoomID(%q) returned zero value", raw)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"xyz:matrix.org",   // missing '!' sigil
			"!xyz",             // no colon
			"!:matrix.org",     // empty local part
			"!abc:",            // empty server name
			"!abc:def:ghi",     // more than one colon
			"!abc:matrix:8448", // port syntax is outside the contract
			"#alias:matrix.org",
		} {
			if _, err := ParseRoomID(raw); err == nil {
				t.Errorf("ParseRoomID(%q) should have failed", raw)
			}
		}
	})

	t.Run("zero value", func(t *testing.T) {
		var roomID RoomID
		if !roomID.IsZero() {
			t.Error("zero RoomID should report IsZero")
		}
		if roomID.String() != "" {
			t.Errorf("zero RoomID String should be empty, got %q", roomID.String())
		}
	})
}
