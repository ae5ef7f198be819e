// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides validated Matrix identifier value types.
//
// Raw identifier strings from flags and config files are parsed into
// these types at the boundary; everything past the boundary carries a
// value that is known to be well-formed. The zero value is invalid —
// use IsZero to check.
package ref
