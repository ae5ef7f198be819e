// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build version of matrix-notify binaries.
package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Info returns the module version embedded by the Go toolchain, or
// "(devel)" for builds outside a tagged module (go run, workspace
// builds).
func Info() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "(devel)"
	}
	return buildInfo.Main.Version
}

// Fprint writes "name version" to w. Binaries call this for --version.
func Fprint(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", name, Info())
}
