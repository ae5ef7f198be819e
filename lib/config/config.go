// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional matrix-notify configuration file.
//
// The file is YAML and is only read when the command is given an
// explicit --config path. There are no fallbacks or automatic
// discovery — configuration is deterministic and auditable, with no
// hidden overrides. Explicit command-line flags always win over
// config file values.
//
// The primary use is keeping the access token out of argv (visible in
// process listings) on CI machines:
//
//	homeserver_url: https://matrix-client.matrix.org
//	access_token: syt_...
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the matrix-notify command. Every field is
// optional; empty fields leave the corresponding flag default in place.
type Config struct {
	// HomeserverURL is the base URL of the Matrix homeserver used by
	// the direct (non-E2E) delivery path.
	HomeserverURL string `yaml:"homeserver_url"`

	// AccessToken is the bearer token for the direct delivery path.
	AccessToken string `yaml:"access_token"`

	// Commander is the E2E client binary invoked by the encrypted
	// delivery path (name on PATH or an absolute path).
	Commander string `yaml:"commander"`
}

// Load reads and parses the config file at path. Unknown keys are an
// error — a typo in a credential key should fail loudly, not silently
// fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var parsed Config
	if err := decoder.Decode(&parsed); err != nil {
		// An empty file is a valid (all-defaults) config.
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &parsed, nil
}
