// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrix-notify/lib/config"
	"github.com/bureau-foundation/matrix-notify/lib/version"
	"github.com/bureau-foundation/matrix-notify/notify"
)

// defaultHomeserverURL is the client endpoint for a standard
// matrix.org account, the common case for notification bots.
const defaultHomeserverURL = "https://matrix-client.matrix.org"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Handle --version before flag parsing to match other Bureau
	// binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdout, "matrix-notify")
		return 0
	}

	flagSet := pflag.NewFlagSet("matrix-notify", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	message := flagSet.String("message", "", "message to send, interpreted as HTML")
	roomID := flagSet.String("room-id", "", "Matrix room ID (something like '!xyz:matrix.org')")
	useE2E := flagSet.String("use-e2e", "False", "use end-to-end encryption (case-insensitive; anything but 'true' selects the direct path)")
	homeserverURL := flagSet.String("homeserver-url", defaultHomeserverURL, "Matrix homeserver URL (direct path only)")
	accessToken := flagSet.String("access-token", "", "Matrix access token (direct path only)")
	configPath := flagSet.String("config", "", "YAML file with homeserver_url / access_token / commander defaults")
	commander := flagSet.String("commander", "", "E2E client binary (default: matrix-commander on PATH)")
	help := flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return 0
		}
		// pflag already printed the parse error.
		return 1
	}
	if *help {
		printHelp(flagSet, stderr)
		return 0
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		fmt.Fprintf(stderr, "error: unexpected argument: %s\n", extra[0])
		return 1
	}
	if !flagSet.Changed("message") {
		fmt.Fprintln(stderr, "error: --message is required")
		return 1
	}
	if !flagSet.Changed("room-id") {
		fmt.Fprintln(stderr, "error: --room-id is required")
		return 1
	}

	if *configPath != "" {
		fileConfig, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		// Explicit flags win over config file values.
		if !flagSet.Changed("homeserver-url") && fileConfig.HomeserverURL != "" {
			*homeserverURL = fileConfig.HomeserverURL
		}
		if !flagSet.Changed("access-token") && fileConfig.AccessToken != "" {
			*accessToken = fileConfig.AccessToken
		}
		if !flagSet.Changed("commander") && fileConfig.Commander != "" {
			*commander = fileConfig.Commander
		}
	}

	encrypted := strings.EqualFold(strings.TrimSpace(*useE2E), "true")
	pathLabel := "without E2E"
	if encrypted {
		pathLabel = "with E2E"
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	notifier := notify.NewNotifier(notify.NotifierConfig{
		Commander: *commander,
		Logger:    logger,
	})

	// No timeout here: delivery latency is bounded by the homeserver
	// or the E2E client. Wrap the binary in timeout(1) if needed.
	_, err := notifier.Send(context.Background(), notify.Request{
		RoomID:        *roomID,
		Message:       *message,
		UseE2E:        encrypted,
		HomeserverURL: *homeserverURL,
		AccessToken:   *accessToken,
	})
	if err != nil {
		fmt.Fprintf(stdout, "An error occurred while sending the message %q to room %q (%s):\n%v\n",
			*message, *roomID, pathLabel, err)
		return 1
	}

	fmt.Fprintf(stdout, "Message %q sent successfully to room %q (%s).\n", *message, *roomID, pathLabel)
	return 0
}

func printHelp(flagSet *pflag.FlagSet, stderr io.Writer) {
	fmt.Fprintf(stderr, `Send a single message to a Matrix room.

The direct path (default) needs --access-token and a --homeserver-url;
the message is stored unencrypted on the homeserver. With --use-e2e
true, delivery is delegated to matrix-commander, which must already
hold a provisioned and session-verified credentials store (see
'matrix-commander --login' and '--verify emoji').

The sending account must have joined the target room.

Usage:
  matrix-notify --message <text> --room-id <room> [flags]

Examples:
  # Direct delivery to a matrix.org room
  matrix-notify --message 'Build passed' --room-id '!xyz:matrix.org' --access-token "$TOKEN"

  # Keep the token out of argv
  matrix-notify --message 'Build passed' --room-id '!xyz:matrix.org' --config ~/.config/matrix-notify.yaml

  # End-to-end encrypted delivery
  matrix-notify --message 'Build passed' --room-id '!xyz:matrix.org' --use-e2e true

Flags:
`)
	flagSet.SetOutput(stderr)
	flagSet.PrintDefaults()
}
