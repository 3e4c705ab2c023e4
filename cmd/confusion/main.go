// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package main is the entry point for the confusion command line tool.
//
// The tool builds "confusion groups" from a catalog snapshot: for a target
// wine style it picks up to three other styles a taster is likely to mistake
// it for, and explains how to tell them apart.
//
// # Commands
//
//	confusion generate --catalog catalog.json --target barolo --difficulty hard
//	confusion batch    --catalog catalog.json --difficulty medium --workers 8
//	confusion validate --catalog catalog.json
//
// Results are written to stdout as indented JSON. Logs go to stderr.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command line flags (--log-level, --log-format, --workers, ...)
//   - Environment variables (LOG_LEVEL, CONFUSION_WEIGHT_STRUCTURE, DRILLS_WORKERS, ...)
//   - Config file (--config, CONFIG_PATH or ./confusion.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the running command. A batch stops scheduling new
// targets and prints the groups that completed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MartinLundqvist/wine-app-sub000/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd, err := newRootCmd().ExecuteContextC(ctx)
	stop()
	if err != nil {
		logging.Err(err).Str("command", cmd.Name()).Msg("Command failed")
		os.Exit(1)
	}
}
