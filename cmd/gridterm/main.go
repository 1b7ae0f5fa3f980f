// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gridterm/main.go
// Summary: Interactive terminal emulator running a shell under a tcell UI.

package main

import (
	"flag"
	"log"

	"github.com/framegrace/gridterm/internal/app"
)

func main() {
	command := flag.String("command", "", "command to run (defaults to $SHELL)")
	indexPath := flag.String("index", "", "path to a SQLite history index (disabled when empty)")
	flag.Parse()

	err := app.Run(app.Options{
		Command:   *command,
		IndexPath: *indexPath,
	})
	if err != nil {
		log.Fatalf("gridterm: %v", err)
	}
}
