// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gridterm-capture/main.go
// Summary: Records a live terminal session to a GRIDREC1 file.

package main

import (
	"flag"
	"log"
	"os"

	"github.com/framegrace/gridterm/internal/capturecli"
)

func main() {
	out := flag.String("o", "session.rec", "output recording file")
	flag.Parse()

	command := os.Getenv("SHELL")
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	} else {
		args = nil
	}
	if command == "" {
		command = "sh"
	}

	if err := capturecli.Run(command, args, *out); err != nil {
		log.Fatalf("gridterm-capture: %v", err)
	}
}
