// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/capturecli/run.go
// Summary: Records a live PTY session to a GRIDREC1 file.
// Usage: gridterm-capture -o session.rec -- bash
// Notes: Stdin is switched to raw mode so keystrokes pass through verbatim.

package capturecli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/framegrace/gridterm/capture"
)

// Run executes command on a PTY mirrored to the controlling terminal,
// recording everything the child writes. The recording is saved to
// outPath when the child exits.
func Run(command string, args []string, outPath string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make stdin raw: %w", err)
	}
	defer term.Restore(fd, oldState)

	rec := capture.NewRecording(cols, rows)
	rec.Metadata.Shell = command

	// Keystrokes go straight to the child; its output is mirrored to
	// the screen and appended to the recording.
	go io.Copy(ptmx, os.Stdin)

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			os.Stdout.Write(buf[:n])
			rec.AppendSequence(buf[:n])
		}
		if err != nil {
			break
		}
	}

	cmd.Wait()
	term.Restore(fd, oldState)

	if err := rec.Save(outPath); err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	fmt.Printf("recorded %d bytes to %s\r\n", len(rec.Sequences), outPath)
	return nil
}
