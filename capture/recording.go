// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: capture/recording.go
// Summary: Recording format for captured terminal sessions.
//
// Format: GRIDREC1
// A simple text-based format with metadata header and raw escape sequences.
//
// Example:
//   GRIDREC1
//   width: 80
//   height: 24
//   shell: bash -c "ls -la"
//   description: List directory contents
//   ---
//   <raw escape sequences and text>

package capture

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	RecordingMagic = "GRIDREC1"
	RecordingSep   = "---"
	DefaultWidth   = 80
	DefaultHeight  = 24
)

// Recording represents a captured terminal session.
type Recording struct {
	Metadata  Metadata
	Sequences []byte // Raw PTY output (escape sequences + text)
}

// Metadata holds information about the recording.
type Metadata struct {
	Width       int
	Height      int
	Shell       string
	Description string
	Timestamp   time.Time
}

// NewRecording creates an empty recording with the given dimensions.
func NewRecording(width, height int) *Recording {
	return &Recording{
		Metadata: Metadata{
			Width:     width,
			Height:    height,
			Timestamp: time.Now(),
		},
	}
}

// NewRecordingFromBytes creates a recording from raw escape sequence
// bytes. Useful for synthetic test cases.
func NewRecordingFromBytes(data []byte, width, height int) *Recording {
	return &Recording{
		Metadata: Metadata{
			Width:       width,
			Height:      height,
			Description: "synthetic",
			Timestamp:   time.Now(),
		},
		Sequences: data,
	}
}

// Load loads a recording from a GRIDREC1 file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses a recording from a reader.
func Parse(r io.Reader) (*Recording, error) {
	reader := bufio.NewReader(r)

	magic, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	magic = strings.TrimSpace(magic)
	if magic != RecordingMagic {
		return nil, fmt.Errorf("invalid magic: expected %q, got %q", RecordingMagic, magic)
	}

	rec := &Recording{
		Metadata: Metadata{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}

	// Read metadata until separator
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read metadata: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == RecordingSep {
			break
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue // Skip malformed lines
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "width":
			if w, err := strconv.Atoi(value); err == nil {
				rec.Metadata.Width = w
			}
		case "height":
			if h, err := strconv.Atoi(value); err == nil {
				rec.Metadata.Height = h
			}
		case "shell":
			rec.Metadata.Shell = value
		case "description":
			rec.Metadata.Description = value
		case "timestamp":
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				rec.Metadata.Timestamp = t
			}
		}
	}

	// Read remaining bytes as sequences
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("read sequences: %w", err)
	}
	rec.Sequences = buf.Bytes()

	return rec, nil
}

// Save writes the recording to a GRIDREC1 file.
func (r *Recording) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create recording file: %w", err)
	}
	defer f.Close()
	return r.Write(f)
}

// Write writes the recording to a writer.
func (r *Recording) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, RecordingMagic); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "width: %d\n", r.Metadata.Width); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "height: %d\n", r.Metadata.Height); err != nil {
		return err
	}
	if r.Metadata.Shell != "" {
		if _, err := fmt.Fprintf(w, "shell: %s\n", r.Metadata.Shell); err != nil {
			return err
		}
	}
	if r.Metadata.Description != "" {
		if _, err := fmt.Fprintf(w, "description: %s\n", r.Metadata.Description); err != nil {
			return err
		}
	}
	if !r.Metadata.Timestamp.IsZero() {
		if _, err := fmt.Fprintf(w, "timestamp: %s\n", r.Metadata.Timestamp.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, RecordingSep); err != nil {
		return err
	}

	if _, err := w.Write(r.Sequences); err != nil {
		return err
	}

	return nil
}

// AppendSequence adds raw bytes to the recording.
func (r *Recording) AppendSequence(data []byte) {
	r.Sequences = append(r.Sequences, data...)
}

// AppendString adds a string to the recording.
func (r *Recording) AppendString(s string) {
	r.AppendSequence([]byte(s))
}

// AppendCSI adds a CSI sequence (ESC [ ...) to the recording.
func (r *Recording) AppendCSI(params string) {
	r.AppendString("\x1b[" + params)
}

// AppendCRLF adds CR+LF to the recording.
func (r *Recording) AppendCRLF() {
	r.AppendString("\r\n")
}
