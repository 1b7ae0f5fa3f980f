// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: search/index.go
// Summary: SQLite FTS5 search index over terminal history lines.
// Usage: Fed by a Recorder hooked to screen eviction; queried by UIs.
// Notes: Trigram tokenizer enables substring matching ("ls -l", paths).

package search

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Result is a single search match.
type Result struct {
	LineIdx   int64
	Timestamp time.Time
	Content   string
}

// Config holds tuning knobs for the index.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// BatchSize is the number of entries to accumulate before flushing.
	// Default: 100
	BatchSize int

	// BatchTimeout is how long to wait before flushing a partial batch.
	// Default: 5s
	BatchTimeout time.Duration

	// ChannelBuffer is the size of the async indexing channel.
	// Default: 1000
	ChannelBuffer int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:        dbPath,
		BatchSize:     100,
		BatchTimeout:  5 * time.Second,
		ChannelBuffer: 1000,
	}
}

type entry struct {
	lineIdx   int64
	timestamp time.Time
	text      string
}

// Index provides full-text search over terminal history, backed by
// SQLite FTS5. Lines are queued and written in batches by a background
// goroutine so that indexing never stalls the feed path.
type Index struct {
	config Config
	db     *sql.DB

	batchChan chan entry
	stopCh    chan struct{}
	doneCh    chan struct{}
	flushCh   chan chan struct{}

	mu sync.RWMutex
}

const schema = `
CREATE TABLE IF NOT EXISTS lines (
    id INTEGER PRIMARY KEY,           -- Global line index
    timestamp INTEGER NOT NULL,       -- UnixNano
    content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lines_timestamp ON lines(timestamp);

-- FTS5 virtual table with trigram tokenizer for substring matching.
CREATE VIRTUAL TABLE IF NOT EXISTS lines_fts USING fts5(
    content,
    content='lines',
    content_rowid='id',
    tokenize='trigram'
);

-- Triggers to keep FTS5 in sync
CREATE TRIGGER IF NOT EXISTS lines_ai AFTER INSERT ON lines BEGIN
    INSERT INTO lines_fts(rowid, content) VALUES (new.id, new.content);
END;

CREATE TRIGGER IF NOT EXISTS lines_au AFTER UPDATE ON lines BEGIN
    INSERT INTO lines_fts(lines_fts, rowid, content) VALUES ('delete', old.id, old.content);
    INSERT INTO lines_fts(rowid, content) VALUES (new.id, new.content);
END;

CREATE TRIGGER IF NOT EXISTS lines_ad AFTER DELETE ON lines BEGIN
    INSERT INTO lines_fts(lines_fts, rowid, content) VALUES ('delete', old.id, old.content);
END;
`

// NewIndex opens (or creates) an index at dbPath with default config.
func NewIndex(dbPath string) (*Index, error) {
	return NewIndexWithConfig(DefaultConfig(dbPath))
}

// NewIndexWithConfig opens an index with custom configuration.
func NewIndexWithConfig(config Config) (*Index, error) {
	dir := filepath.Dir(config.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := config.DBPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=cache_size(-8000)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	idx := &Index{
		config:    config,
		db:        db,
		batchChan: make(chan entry, config.ChannelBuffer),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		flushCh:   make(chan chan struct{}),
	}

	go idx.batchIndexer()

	return idx, nil
}

// batchIndexer runs in a background goroutine, batching entries and
// flushing them periodically.
func (idx *Index) batchIndexer() {
	defer close(idx.doneCh)

	batch := make([]entry, 0, idx.config.BatchSize)
	timer := time.NewTimer(idx.config.BatchTimeout)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		idx.flushBatch(batch)
		batch = batch[:0]
	}

	for {
		select {
		case e := <-idx.batchChan:
			batch = append(batch, e)
			if len(batch) >= idx.config.BatchSize {
				flush()
				timer.Reset(idx.config.BatchTimeout)
			}

		case <-timer.C:
			flush()
			timer.Reset(idx.config.BatchTimeout)

		case done := <-idx.flushCh:
			// Manual flush request - drain channel first
			draining := true
			for draining {
				select {
				case e := <-idx.batchChan:
					batch = append(batch, e)
				default:
					draining = false
				}
			}
			flush()
			close(done)

		case <-idx.stopCh:
			// Drain channel and flush before exit
			for {
				select {
				case e := <-idx.batchChan:
					batch = append(batch, e)
				default:
					flush()
					return
				}
			}
		}
	}
}

// flushBatch writes a batch of entries in a single transaction.
func (idx *Index) flushBatch(batch []entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	tx, err := idx.db.Begin()
	if err != nil {
		log.Printf("[search] failed to begin transaction: %v", err)
		return
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO lines (id, timestamp, content) VALUES (?, ?, ?)")
	if err != nil {
		log.Printf("[search] failed to prepare statement: %v", err)
		tx.Rollback()
		return
	}
	defer stmt.Close()

	for _, e := range batch {
		if _, err := stmt.Exec(e.lineIdx, e.timestamp.UnixNano(), e.text); err != nil {
			log.Printf("[search] failed to insert line %d: %v", e.lineIdx, err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("[search] failed to commit batch: %v", err)
	}
}

// IndexLine queues a history line for indexing. Empty lines are skipped.
// If the queue is full the line is dropped rather than blocking the feed.
func (idx *Index) IndexLine(lineIdx int64, timestamp time.Time, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	select {
	case idx.batchChan <- entry{lineIdx: lineIdx, timestamp: timestamp, text: text}:
	default:
	}
	return nil
}

// DeleteLine removes a line from the index.
func (idx *Index) DeleteLine(lineIdx int64) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, err := idx.db.Exec("DELETE FROM lines WHERE id = ?", lineIdx)
	return err
}

// Search runs a substring query over the indexed history, newest first.
// The trigram tokenizer needs at least 3 characters; shorter queries
// fall back to LIKE.
func (idx *Index) Search(query string, limit int) ([]Result, error) {
	if query == "" {
		return nil, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var rows *sql.Rows
	var err error

	if len(query) < 3 {
		likePattern := "%" + strings.ReplaceAll(strings.ReplaceAll(query, "%", "\\%"), "_", "\\_") + "%"
		rows, err = idx.db.Query(`
			SELECT id, timestamp, content
			FROM lines
			WHERE content LIKE ? ESCAPE '\'
			ORDER BY timestamp DESC
			LIMIT ?
		`, likePattern, limit)
	} else {
		// Double quotes make FTS5 treat the query as a literal string,
		// so patterns with dashes and spaces match as substrings.
		quotedQuery := `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
		rows, err = idx.db.Query(`
			SELECT l.id, l.timestamp, l.content
			FROM lines_fts
			JOIN lines l ON l.id = lines_fts.rowid
			WHERE lines_fts MATCH ?
			ORDER BY l.timestamp DESC
			LIMIT ?
		`, quotedQuery, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		var tsNano int64
		if err := rows.Scan(&r.LineIdx, &tsNano, &r.Content); err != nil {
			continue // Skip malformed rows
		}
		r.Timestamp = time.Unix(0, tsNano)
		results = append(results, r)
	}
	return results, rows.Err()
}

// LineCount returns the number of indexed lines.
func (idx *Index) LineCount() (int64, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var n int64
	err := idx.db.QueryRow("SELECT COUNT(*) FROM lines").Scan(&n)
	return n, err
}

// Flush blocks until all queued entries are written.
func (idx *Index) Flush() error {
	done := make(chan struct{})
	select {
	case idx.flushCh <- done:
		<-done
	case <-idx.stopCh:
		// Already stopped
	}
	return nil
}

// Close flushes pending writes and closes the database.
func (idx *Index) Close() error {
	close(idx.stopCh)
	<-idx.doneCh

	return idx.db.Close()
}
