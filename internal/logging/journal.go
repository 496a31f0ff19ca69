package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nvandessel/rendezvous/internal/events"
)

// JournalFile is the name of the journal inside the log directory.
const JournalFile = "robot.jsonl"

// Journal appends every robot event to a JSONL file. It is safe for
// concurrent use. A nil Journal is safe to use; all methods are no-ops on a
// nil receiver.
type Journal struct {
	mu   sync.Mutex
	file *os.File
	path string

	// warn receives a single warning for the first entry that could not be
	// written.
	warn     io.Writer
	reported bool
}

// OpenJournal opens dir/robot.jsonl for append, creating dir if needed.
func OpenJournal(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	path := filepath.Join(dir, JournalFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	return &Journal{file: f, path: path, warn: os.Stderr}, nil
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// Emit writes the event as a single JSONL line with "time" and "event" keys
// next to its fields. It implements events.Sink.
func (j *Journal) Emit(e events.Event) {
	if j == nil {
		return
	}

	entry := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		entry[k] = v
	}
	entry["event"] = string(e.Kind)
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return
	}
	if err != nil {
		j.reportLocked(fmt.Errorf("encoding %s event: %w", e.Kind, err))
		return
	}
	if _, err := j.file.Write(append(data, '\n')); err != nil {
		j.reportLocked(err)
	}
}

// reportLocked prints the first failure only. j.mu must be held.
func (j *Journal) reportLocked(err error) {
	if j.reported || j.warn == nil {
		return
	}
	j.reported = true
	fmt.Fprintf(j.warn, "warning: journal %s is dropping entries: %v\n", j.path, err)
}

// Close closes the underlying file. Safe to call on nil receiver and more than once.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
