// Package transcript appends human-readable session lines to a log file the
// operator configured. The file's lifecycle (rotation, cleanup) is owned
// externally; macfix only appends to it.
package transcript

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/doeshing/macfix/internal/ports"
)

// FileTranscript appends timestamped lines to a fixed path.
type FileTranscript struct {
	path string
	mu   sync.Mutex
}

// NewFile builds a transcript writer for the given path.
func NewFile(path string) *FileTranscript {
	return &FileTranscript{path: path}
}

// Append implements ports.Transcript.
func (t *FileTranscript) Append(line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	file, err := os.OpenFile(t.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "%s | %s\n", time.Now().Format("2006-01-02 15:04:05"), line)
	return err
}

// Nop discards all lines. Used when no transcript path is configured.
type Nop struct{}

// Append implements ports.Transcript.
func (Nop) Append(string) error { return nil }

var (
	_ ports.Transcript = (*FileTranscript)(nil)
	_ ports.Transcript = Nop{}
)
