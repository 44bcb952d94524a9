package log

import (
	"encoding/json"
	"io"
	"os"
	"sync"
)

// Transporter is a log output destination.
type Transporter interface {
	// Name returns the identifier for this transporter.
	Name() string

	// Write sends a log entry to the destination.
	Write(entry Entry) error

	// Close releases any resources held by the transporter.
	Close() error
}

// StdoutTransporter writes line-delimited JSON entries to an io.Writer,
// os.Stdout by default. Writes are serialized so concurrent loggers do
// not interleave lines.
type StdoutTransporter struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewStdout creates a transporter writing to os.Stdout.
func NewStdout() *StdoutTransporter {
	return &StdoutTransporter{writer: os.Stdout}
}

// NewStdoutWithWriter creates a transporter with a custom writer.
// Useful for testing.
func NewStdoutWithWriter(w io.Writer) *StdoutTransporter {
	return &StdoutTransporter{writer: w}
}

// Name returns the transporter identifier.
func (s *StdoutTransporter) Name() string {
	return "stdout"
}

// Write marshals the entry to JSON and writes one line.
func (s *StdoutTransporter) Write(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.writer.Write(data)
	return err
}

// Close is a no-op for stdout.
func (s *StdoutTransporter) Close() error {
	return nil
}
