// internal/qc/sink.go
package qc

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives diagnostics as they are discovered. Implementations must be
// safe for concurrent use.
type Sink interface {
	Report(err error)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(error)

func (f SinkFunc) Report(err error) { f(err) }

// WriterSink writes one diagnostic per line to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (s *WriterSink) Report(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, err.Error())
}
