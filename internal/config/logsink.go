package config

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogSink is a writer whose destination is picked after flags are parsed.
// Loggers and observers built at startup write through it. It discards
// until Redirect is called.
type LogSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *LogSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}

// Redirect sends all later writes to w.
func (s *LogSink) Redirect(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// OpenLogOutput returns the configured log file, opened for append, or
// fallback when no file is set. The returned close func is never nil.
func (c Config) OpenLogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if c.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
