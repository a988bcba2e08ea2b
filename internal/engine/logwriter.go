package engine

import (
	"bytes"
	"sync"

	"github.com/rs/zerolog"
)

// logWriter turns the engine's stderr into one log event per line.
type logWriter struct {
	mu  sync.Mutex
	log zerolog.Logger
	buf []byte
}

func newLogWriter(log zerolog.Logger) *logWriter {
	return &logWriter{log: log}
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := bytes.TrimRight(w.buf[:i], "\r")
		if len(line) > 0 {
			w.log.Info().Str("stderr", string(line)).Msg("Engine")
		}
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}
