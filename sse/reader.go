// Package sse reads the data payloads of a server-sent event stream.
package sse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var dataPrefix = []byte("data:")

// Reader splits a server-sent event stream into event payloads. Only data
// fields are kept; the data lines of one event are concatenated without a
// separator.
type Reader struct {
	r    *bufio.Reader
	data []byte
	eof  bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the payload of the next complete event. It returns io.EOF
// once the stream ends; an event without its closing blank line is dropped.
func (r *Reader) Next() (string, error) {
	for !r.eof {
		line, err := r.r.ReadBytes('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("read event stream: %w", err)
			}
			r.eof = true
			if len(line) == 0 {
				break
			}
		}
		line = trimEOL(line)

		if bytes.HasPrefix(line, dataPrefix) {
			value := line[len(dataPrefix):]
			if len(value) > 0 && value[0] == ' ' {
				value = value[1:]
			}
			r.data = append(r.data, value...)
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 && len(r.data) > 0 {
			payload := string(r.data)
			r.data = r.data[:0]
			return payload, nil
		}
	}
	return "", io.EOF
}

// Each calls fn for every event payload until the stream ends or fn fails.
// A clean end of stream returns nil.
func Each(r io.Reader, fn func(payload string) error) error {
	sr := NewReader(r)
	for {
		payload, err := sr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(payload); err != nil {
			return err
		}
	}
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}
