// Package engine runs the move-generating engine as a child process and talks
// to it one line per turn over its stdin and stdout.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"caia-webclient/caia"
)

// Process owns the engine child and both ends of its pipes.
type Process struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	in    *bufio.Writer
	out   *bufio.Reader
	log   zerolog.Logger

	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// Start spawns command[0] with the remaining elements as arguments.
func Start(command []string, logger zerolog.Logger) (*Process, error) {
	if len(command) == 0 {
		return nil, ErrNoCommand
	}
	log := logger.With().Str("component", "engine").Str("command", command[0]).Logger()

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stderr = newLogWriter(log)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start engine %q: %w", command[0], err)
	}
	log.Info().Int("pid", cmd.Process.Pid).Msg("Engine started")

	return &Process{
		cmd:   cmd,
		stdin: stdin,
		in:    bufio.NewWriter(stdin),
		out:   bufio.NewReader(stdout),
		log:   log,
	}, nil
}

// Send writes one line to the engine and flushes it.
func (p *Process) Send(line string) error {
	if p.closed {
		return ErrClosed
	}
	if _, err := p.in.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write to engine: %w", err)
	}
	if err := p.in.Flush(); err != nil {
		return fmt.Errorf("flush to engine: %w", err)
	}
	p.log.Debug().Str("line", line).Msg("Sent to engine")
	return nil
}

// Receive blocks until the engine writes a line and returns it without
// trailing whitespace.
func (p *Process) Receive() (string, error) {
	if p.closed {
		return "", ErrClosed
	}
	line, err := p.out.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read from engine: %w", err)
		}
		if line == "" {
			return "", ErrEngineExited
		}
	}
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	p.log.Debug().Str("line", line).Msg("Received from engine")
	return line, nil
}

// Exchange sends one line and waits for the engine's reply.
func (p *Process) Exchange(line string) (string, error) {
	if err := p.Send(line); err != nil {
		return "", err
	}
	return p.Receive()
}

// Close asks the engine to quit, closes its input and waits up to timeout
// for it to exit before killing it.
func (p *Process) Close(timeout time.Duration) error {
	p.closeOnce.Do(func() {
		p.closeErr = p.shutdown(timeout)
		p.closed = true
	})
	return p.closeErr
}

func (p *Process) shutdown(timeout time.Duration) error {
	// A dead engine makes these fail; the exit status below is what matters.
	if err := p.Send(caia.Quit); err != nil {
		p.log.Debug().Err(err).Msg("Could not send quit")
	}
	_ = p.stdin.Close()

	// Wait closes stdout, so it only runs once no more reads are expected.
	p.cmd.WaitDelay = timeout
	waitCh := make(chan error, 1)
	go func() {
		waitCh <- p.cmd.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case err := <-waitCh:
		if err != nil {
			p.log.Warn().Err(err).Msg("Engine exited with error")
			return fmt.Errorf("engine exit: %w", err)
		}
		p.log.Info().Msg("Engine exited")
		return nil
	case <-timer.C:
		p.log.Warn().Dur("timeout", timeout).Msg("Engine did not exit, killing")
		if err := p.cmd.Process.Kill(); err != nil {
			return fmt.Errorf("kill engine: %w", err)
		}
		<-waitCh
		return nil
	}
}
