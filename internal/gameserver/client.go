// Package gameserver talks to the game server: it follows the game-updates
// event stream and submits moves.
package gameserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"caia-webclient/caia"
	"caia-webclient/sse"
)

const (
	UpdatesPath = "/game-updates"
	SubmitPath  = "/update-game"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a client for the server at baseURL. A nil hc uses a
// client without timeout, since the update stream is long-lived.
func NewClient(baseURL string, hc *http.Client, logger zerolog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     logger.With().Str("component", "gameserver").Logger(),
	}
}

// StreamUpdates opens the game-updates stream and calls fn with every event
// payload. It returns when the server closes the stream, fn fails, or ctx is
// cancelled.
func (c *Client) StreamUpdates(ctx context.Context, fn func(payload string) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+UpdatesPath, nil)
	if err != nil {
		return fmt.Errorf("build updates request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("open update stream: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("open update stream: %w", err)
	}
	c.log.Info().Str("url", req.URL.String()).Msg("Update stream connected")

	if err := sse.Each(resp.Body, fn); err != nil {
		return err
	}
	c.log.Info().Msg("Update stream closed by server")
	return nil
}

// SubmitMove posts a move submission. The response body is discarded.
func (c *Client) SubmitMove(ctx context.Context, sub caia.Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit move: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("submit move: %w", err)
	}
	c.log.Debug().RawJSON("body", body).Msg("Move submitted")
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return nil
}
