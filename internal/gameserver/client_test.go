package gameserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"caia-webclient/caia"
)

func TestStreamUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != UpdatesPath {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Accept"); got != "text/event-stream" {
			t.Errorf("expected event-stream Accept header, got %q", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"mode\":\"wait\"}\n\n")
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, "data: {\"mode\":\n")
		fmt.Fprint(w, "data: \"move\"}\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client(), zerolog.Nop())
	var got []string
	err := c.StreamUpdates(context.Background(), func(payload string) error {
		got = append(got, payload)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	want := []string{`{"mode":"wait"}`, `{"mode":"move"}`}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStreamUpdates_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), zerolog.Nop())
	err := c.StreamUpdates(context.Background(), func(string) error {
		t.Fatalf("no payload expected")
		return nil
	})
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestSubmitMove(t *testing.T) {
	var body []byte
	var method, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != SubmitPath {
			http.NotFound(w, r)
			return
		}
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, "ignored")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), zerolog.Nop())
	if err := c.SubmitMove(context.Background(), caia.NewMoveSubmission(caia.Player2, caia.Move{Row: 4, Col: 0})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if method != http.MethodPost {
		t.Fatalf("expected POST, got %s", method)
	}
	if contentType != "application/json" {
		t.Fatalf("expected application/json, got %q", contentType)
	}
	var sub map[string]any
	if err := json.Unmarshal(body, &sub); err != nil {
		t.Fatalf("server got invalid JSON %q: %v", body, err)
	}
	if sub["action"] != "move" || sub["player"] != "2" {
		t.Fatalf("unexpected submission: %s", body)
	}
	if string(body) != `{"action":"move","player":"2","move":[4,0]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestSubmitMove_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not your turn", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), zerolog.Nop())
	err := c.SubmitMove(context.Background(), caia.NewMoveSubmission(caia.Player1, caia.Move{}))
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestSubmitMove_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil, zerolog.Nop())
	if err := c.SubmitMove(context.Background(), caia.NewMoveSubmission(caia.Player1, caia.Move{})); err == nil {
		t.Fatalf("expected transport error")
	}
}
