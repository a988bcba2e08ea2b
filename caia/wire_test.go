package caia

import (
	"encoding/json"
	"testing"
)

func TestDecodeGameUpdate_FirstMove(t *testing.T) {
	u, err := DecodeGameUpdate(`{"mode":"move","state":{"public":{"nextPlayer":1,"board":[]}}}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !u.IsTurnOf(Player1) {
		t.Fatalf("expected player 1 to move")
	}
	if u.IsTurnOf(Player2) {
		t.Fatalf("player 2 should not move")
	}
	text, err := u.LastMoveText()
	if err != nil {
		t.Fatalf("last move: %v", err)
	}
	if text != Start {
		t.Fatalf("expected %q, got %q", Start, text)
	}
}

func TestDecodeGameUpdate_LastMove(t *testing.T) {
	u, err := DecodeGameUpdate(`{"mode":"move","state":{"public":{"nextPlayer":2}},"lastMove":[3,5]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	text, err := u.LastMoveText()
	if err != nil {
		t.Fatalf("last move: %v", err)
	}
	if text != "D6" {
		t.Fatalf("expected D6, got %q", text)
	}
}

func TestGameUpdate_OtherModeIsNotATurn(t *testing.T) {
	u, err := DecodeGameUpdate(`{"mode":"gameOver","state":{"public":{"nextPlayer":1}}}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.IsTurnOf(Player1) {
		t.Fatalf("non-move update must not be a turn")
	}
}

func TestGameUpdate_LastMoveOutOfRange(t *testing.T) {
	u, err := DecodeGameUpdate(`{"mode":"move","state":{"public":{"nextPlayer":1}},"lastMove":[8,0]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := u.LastMoveText(); err == nil {
		t.Fatalf("expected error for out of range last move")
	}
}

func TestDecodeGameUpdate_Malformed(t *testing.T) {
	if _, err := DecodeGameUpdate(`{"mode":`); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewMoveSubmission(t *testing.T) {
	b, err := json.Marshal(NewMoveSubmission(Player1, Move{Row: 1, Col: 2}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"action":"move","player":"1","move":[1,2]}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}
