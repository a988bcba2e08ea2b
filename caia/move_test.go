package caia

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFormatParseRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s, err := FormatMove(row, col)
			if err != nil {
				t.Fatalf("format (%d, %d): %v", row, col, err)
			}
			m, err := ParseMove(s)
			if err != nil {
				t.Fatalf("parse %q: %v", s, err)
			}
			if m.Row != row || m.Col != col {
				t.Fatalf("round trip (%d, %d) => %q => (%d, %d)", row, col, s, m.Row, m.Col)
			}
			if m.String() != s {
				t.Fatalf("expected String() %q, got %q", s, m.String())
			}
		}
	}
}

func TestFormatMove_Corners(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{7, 7, "H8"},
		{1, 2, "B3"},
	}
	for _, tc := range cases {
		got, err := FormatMove(tc.row, tc.col)
		if err != nil {
			t.Fatalf("format (%d, %d): %v", tc.row, tc.col, err)
		}
		if got != tc.want {
			t.Fatalf("format (%d, %d): expected %q, got %q", tc.row, tc.col, tc.want, got)
		}
	}
}

func TestParseMove_Corners(t *testing.T) {
	if m, err := ParseMove("A1"); err != nil || m != (Move{0, 0}) {
		t.Fatalf("expected A1 => (0, 0), got %v %v", m, err)
	}
	if m, err := ParseMove("H8"); err != nil || m != (Move{7, 7}) {
		t.Fatalf("expected H8 => (7, 7), got %v %v", m, err)
	}
}

func TestParseMove_Rejects(t *testing.T) {
	for _, s := range []string{"I1", "A9", "A0", "@1", "A", "", "A12", "a1", "B3 "} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidMoveFormat) {
			t.Fatalf("expected ErrInvalidMoveFormat for %q, got %v", s, err)
		}
	}
}

func TestFormatMove_RejectsOutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := FormatMove(c[0], c[1]); !errors.Is(err, ErrInvalidMoveCoordinate) {
			t.Fatalf("expected ErrInvalidMoveCoordinate for %v, got %v", c, err)
		}
	}
	if s := (Move{Row: 8}).String(); s != "Invalid" {
		t.Fatalf("expected Invalid, got %q", s)
	}
}

func TestMoveJSON(t *testing.T) {
	b, err := json.Marshal(Move{Row: 1, Col: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[1,2]" {
		t.Fatalf("expected [1,2], got %s", b)
	}

	var m Move
	if err := json.Unmarshal([]byte("[3, 4]"), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != (Move{Row: 3, Col: 4}) {
		t.Fatalf("expected (3, 4), got %+v", m)
	}
	if err := json.Unmarshal([]byte("[3]"), &m); err == nil {
		t.Fatalf("expected error for short move array")
	}
	if err := json.Unmarshal([]byte(`"C5"`), &m); err == nil {
		t.Fatalf("expected error for string move")
	}
}

func TestParsePlayer(t *testing.T) {
	if p, err := ParsePlayer("1"); err != nil || p != Player1 {
		t.Fatalf("expected player 1, got %v %v", p, err)
	}
	if p, err := ParsePlayer("2"); err != nil || p != Player2 {
		t.Fatalf("expected player 2, got %v %v", p, err)
	}
	for _, s := range []string{"0", "3", " 1", "01", "one", ""} {
		if _, err := ParsePlayer(s); !errors.Is(err, ErrInvalidPlayer) {
			t.Fatalf("expected ErrInvalidPlayer for %q, got %v", s, err)
		}
	}
}
