// Package caia implements the Caia move notation and the JSON messages
// exchanged with the game server.
package caia

import (
	"encoding/json"
	"fmt"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Engine protocol lines that are not moves.
const (
	Start = "Start"
	Quit  = "Quit"
)

// Move is a zero-based board coordinate.
//
// Text form ("Caia notation"): row letter 'A'..'H' followed by column digit
// '1'..'8', e.g. row 0 col 0 => "A1".
// JSON form: [row, col].
type Move struct {
	Row int
	Col int
}

func validCoord(v int) bool {
	return v >= 0 && v < BoardSize
}

// Valid reports whether both coordinates lie on the board.
func (m Move) Valid() bool {
	return validCoord(m.Row) && validCoord(m.Col)
}

func (m Move) String() string {
	s, err := FormatMove(m.Row, m.Col)
	if err != nil {
		return "Invalid"
	}
	return s
}

// ParseMove decodes a two-character Caia move such as "B3".
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveFormat, s)
	}
	m := Move{
		Row: int(s[0]) - 'A',
		Col: int(s[1]) - '1',
	}
	if !m.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveFormat, s)
	}
	return m, nil
}

// FormatMove encodes a coordinate pair in Caia notation.
func FormatMove(row, col int) (string, error) {
	if !validCoord(row) || !validCoord(col) {
		return "", fmt.Errorf("%w: (%d, %d)", ErrInvalidMoveCoordinate, row, col)
	}
	return string([]byte{byte('A' + row), byte('1' + col)}), nil
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{m.Row, m.Col})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("move must be [row, col], got %d elements", len(pair))
	}
	m.Row, m.Col = pair[0], pair[1]
	return nil
}
