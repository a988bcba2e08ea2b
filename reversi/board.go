// Package reversi implements the board rules and move search of the
// reference engine that plays through the Caia line protocol.
package reversi

import (
	"strings"

	"caia-webclient/caia"
)

const size = caia.BoardSize

// Cell is the content of a square, and also names the side to move.
type Cell int8

const (
	Empty Cell = 0
	White Cell = 1
	Black Cell = -1
)

func (c Cell) Other() Cell { return -c }

func (c Cell) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// Board is a position. It is a plain value; copying it copies the position.
type Board struct {
	Cells [size][size]Cell
	Next  Cell
}

// InitialBoard returns the opening position. White moves first.
func InitialBoard() Board {
	b := Board{Next: White}
	b.Cells[size/2-1][size/2-1] = White
	b.Cells[size/2-1][size/2] = Black
	b.Cells[size/2][size/2-1] = Black
	b.Cells[size/2][size/2] = White
	return b
}

func onBoard(r, c int) bool {
	return r >= 0 && r < size && c >= 0 && c < size
}

// hasFlips reports whether a stone of p at (r, c) would flip anything: some
// direction runs over occupied squares to a stone of p at distance 2 or more.
func (b *Board) hasFlips(p Cell, r, c int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			for n := 1; ; n++ {
				r2, c2 := r+dr*n, c+dc*n
				if !onBoard(r2, c2) {
					break
				}
				o := b.Cells[r2][c2]
				if o == Empty {
					break
				}
				if o == p && n > 1 {
					return true
				}
			}
		}
	}
	return false
}

// flip inverts every stone between (r, c) and the farthest stone of p in
// each unbroken direction.
func (b *Board) flip(p Cell, r, c int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			last := 0
			for n := 1; ; n++ {
				r2, c2 := r+dr*n, c+dc*n
				if !onBoard(r2, c2) {
					break
				}
				o := b.Cells[r2][c2]
				if o == Empty {
					break
				}
				if o == p {
					last = n
				}
			}
			for n := 1; n < last; n++ {
				cell := &b.Cells[r+dr*n][c+dc*n]
				*cell = cell.Other()
			}
		}
	}
}

func (b *Board) hasOccupiedNeighbor(r, c int) bool {
	for r2 := max(r-1, 0); r2 <= min(r+1, size-1); r2++ {
		for c2 := max(c-1, 0); c2 <= min(c+1, size-1); c2++ {
			if b.Cells[r2][c2] != Empty {
				return true
			}
		}
	}
	return false
}

// ListMoves returns the moves available to the side to move: empty squares
// next to a stone, restricted to those that flip when any of them do.
func (b *Board) ListMoves() []caia.Move {
	var all, flipping []caia.Move
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.Cells[r][c] != Empty || !b.hasOccupiedNeighbor(r, c) {
				continue
			}
			m := caia.Move{Row: r, Col: c}
			all = append(all, m)
			if b.hasFlips(b.Next, r, c) {
				flipping = append(flipping, m)
			}
		}
	}
	if len(flipping) > 0 {
		return flipping
	}
	return all
}

// Legal reports whether m is one of ListMoves.
func (b *Board) Legal(m caia.Move) bool {
	for _, lm := range b.ListMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// Play applies m for the side to move after checking it is legal.
func (b *Board) Play(m caia.Move) error {
	if !m.Valid() || !b.Legal(m) {
		return ErrIllegalMove
	}
	b.apply(m)
	return nil
}

func (b *Board) apply(m caia.Move) {
	p := b.Next
	b.Cells[m.Row][m.Col] = p
	b.flip(p, m.Row, m.Col)
	b.Next = p.Other()
}

// Count returns the number of stones of p.
func (b *Board) Count(p Cell) int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == p {
				n++
			}
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			switch b.Cells[r][c] {
			case White:
				sb.WriteByte('O')
			case Black:
				sb.WriteByte('X')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
