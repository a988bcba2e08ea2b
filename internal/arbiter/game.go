// Package arbiter referees games between two engine processes speaking the
// Caia line protocol, and tallies the results of a series of games.
package arbiter

import (
	"fmt"
	"strings"
	"time"

	"caia-webclient/caia"
	"caia-webclient/reversi"
)

// MaxMoves is the length of a complete game: the board fills up.
const MaxMoves = caia.BoardSize*caia.BoardSize - 4

// FailScore is the score of a game decided by a player failing. It is
// positive when Black failed.
const FailScore = 99

// Player is one engine seat as seen by the arbiter.
type Player interface {
	Send(line string) error
	Receive() (string, error)
	Close(timeout time.Duration) error
}

// Seat indexes the two sides of a game.
type Seat int

const (
	SeatWhite Seat = 0
	SeatBlack Seat = 1
)

var seatNames = [2]string{"white", "black"}

func (s Seat) String() string { return seatNames[s] }

type GameResult struct {
	Moves []caia.Move
	// Score is White's stones minus Black's, or +/-FailScore when a player
	// failed.
	Score int
	// Failed is the seat that failed; only meaningful when Err is set.
	Failed Seat
	Err    error
	// Time each seat spent thinking.
	Time [2]time.Duration
}

// Transcript returns the moves in Caia notation, concatenated.
func (r GameResult) Transcript() string {
	var sb strings.Builder
	for _, m := range r.Moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// PlayGame runs one game. White is told "Start", after which each move is
// validated and relayed to the other side until the board is full or a
// player fails.
func PlayGame(white, black Player) GameResult {
	players := [2]Player{white, black}
	board := reversi.InitialBoard()
	var res GameResult

	fail := func(seat Seat, err error) GameResult {
		res.Failed, res.Err = seat, err
		if seat == SeatWhite {
			res.Score = -FailScore
		} else {
			res.Score = FailScore
		}
		return res
	}

	if err := white.Send(caia.Start); err != nil {
		return fail(SeatWhite, fmt.Errorf("send %s: %w", caia.Start, err))
	}
	for len(res.Moves) < MaxMoves {
		seat := Seat(len(res.Moves) & 1)
		start := time.Now()
		line, err := players[seat].Receive()
		res.Time[seat] += time.Since(start)
		if err != nil {
			return fail(seat, fmt.Errorf("%w: %v", ErrNoResponse, err))
		}
		m, err := caia.ParseMove(line)
		if err != nil {
			return fail(seat, fmt.Errorf("%w %q: %v", ErrBadMove, line, err))
		}
		valid := board.ListMoves()
		if err := board.Play(m); err != nil {
			return fail(seat, fmt.Errorf("%w %q (valid moves: %s)", ErrBadMove, line, formatMoves(valid)))
		}
		res.Moves = append(res.Moves, m)
		if len(res.Moves) == MaxMoves {
			break
		}
		other := 1 - seat
		if err := players[other].Send(m.String()); err != nil {
			return fail(other, fmt.Errorf("send %s: %w", m, err))
		}
	}
	res.Score = board.Count(reversi.White) - board.Count(reversi.Black)
	return res
}

func formatMoves(moves []caia.Move) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " ")
}
