package reversi

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog"

	"caia-webclient/caia"
)

type PlayerConfig struct {
	Depth int
	Rand  *rand.Rand
	Log   zerolog.Logger
}

// Play runs one game over the Caia line protocol: moves are read from in
// and written to out, one per line. "Start" as the first line makes this
// side White; an opening move makes it Black. "Quit" ends the game.
func Play(in io.Reader, out io.Writer, cfg PlayerConfig) error {
	log := cfg.Log.With().Str("component", "player").Logger()
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	input := bufio.NewScanner(in)
	board := InitialBoard()
	me := Empty

	for {
		var move caia.Move
		if me == board.Next {
			m, value, ok := board.SelectMove(cfg.Depth, rng)
			if !ok {
				log.Info().Msg("No move possible. Exiting")
				return nil
			}
			log.Debug().Int("value", value).Stringer("move", m).Msg("Selected move")
			if _, err := fmt.Fprintln(out, m); err != nil {
				return fmt.Errorf("write move: %w", err)
			}
			move = m
		} else {
			if !input.Scan() {
				if err := input.Err(); err != nil {
					return fmt.Errorf("read move: %w", err)
				}
				return ErrPrematureInput
			}
			line := input.Text()
			if line == caia.Quit {
				log.Info().Msg("Quit received. Exiting")
				return nil
			}
			if me == Empty {
				if line == caia.Start {
					me = White
					log.Info().Stringer("side", me).Msg("Playing")
					continue
				}
				me = Black
				log.Info().Stringer("side", me).Msg("Playing")
			}
			m, err := caia.ParseMove(line)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrIllegalMove, err)
			}
			move = m
		}
		if err := board.Play(move); err != nil {
			return fmt.Errorf("%w: %s", err, move)
		}
	}
}
