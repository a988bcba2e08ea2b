// Package adapter relays the game server's turn notifications to the engine
// and the engine's moves back to the server.
package adapter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"caia-webclient/caia"
)

// Engine answers one protocol line with one reply line.
type Engine interface {
	Exchange(line string) (string, error)
}

// Server is the game server as seen by the adapter.
type Server interface {
	StreamUpdates(ctx context.Context, fn func(payload string) error) error
	SubmitMove(ctx context.Context, sub caia.Submission) error
}

type Adapter struct {
	player caia.Player
	engine Engine
	server Server
	log    zerolog.Logger
	turns  int
}

func New(player caia.Player, engine Engine, server Server, logger zerolog.Logger) *Adapter {
	return &Adapter{
		player: player,
		engine: engine,
		server: server,
		log:    logger.With().Str("component", "adapter").Str("player", player.String()).Logger(),
	}
}

// Run handles every update the server streams. Any error ends the run.
func (a *Adapter) Run(ctx context.Context) error {
	a.log.Info().Msg("Waiting for game updates")
	return a.server.StreamUpdates(ctx, func(payload string) error {
		return a.HandlePayload(ctx, payload)
	})
}

// Turns returns the number of moves submitted so far.
func (a *Adapter) Turns() int {
	return a.turns
}

// HandlePayload processes one event payload. Updates that do not ask this
// player to move are skipped.
func (a *Adapter) HandlePayload(ctx context.Context, payload string) error {
	update, err := caia.DecodeGameUpdate(payload)
	if err != nil {
		return err
	}
	if !update.IsTurnOf(a.player) {
		a.log.Debug().Str("mode", update.Mode).Stringer("next", update.State.Public.NextPlayer).Msg("Skipping update")
		return nil
	}

	lastMove, err := update.LastMoveText()
	if err != nil {
		return fmt.Errorf("opponent move: %w", err)
	}
	reply, err := a.engine.Exchange(lastMove)
	if err != nil {
		return fmt.Errorf("engine exchange: %w", err)
	}
	move, err := caia.ParseMove(reply)
	if err != nil {
		return fmt.Errorf("engine reply: %w", err)
	}
	if err := a.server.SubmitMove(ctx, caia.NewMoveSubmission(a.player, move)); err != nil {
		return err
	}

	a.turns++
	a.log.Info().Int("turn", a.turns).Str("opponent", lastMove).Stringer("move", move).Msg("Move submitted")
	return nil
}
