package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"caia-webclient/internal/adapter"
	"caia-webclient/internal/config"
	"caia-webclient/internal/engine"
	"caia-webclient/internal/gameserver"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var argsErr *config.ArgsError
		if errors.As(err, &argsErr) {
			fmt.Println(argsErr.Msg)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", config.ProgramName, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.ProgramName + " <player> <command> [args...]",
		Short: "Play games on a Caia game server with a local engine process",
		Long: "Connects to the game server's update stream and, whenever <player> is to move,\n" +
			"relays the opponent's last move to the engine and submits the engine's answer.",
		// <player> is validated by config and everything after it belongs to
		// the engine command line, so no flags are parsed at all.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromArgs(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			// A second signal kills the process the default way.
			context.AfterFunc(ctx, stop)
			return run(ctx, cfg)
		},
	}
	return cmd
}

func run(ctx context.Context, cfg config.Config) (err error) {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	eng, err := engine.Start(cfg.Command, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(cfg.ShutdownTimeout); cerr != nil && err == nil {
			err = cerr
		}
	}()

	server := gameserver.NewClient(cfg.BaseURL, nil, log)
	a := adapter.New(cfg.Player, eng, server, log)
	log.Info().Str("server", cfg.BaseURL).Stringer("player", cfg.Player).Msg("Client started")

	if err := a.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Info().Int("turns", a.Turns()).Msg("Interrupted, shutting down")
			return nil
		}
		log.Error().Err(err).Int("turns", a.Turns()).Msg("Client stopped")
		return err
	}
	log.Info().Int("turns", a.Turns()).Msg("Game stream ended")
	return nil
}
