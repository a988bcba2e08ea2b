package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"caia-webclient/internal/arbiter"
)

const usage = "Usage: arbiter [--rounds=<N>] [--logs=<filename-prefix>] <player1> <player2>"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg arbiter.Config
	cmd := &cobra.Command{
		Use:   "arbiter [--rounds=<N>] [--logs=<filename-prefix>] <player1> <player2>",
		Short: "Referee games between two engine commands",
		Long: "Runs each player command through /bin/sh, plays them against each other and\n" +
			"prints one line per game followed by a summary when more than one game is played.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%s", usage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Commands = [2]string{args[0], args[1]}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			a := arbiter.New(cfg, arbiter.ShellStart, cmd.OutOrStdout(), log)
			st, err := a.Run()
			if err != nil {
				return err
			}
			if games := cfg.Games(); games > 1 {
				arbiter.WriteStandings(cmd.OutOrStdout(), st, games)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Rounds, "rounds", 0, "rounds of two games with colours swapped (0 plays one game)")
	cmd.Flags().StringVar(&cfg.LogsPrefix, "logs", "", `engine stderr log file prefix ("-" for stderr)`)
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", arbiter.DefaultShutdownTimeout, "time a player gets to exit after Quit")
	return cmd
}
