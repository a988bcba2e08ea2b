package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"caia-webclient/reversi"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var depth int
	var seed int64
	cmd := &cobra.Command{
		Use:   "caiaplayer",
		Short: "Reference engine speaking the Caia line protocol on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano() ^ int64(os.Getpid())<<16
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
				With().Timestamp().Int64("seed", seed).Logger()
			return reversi.Play(cmd.InOrStdin(), cmd.OutOrStdout(), reversi.PlayerConfig{
				Depth: depth,
				Rand:  rand.New(rand.NewSource(seed)),
				Log:   log,
			})
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 3, "search depth below each candidate move")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from time and pid)")
	return cmd
}
