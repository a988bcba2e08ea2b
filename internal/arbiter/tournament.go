package arbiter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"caia-webclient/internal/engine"
)

const DefaultShutdownTimeout = 2 * time.Second

// StartFunc launches the engine for one seat. Its stderr goes to log.
type StartFunc func(command string, log zerolog.Logger) (Player, error)

// ShellStart runs command through /bin/sh, so it may carry arguments and
// redirections.
func ShellStart(command string, log zerolog.Logger) (Player, error) {
	p, err := engine.Start([]string{"/bin/sh", "-c", command}, log)
	if err != nil {
		return nil, err
	}
	return p, nil
}

type Config struct {
	// Commands of the two competitors.
	Commands [2]string
	// Rounds of two games each, with colours swapped. Zero plays one game.
	Rounds int
	// LogsPrefix selects where engine stderr goes: "" discards it, "-" sends
	// it to stderr, anything else is a file name prefix.
	LogsPrefix      string
	ShutdownTimeout time.Duration
}

// Games returns how many games the configuration plays.
func (c Config) Games() int {
	if c.Rounds <= 0 {
		return 1
	}
	return 2 * c.Rounds
}

// Standing is one competitor's tally over the series.
type Standing struct {
	Command string
	Wins    int
	Ties    int
	Losses  int
	Fails   int
	// Points scored playing each colour.
	ColorScore [2]int
	Score      int
	TotalTime  time.Duration
	MaxTime    time.Duration
}

type Arbiter struct {
	cfg   Config
	start StartFunc
	out   io.Writer
	log   zerolog.Logger
}

func New(cfg Config, start StartFunc, out io.Writer, logger zerolog.Logger) *Arbiter {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Arbiter{
		cfg:   cfg,
		start: start,
		out:   out,
		log:   logger.With().Str("component", "arbiter").Logger(),
	}
}

// Run plays the series, printing one line per game, and returns the
// standings of the two competitors in command order.
func (a *Arbiter) Run() ([2]Standing, error) {
	var st [2]Standing
	for i := range st {
		st[i].Command = a.cfg.Commands[i]
	}
	games := a.cfg.Games()
	for game := 0; game < games; game++ {
		p := game & 1
		q := 1 - p
		res, err := a.runGame(game, [2]int{p, q})
		if err != nil {
			return st, err
		}
		sign := ""
		if res.Score > 0 {
			sign = "+"
		}
		fmt.Fprintf(a.out, "%4d: %s %s%d\n", game, res.Transcript(), sign, res.Score)

		st[p].record(res.Score, SeatWhite, res.Time[SeatWhite])
		st[q].record(-res.Score, SeatBlack, res.Time[SeatBlack])
	}
	return st, nil
}

func (s *Standing) record(score int, seat Seat, used time.Duration) {
	s.Score += score
	s.ColorScore[seat] += score
	switch {
	case score > 0:
		s.Wins++
	case score < 0:
		s.Losses++
	default:
		s.Ties++
	}
	if score == -FailScore {
		s.Fails++
	}
	s.TotalTime += used
	s.MaxTime = max(s.MaxTime, used)
}

// runGame plays one game with competitor order[0] as White.
func (a *Arbiter) runGame(game int, order [2]int) (GameResult, error) {
	var players [2]Player
	for seat := SeatWhite; seat <= SeatBlack; seat++ {
		idx := order[seat]
		logger, closeLog, err := a.playerLog(game, idx, seat)
		if err != nil {
			return GameResult{}, err
		}
		defer closeLog()
		pl, err := a.start(a.cfg.Commands[idx], logger)
		if err != nil {
			return GameResult{}, fmt.Errorf("start p%d: %w", idx+1, err)
		}
		defer func() {
			if err := pl.Close(a.cfg.ShutdownTimeout); err != nil {
				a.log.Warn().Err(err).Int("game", game).Stringer("seat", seat).Msg("Player did not exit normally")
			}
		}()
		players[seat] = pl
	}

	res := PlayGame(players[SeatWhite], players[SeatBlack])
	if res.Err != nil {
		a.log.Warn().Err(res.Err).Int("game", game).Stringer("seat", res.Failed).Msg("Player failed")
	}
	return res, nil
}

func (a *Arbiter) playerLog(game, idx int, seat Seat) (zerolog.Logger, func(), error) {
	switch a.cfg.LogsPrefix {
	case "":
		return zerolog.Nop(), func() {}, nil
	case "-":
		return a.log.With().Str("player", fmt.Sprintf("p%d", idx+1)).Logger(), func() {}, nil
	}
	name := fmt.Sprintf("%s%04d_p%d_%s", a.cfg.LogsPrefix, game, idx+1, seat)
	f, err := os.Create(name)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create player log: %w", err)
	}
	return zerolog.New(f).With().Timestamp().Logger(), func() { _ = f.Close() }, nil
}

// WriteStandings prints the summary table of a series.
func WriteStandings(w io.Writer, st [2]Standing, games int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Player               AvgTm MaxTm Wins Ties Loss Fail WhtPts BlkPts  Total")
	fmt.Fprintln(w, "-------------------- ----- ----- ---- ---- ---- ---- ------ ------ ------")
	for _, s := range st {
		fmt.Fprintf(w, "%-20s %.3f %.3f %4d %4d %4d %4d %+6d %+6d %+6d\n",
			shortName(s.Command),
			s.TotalTime.Seconds()/float64(games), s.MaxTime.Seconds(),
			s.Wins, s.Ties, s.Losses, s.Fails,
			s.ColorScore[SeatWhite], s.ColorScore[SeatBlack], s.Score)
	}
}

// shortName drops leading path components of long commands.
func shortName(command string) string {
	for len(command) > 20 {
		i := strings.IndexByte(command, '/')
		if i < 0 {
			break
		}
		command = command[i+1:]
	}
	return command
}
