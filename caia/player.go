package caia

import (
	"fmt"
	"strconv"
)

// Player identifies a side. The server numbers them 1 and 2.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) String() string {
	return strconv.Itoa(int(p))
}

// ParsePlayer accepts exactly "1" or "2".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "1":
		return Player1, nil
	case "2":
		return Player2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}
