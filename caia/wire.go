package caia

import (
	"encoding/json"
	"fmt"
)

const (
	ModeMove   = "move"
	ActionMove = "move"
)

// GameUpdate is one payload of the server's game-updates stream. Only the
// fields the client acts on are decoded.
type GameUpdate struct {
	Mode     string    `json:"mode"`
	State    GameState `json:"state"`
	LastMove *Move     `json:"lastMove,omitempty"`
}

type GameState struct {
	Public PublicState `json:"public"`
}

type PublicState struct {
	NextPlayer Player `json:"nextPlayer"`
}

// Submission is the body posted to the update-game endpoint.
type Submission struct {
	Action string `json:"action"`
	Player string `json:"player"`
	Move   Move   `json:"move"`
}

func DecodeGameUpdate(payload string) (GameUpdate, error) {
	var u GameUpdate
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		return GameUpdate{}, fmt.Errorf("decode game update: %w", err)
	}
	return u, nil
}

// IsTurnOf reports whether the update asks player p to move.
func (u GameUpdate) IsTurnOf(p Player) bool {
	return u.Mode == ModeMove && u.State.Public.NextPlayer == p
}

// LastMoveText returns the opponent's last move in Caia notation, or Start
// when the update opens the game.
func (u GameUpdate) LastMoveText() (string, error) {
	if u.LastMove == nil {
		return Start, nil
	}
	return FormatMove(u.LastMove.Row, u.LastMove.Col)
}

func NewMoveSubmission(p Player, m Move) Submission {
	return Submission{
		Action: ActionMove,
		Player: p.String(),
		Move:   m,
	}
}
