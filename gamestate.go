package ludo

import (
	"encoding/json"
	"fmt"
)

// GameState is an observer-facing snapshot of a match: an independent deep
// copy of the game plus the legal moves available to the turn player.
// Mutating a snapshot never affects the live match.
type GameState struct {
	*Game
	PlayerIndex int8    `json:"playerIndex"` // viewing player, -1 for spectators
	Available   []*Move `json:"available"`   // legal moves for the turn player
}

// State returns a snapshot of the match for the given viewer.
func (g *Game) State(viewer int8) *GameState {
	c := g.Copy()
	return &GameState{
		Game:        c,
		PlayerIndex: viewer,
		Available:   c.LegalMoves(),
	}
}

// LocalPlayer returns the viewing player, or nil for spectators.
func (s *GameState) LocalPlayer() *Player {
	if s.PlayerIndex < 0 || int(s.PlayerIndex) >= len(s.Players) {
		return nil
	}
	return s.Players[s.PlayerIndex]
}

// Serialize returns the persistent form of the match. The record contains
// the full player list with nested token states, the turn index, status,
// roll counters and timestamps; restoring it yields a match that behaves
// identically. No transient engine state is included.
func (g *Game) Serialize() ([]byte, error) {
	buf, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("serialize game: %w", err)
	}
	return buf, nil
}

// RestoreGame reconstructs a match from its serialized form.
func RestoreGame(data []byte) (*Game, error) {
	g := &Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("restore game: %w", err)
	}
	return g, nil
}
