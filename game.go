package ludo

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a match. Finished and Cancelled are
// terminal.
type Status int8

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusPaused
	StatusFinished
	StatusCancelled
)

var statusNames = [...]string{"waiting", "playing", "paused", "finished", "cancelled"}

func (s Status) String() string {
	if s < StatusWaiting || s > StatusCancelled {
		return "unknown"
	}
	return statusNames[s]
}

// DefaultMaxConsecutiveSixes caps how many sixes in a row keep the turn
// with the same player.
const DefaultMaxConsecutiveSixes = 3

// Options configures per-match rules.
type Options struct {
	// MaxConsecutiveSixes forfeits the extra roll once this many sixes
	// have been rolled in a row within one held turn. The move made with
	// the capping six still stands; only the next roll is denied. Zero
	// selects DefaultMaxConsecutiveSixes.
	MaxConsecutiveSixes int8
}

// Game is the authoritative state of one match. It performs no I/O and
// generates no randomness; die values are injected by the caller and every
// operation is synchronous. A Game is not safe for concurrent use; callers
// sharing one across goroutines must serialize access to it.
type Game struct {
	ID               string    `json:"id"`
	Players          []*Player `json:"players"` // insertion order is turn order
	CurrentPlayer    int8      `json:"currentPlayer"`
	Status           Status    `json:"status"`
	Roll             int8      `json:"roll"` // 0 = not rolled this turn
	ConsecutiveSixes int8      `json:"consecutiveSixes"`
	MaxSixes         int8      `json:"maxSixes"`
	Winner           int8      `json:"winner"`   // player index, -1 = none
	Started          int64     `json:"started"`  // unix seconds
	Ended            int64     `json:"ended"`    // unix seconds, set on Finished and Cancelled
	LastMove         int64     `json:"lastMove"` // unix seconds of the last applied move

	handler EventHandler
}

// NewGame creates a match in the Waiting status. Player order is turn
// order.
func NewGame(players []*Player, ops *Options) (*Game, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}
	maxSixes := int8(DefaultMaxConsecutiveSixes)
	if ops != nil && ops.MaxConsecutiveSixes > 0 {
		maxSixes = ops.MaxConsecutiveSixes
	}
	return &Game{
		ID:       uuid.NewString(),
		Players:  players,
		MaxSixes: maxSixes,
		Winner:   -1,
	}, nil
}

// SetEventHandler registers a synchronous observer for engine events. The
// handler is invoked after the state change it reports and must not call
// back into the game.
func (g *Game) SetEventHandler(h EventHandler) {
	g.handler = h
}

func (g *Game) emit(ev any) {
	if g.handler != nil {
		g.handler(ev)
	}
}

// TurnPlayer returns the player whose turn it is.
func (g *Game) TurnPlayer() *Player {
	return g.Players[g.CurrentPlayer]
}

// Start moves the match from Waiting to Playing. The first player in the
// list takes the first turn.
func (g *Game) Start() error {
	if g.Status != StatusWaiting {
		return ErrIllegalStateTransition
	}
	g.Status = StatusPlaying
	g.CurrentPlayer = 0
	g.Started = time.Now().Unix()
	g.LastMove = g.Started
	g.emit(&EventStatus{Event: Event{Type: EventTypeStatus, Player: g.CurrentPlayer}, Status: g.Status})
	return nil
}

// RollDice records an externally generated die value for the current
// player. It never advances the turn.
func (g *Game) RollDice(value int8) error {
	if g.Status != StatusPlaying || g.TurnPlayer().HasWon() {
		return ErrIllegalStateTransition
	}
	if value < 1 || value > 6 {
		return ErrInvalidRoll
	}
	g.Roll = value
	if value == 6 {
		g.ConsecutiveSixes++
	} else {
		g.ConsecutiveSixes = 0
	}
	g.emit(&EventRolled{
		Event:            Event{Type: EventTypeRolled, Player: g.CurrentPlayer},
		Roll:             value,
		ConsecutiveSixes: g.ConsecutiveSixes,
	})
	return nil
}

// ResolveAndApplyMove resolves the current roll against one of the acting
// player's tokens and applies the result: the token relocates, captured
// opposing tokens return to their yards, and either the match finishes or
// the turn advances. The applied move is returned for history and
// broadcast layers. On failure nothing is mutated.
func (g *Game) ResolveAndApplyMove(tokenID string) (*Move, error) {
	if g.Status != StatusPlaying {
		return nil, ErrIllegalStateTransition
	}
	player := g.TurnPlayer()
	token := player.Token(tokenID)
	if token == nil {
		return nil, ErrUnknownToken
	}
	move := ResolveMove(token, g.Roll, g.Players)
	if move == nil {
		return nil, ErrIllegalMove
	}

	token.apply(move.To)
	for _, id := range move.Captured {
		g.returnToYard(id)
	}
	g.LastMove = time.Now().Unix()

	g.emit(&EventMoved{Event: Event{Type: EventTypeMoved, Player: g.CurrentPlayer}, Move: move})
	if len(move.Captured) > 0 {
		g.emit(&EventCaptured{
			Event:    Event{Type: EventTypeCaptured, Player: g.CurrentPlayer},
			Space:    move.To.Space,
			TokenIDs: move.Captured,
		})
	}

	if player.HasWon() {
		g.Status = StatusFinished
		g.Winner = g.CurrentPlayer
		g.Ended = time.Now().Unix()
		g.emit(&EventFinished{Event: Event{Type: EventTypeFinished, Player: g.CurrentPlayer}, Winner: g.Winner})
		return move, nil
	}

	g.advanceTurn()
	return move, nil
}

// AdvanceTurn passes the turn according to the six rule. It is also the
// entrypoint for externally enforced turn timeouts; the engine never
// advances turns on its own clock.
func (g *Game) AdvanceTurn() error {
	if g.Status != StatusPlaying {
		return ErrIllegalStateTransition
	}
	g.advanceTurn()
	return nil
}

func (g *Game) advanceTurn() {
	// A six grants another roll unless the cap was just reached.
	if g.Roll == 6 && g.ConsecutiveSixes < g.MaxSixes {
		g.Roll = 0
		return
	}
	n := int8(len(g.Players))
	for i := int8(1); i <= n; i++ {
		next := (g.CurrentPlayer + i) % n
		if !g.Players[next].HasWon() {
			g.CurrentPlayer = next
			break
		}
	}
	g.Roll = 0
	g.ConsecutiveSixes = 0
	g.emit(&EventTurn{Event: Event{Type: EventTypeTurn, Player: g.CurrentPlayer}})
}

// Pause suspends a running match.
func (g *Game) Pause() error {
	if g.Status != StatusPlaying {
		return ErrIllegalStateTransition
	}
	g.Status = StatusPaused
	g.emit(&EventStatus{Event: Event{Type: EventTypeStatus, Player: g.CurrentPlayer}, Status: g.Status})
	return nil
}

// Resume continues a paused match.
func (g *Game) Resume() error {
	if g.Status != StatusPaused {
		return ErrIllegalStateTransition
	}
	g.Status = StatusPlaying
	g.emit(&EventStatus{Event: Event{Type: EventTypeStatus, Player: g.CurrentPlayer}, Status: g.Status})
	return nil
}

// Cancel abandons a match that has not finished.
func (g *Game) Cancel() error {
	if g.Status != StatusWaiting && g.Status != StatusPlaying {
		return ErrIllegalStateTransition
	}
	g.Status = StatusCancelled
	g.Ended = time.Now().Unix()
	g.emit(&EventStatus{Event: Event{Type: EventTypeStatus, Player: g.CurrentPlayer}, Status: g.Status})
	return nil
}

// LegalMoves returns every legal move for the turn player and the current
// roll. It returns nil before the player has rolled.
func (g *Game) LegalMoves() []*Move {
	if g.Status != StatusPlaying || g.Roll == 0 {
		return nil
	}
	var moves []*Move
	for _, t := range g.TurnPlayer().Tokens {
		if m := ResolveMove(t, g.Roll, g.Players); m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// Copy returns an independent deep copy of the match. The event handler is
// not carried over.
func (g *Game) Copy() *Game {
	c := *g
	c.handler = nil
	c.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.Copy()
	}
	return &c
}

// returnToYard sends a captured token back to its yard, wherever it lives
// in the roster.
func (g *Game) returnToYard(tokenID string) {
	for _, p := range g.Players {
		if t := p.Token(tokenID); t != nil {
			t.sendHome()
			return
		}
	}
}
