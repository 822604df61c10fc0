package ludo

import "github.com/google/uuid"

// Player owns the four tokens of one color. Players know nothing about
// each other; cross-player effects such as captures are resolved by the
// Game using the full roster.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      Color  `json:"color"`
	AI         bool   `json:"ai"`
	Difficulty string `json:"difficulty,omitempty"` // opaque to the engine, interpreted by bots

	Tokens [TokensPerPlayer]*Token `json:"tokens"`
}

// NewPlayer returns a human player with four fresh tokens in the yard.
func NewPlayer(name string, color Color) *Player {
	p := &Player{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
	for i := range p.Tokens {
		p.Tokens[i] = NewToken(color)
	}
	return p
}

// NewBotPlayer returns an AI player. The difficulty tag is carried as-is
// for the bot layer to interpret.
func NewBotPlayer(name string, color Color, difficulty string) *Player {
	p := NewPlayer(name, color)
	p.AI = true
	p.Difficulty = difficulty
	return p
}

// Token returns the owned token with the given id, or nil.
func (p *Player) Token(id string) *Token {
	for _, t := range p.Tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TokensAtHome returns how many of the player's tokens are in the yard.
func (p *Player) TokensAtHome() int {
	n := 0
	for _, t := range p.Tokens {
		if t.AtHome() {
			n++
		}
	}
	return n
}

// TokensInPlay returns how many tokens are on the track or home stretch.
func (p *Player) TokensInPlay() int {
	n := 0
	for _, t := range p.Tokens {
		if t.OnTrack() || t.OnStretch() {
			n++
		}
	}
	return n
}

// TokensFinished returns how many tokens have reached the finish cell.
func (p *Player) TokensFinished() int {
	n := 0
	for _, t := range p.Tokens {
		if t.Finished() {
			n++
		}
	}
	return n
}

// HasWon reports whether all four tokens have finished.
func (p *Player) HasWon() bool {
	return p.TokensFinished() == TokensPerPlayer
}

// MovableTokens returns the tokens with a legal destination for the given
// roll. Legality is checked against the player's own tokens only;
// opposing tokens never make a move illegal, they make it a capture.
func (p *Player) MovableTokens(roll int8) []*Token {
	roster := []*Player{p}
	var movable []*Token
	for _, t := range p.Tokens {
		if ResolveMove(t, roll, roster) != nil {
			movable = append(movable, t)
		}
	}
	return movable
}

// Copy returns an independent copy of the player and their tokens.
func (p *Player) Copy() *Player {
	c := *p
	for i, t := range p.Tokens {
		c.Tokens[i] = t.Copy()
	}
	return &c
}
