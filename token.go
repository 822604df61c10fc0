package ludo

import "github.com/google/uuid"

// TokenState tags where a token is in its lifecycle.
type TokenState int8

const (
	TokenAtHome    TokenState = iota // in the yard, not yet entered
	TokenOnTrack                     // on the shared main track
	TokenOnStretch                   // on its color's home stretch
	TokenFinished                    // reached the finish cell, permanent
)

var tokenStateNames = [...]string{"home", "track", "stretch", "finished"}

func (s TokenState) String() string {
	if s < TokenAtHome || s > TokenFinished {
		return "unknown"
	}
	return tokenStateNames[s]
}

// Token is a single game piece. Space is a main-track index while the
// token is on the track and a stretch index while it is on the home
// stretch or finished; it is -1 while the token is in the yard. Tokens are
// mutated only by the Game applying a resolved Move.
type Token struct {
	ID    string     `json:"id"`
	Color Color      `json:"color"`
	State TokenState `json:"state"`
	Space int8       `json:"space"`
}

// NewToken returns a fresh token in the yard.
func NewToken(color Color) *Token {
	return &Token{
		ID:    uuid.NewString(),
		Color: color,
		State: TokenAtHome,
		Space: -1,
	}
}

func (t *Token) AtHome() bool {
	return t.State == TokenAtHome
}

func (t *Token) OnTrack() bool {
	return t.State == TokenOnTrack
}

func (t *Token) OnStretch() bool {
	return t.State == TokenOnStretch
}

func (t *Token) Finished() bool {
	return t.State == TokenFinished
}

// TrackSpace returns the token's main-track cell. The second return value
// is false when the token is not on the main track.
func (t *Token) TrackSpace() (int8, bool) {
	if t.State != TokenOnTrack {
		return 0, false
	}
	return t.Space, true
}

// StretchSpace returns the token's home-stretch cell. The second return
// value is false when the token is not on the home stretch.
func (t *Token) StretchSpace() (int8, bool) {
	if t.State != TokenOnStretch {
		return 0, false
	}
	return t.Space, true
}

// Copy returns an independent copy of the token.
func (t *Token) Copy() *Token {
	c := *t
	return &c
}

// apply sets the token to the destination of a resolved move.
func (t *Token) apply(dest Position) {
	t.State = dest.State
	t.Space = dest.Space
}

// sendHome returns a captured token to the yard.
func (t *Token) sendHome() {
	t.State = TokenAtHome
	t.Space = -1
}
