package ludo

// MoveKind distinguishes what applying a move does beyond relocating the
// moving token.
type MoveKind int8

const (
	MoveNormal    MoveKind = iota
	MoveCapture            // lands on opposing tokens and sends them home
	MoveHomeEntry          // leaves the track for the color's home stretch
	MoveFinish             // reaches the finish cell
)

var moveKindNames = [...]string{"normal", "capture", "homeentry", "finish"}

func (k MoveKind) String() string {
	if k < MoveNormal || k > MoveFinish {
		return "unknown"
	}
	return moveKindNames[k]
}

// Position is a resolved token location: a state tag plus the index that
// state gives meaning to.
type Position struct {
	State TokenState `json:"state"`
	Space int8       `json:"space"`
}

// Move is the resolved consequence of moving one token by one die value.
// Moves are produced by ResolveMove and applied by the Game; the engine
// hands them to the caller for history, replay or broadcast and does not
// retain them.
type Move struct {
	TokenID  string   `json:"tokenId"`
	Color    Color    `json:"color"`
	Roll     int8     `json:"roll"`
	Kind     MoveKind `json:"kind"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured []string `json:"captured,omitempty"` // opposing token ids sent home
}

// ResolveMove returns the single legal move for the token and roll, or nil
// when the token cannot move. The roster is every player in the match; it
// supplies the self-block and capture checks. ResolveMove mutates nothing.
func ResolveMove(t *Token, roll int8, roster []*Player) *Move {
	if roll < 1 || roll > 6 {
		return nil
	}

	var dest Position
	kind := MoveNormal

	switch t.State {
	case TokenFinished:
		return nil
	case TokenAtHome:
		// Leaving the yard takes a six.
		if roll != 6 {
			return nil
		}
		dest = Position{State: TokenOnTrack, Space: StartSpace(t.Color)}
	case TokenOnStretch:
		target := t.Space + roll
		if target > FinishSpace {
			// Overshot the finish. No bounce-back; the token waits for an
			// exact or smaller roll.
			return nil
		}
		if target == FinishSpace {
			dest = Position{State: TokenFinished, Space: FinishSpace}
			kind = MoveFinish
		} else {
			dest = Position{State: TokenOnStretch, Space: target}
		}
	case TokenOnTrack:
		ahead := trackDistance(t.Space, HomeEntrySpace(t.Color))
		if roll > ahead {
			// Crosses the home entry cell; the overflow walks the stretch.
			target := roll - ahead - 1
			if target > FinishSpace {
				return nil
			}
			if target == FinishSpace {
				dest = Position{State: TokenFinished, Space: FinishSpace}
				kind = MoveFinish
			} else {
				dest = Position{State: TokenOnStretch, Space: target}
				kind = MoveHomeEntry
			}
		} else {
			dest = Position{State: TokenOnTrack, Space: (t.Space + roll) % BoardSpaces}
		}
	default:
		return nil
	}

	// A player may not stack two of their own tokens on one cell. The
	// finish cell is the exception; every token ends there.
	if dest.State != TokenFinished && selfBlocked(t, dest, roster) {
		return nil
	}

	var captured []string
	if dest.State == TokenOnTrack && !IsSafeSpace(dest.Space) {
		captured = tokensAt(dest, t.Color, roster)
		if len(captured) > 0 {
			kind = MoveCapture
		}
	}

	return &Move{
		TokenID:  t.ID,
		Color:    t.Color,
		Roll:     roll,
		Kind:     kind,
		From:     Position{State: t.State, Space: t.Space},
		To:       dest,
		Captured: captured,
	}
}

// selfBlocked reports whether another token of the same color already
// occupies the destination cell.
func selfBlocked(t *Token, dest Position, roster []*Player) bool {
	for _, p := range roster {
		if p.Color != t.Color {
			continue
		}
		for _, other := range p.Tokens {
			if other.ID == t.ID {
				continue
			}
			if other.State == dest.State && other.Space == dest.Space {
				return true
			}
		}
	}
	return false
}

// tokensAt returns the ids of every opposing token on the given main-track
// cell. Stacked opposing tokens are all captured together.
func tokensAt(dest Position, mover Color, roster []*Player) []string {
	var ids []string
	for _, p := range roster {
		if p.Color == mover {
			continue
		}
		for _, t := range p.Tokens {
			if t.State == TokenOnTrack && t.Space == dest.Space {
				ids = append(ids, t.ID)
			}
		}
	}
	return ids
}
