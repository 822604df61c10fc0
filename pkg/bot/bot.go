// Package bot picks moves for AI players. The engine treats the
// difficulty tag on a player as opaque; this package is the layer that
// interprets it. Bots only ever choose among moves the engine already
// resolved as legal.
package bot

import (
	"codeberg.org/dkvist/ludo"
)

// Difficulty tags understood by New. They are plain strings so that
// embedders can persist them alongside player records.
const (
	DifficultyEasy     = "easy"
	DifficultyStandard = "standard"
	DifficultyHard     = "hard"
)

// Strategy selects one of the legal moves for the turn player.
type Strategy interface {
	// ChooseMove picks a move from a non-empty set of legal moves.
	ChooseMove(g *ludo.Game, moves []*ludo.Move) *ludo.Move
}

// New returns the strategy for a difficulty tag. Unknown tags fall back to
// the standard strategy.
func New(difficulty string) Strategy {
	switch difficulty {
	case DifficultyEasy:
		return &RandomBot{}
	case DifficultyHard:
		return &CautiousBot{Weights: CautiousTuning}
	default:
		return &StandardBot{Weights: DefaultTuning}
	}
}

// RandomBot plays a uniformly random legal move.
type RandomBot struct{}

func (b *RandomBot) ChooseMove(g *ludo.Game, moves []*ludo.Move) *ludo.Move {
	return moves[RandInt(len(moves))]
}

// StandardBot scores moves by their immediate value: captures, finishes
// and home entries first, raw progress otherwise.
type StandardBot struct {
	Weights Tuning
}

func (b *StandardBot) ChooseMove(g *ludo.Game, moves []*ludo.Move) *ludo.Move {
	return bestMove(g, moves, b.Weights)
}

// CautiousBot scores like StandardBot but also weighs how exposed the
// destination leaves the token to opposing throws.
type CautiousBot struct {
	Weights Tuning
}

func (b *CautiousBot) ChooseMove(g *ludo.Game, moves []*ludo.Move) *ludo.Move {
	return bestMove(g, moves, b.Weights)
}

func bestMove(g *ludo.Game, moves []*ludo.Move, w Tuning) *ludo.Move {
	best := moves[0]
	bestScore := scoreMove(g, best, w)
	for _, m := range moves[1:] {
		if s := scoreMove(g, m, w); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best
}

func scoreMove(g *ludo.Game, m *ludo.Move, w Tuning) int {
	score := int(m.Roll) * w.Progress
	switch m.Kind {
	case ludo.MoveCapture:
		score += w.Capture * len(m.Captured)
	case ludo.MoveFinish:
		score += w.Finish
	case ludo.MoveHomeEntry:
		score += w.HomeEntry
	}
	if m.From.State == ludo.TokenAtHome {
		score += w.Enter
	}
	if m.To.State == ludo.TokenOnTrack {
		if ludo.IsSafeSpace(m.To.Space) {
			score += w.SafeCell
		}
		score -= w.Exposure * threats(g, m)
	}
	return score
}

// threats counts opposing track tokens within one throw behind the
// destination cell.
func threats(g *ludo.Game, m *ludo.Move) int {
	n := 0
	for _, p := range g.Players {
		if p.Color == m.Color {
			continue
		}
		for _, t := range p.Tokens {
			space, ok := t.TrackSpace()
			if !ok {
				continue
			}
			d := int(m.To.Space) - int(space)
			if d < 0 {
				d += ludo.BoardSpaces
			}
			if d >= 1 && d <= 6 {
				n++
			}
		}
	}
	return n
}
