package ludo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOnTrack(t *Token, space int8) {
	t.State = TokenOnTrack
	t.Space = space
}

func placeOnStretch(t *Token, space int8) {
	t.State = TokenOnStretch
	t.Space = space
}

func finish(t *Token) {
	t.State = TokenFinished
	t.Space = FinishSpace
}

func twoPlayers() (*Player, *Player, []*Player) {
	a := NewPlayer("a", Red)
	b := NewPlayer("b", Blue)
	return a, b, []*Player{a, b}
}

func TestResolveFromYard(t *testing.T) {
	a, _, roster := twoPlayers()
	token := a.Tokens[0]

	for roll := int8(1); roll <= 5; roll++ {
		assert.Nil(t, ResolveMove(token, roll, roster), "roll %d", roll)
	}

	m := ResolveMove(token, 6, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveNormal, m.Kind)
	assert.Equal(t, Position{State: TokenAtHome, Space: -1}, m.From)
	assert.Equal(t, Position{State: TokenOnTrack, Space: StartSpace(Red)}, m.To)
}

func TestResolveFromYardSelfBlocked(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnTrack(a.Tokens[1], StartSpace(Red))

	assert.Nil(t, ResolveMove(a.Tokens[0], 6, roster))
}

func TestResolveTrackAdvance(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 5)

	m := ResolveMove(a.Tokens[0], 3, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveNormal, m.Kind)
	assert.Equal(t, Position{State: TokenOnTrack, Space: 8}, m.To)
}

func TestResolveTrackWrapsAroundZero(t *testing.T) {
	_, b, roster := twoPlayers()
	placeOnTrack(b.Tokens[0], 50)

	// Blue's home entry is cell 11, far ahead; this is a plain advance
	// across the track origin.
	m := ResolveMove(b.Tokens[0], 4, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveNormal, m.Kind)
	assert.Equal(t, Position{State: TokenOnTrack, Space: 2}, m.To)
}

func TestResolveHomeEntry(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 48)

	m := ResolveMove(a.Tokens[0], 4, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveHomeEntry, m.Kind)
	assert.Equal(t, Position{State: TokenOnStretch, Space: 1}, m.To)
}

func TestResolveFromEntryCell(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], HomeEntrySpace(Red))

	// From the entry cell every roll lands inside the stretch; a six is
	// the exact finish.
	m := ResolveMove(a.Tokens[0], 3, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveHomeEntry, m.Kind)
	assert.Equal(t, Position{State: TokenOnStretch, Space: 2}, m.To)

	m = ResolveMove(a.Tokens[0], 6, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveFinish, m.Kind)
	assert.Equal(t, Position{State: TokenFinished, Space: FinishSpace}, m.To)
}

func TestResolveStretchMoves(t *testing.T) {
	tests := []struct {
		name    string
		from    int8
		roll    int8
		to      int8
		kind    MoveKind
		illegal bool
	}{
		{name: "advance", from: 1, roll: 2, to: 3, kind: MoveNormal},
		{name: "exact finish", from: 2, roll: 3, to: FinishSpace, kind: MoveFinish},
		{name: "overshoot", from: 3, roll: 4, illegal: true},
		{name: "one short", from: 0, roll: 4, to: 4, kind: MoveNormal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _, roster := twoPlayers()
			placeOnStretch(a.Tokens[0], tc.from)

			m := ResolveMove(a.Tokens[0], tc.roll, roster)
			if tc.illegal {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tc.kind, m.Kind)
			assert.Equal(t, tc.to, m.To.Space)
		})
	}
}

func TestResolveFinishedTokenNeverMoves(t *testing.T) {
	a, _, roster := twoPlayers()
	finish(a.Tokens[0])

	for roll := int8(1); roll <= 6; roll++ {
		assert.Nil(t, ResolveMove(a.Tokens[0], roll, roster))
	}
}

func TestResolveCapture(t *testing.T) {
	a, b, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 7)
	placeOnTrack(b.Tokens[0], 10)

	m := ResolveMove(a.Tokens[0], 3, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveCapture, m.Kind)
	assert.Equal(t, []string{b.Tokens[0].ID}, m.Captured)
}

func TestResolveCaptureStackedTokens(t *testing.T) {
	a, b, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 7)
	placeOnTrack(b.Tokens[0], 10)
	placeOnTrack(b.Tokens[1], 10)

	m := ResolveMove(a.Tokens[0], 3, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveCapture, m.Kind)
	assert.ElementsMatch(t, []string{b.Tokens[0].ID, b.Tokens[1].ID}, m.Captured)
}

func TestResolveNoCaptureOnSafeCell(t *testing.T) {
	a, b, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 5)
	placeOnTrack(b.Tokens[0], 8)

	m := ResolveMove(a.Tokens[0], 3, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveNormal, m.Kind)
	assert.Empty(t, m.Captured)
}

func TestResolveSelfBlock(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 5)
	placeOnTrack(a.Tokens[1], 8)

	assert.Nil(t, ResolveMove(a.Tokens[0], 3, roster))
}

func TestResolveSelfBlockOnStretch(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnStretch(a.Tokens[0], 0)
	placeOnStretch(a.Tokens[1], 2)

	assert.Nil(t, ResolveMove(a.Tokens[0], 2, roster))
}

func TestResolveFinishCellHoldsEveryToken(t *testing.T) {
	a, _, roster := twoPlayers()
	finish(a.Tokens[0])
	placeOnStretch(a.Tokens[1], 2)

	// The finish cell is shared; a finished sibling never blocks it.
	m := ResolveMove(a.Tokens[1], 3, roster)
	require.NotNil(t, m)
	assert.Equal(t, MoveFinish, m.Kind)
}

func TestResolveRejectsInvalidRolls(t *testing.T) {
	a, _, roster := twoPlayers()
	placeOnTrack(a.Tokens[0], 5)

	assert.Nil(t, ResolveMove(a.Tokens[0], 0, roster))
	assert.Nil(t, ResolveMove(a.Tokens[0], 7, roster))
}
