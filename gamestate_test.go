package ludo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsIndependent(t *testing.T) {
	g := startTestGame(t, "a", "b")
	placeOnTrack(g.Players[0].Tokens[0], 5)
	require.NoError(t, g.RollDice(3))

	s := g.State(0)
	require.NotNil(t, s.LocalPlayer())
	assert.Equal(t, "a", s.LocalPlayer().Name)
	require.Len(t, s.Available, 1)

	// Mutating the snapshot must not leak into the live match.
	s.Players[0].Tokens[0].Space = 40
	s.Status = StatusCancelled
	assert.Equal(t, int8(5), g.Players[0].Tokens[0].Space)
	assert.Equal(t, StatusPlaying, g.Status)
}

func TestSpectatorSnapshot(t *testing.T) {
	g := startTestGame(t, "a", "b")
	s := g.State(-1)
	assert.Nil(t, s.LocalPlayer())
}

func TestSerializeRestoreRoundTrip(t *testing.T) {
	g := startTestGame(t, "a", "b")
	a := g.Players[0]
	placeOnTrack(a.Tokens[0], 7)
	placeOnTrack(g.Players[1].Tokens[0], 10)
	require.NoError(t, g.RollDice(3))

	buf, err := g.Serialize()
	require.NoError(t, err)

	restored, err := RestoreGame(buf)
	require.NoError(t, err)
	assert.Equal(t, g, restored)

	// The restored match behaves identically: apply the same move to
	// both and compare the serialized results.
	_, err = g.ResolveAndApplyMove(a.Tokens[0].ID)
	require.NoError(t, err)
	_, err = restored.ResolveAndApplyMove(a.Tokens[0].ID)
	require.NoError(t, err)

	// Timestamps track the wall clock; align them before comparing.
	restored.LastMove = g.LastMove
	assert.Equal(t, g, restored)
}

func TestRestoreRejectsGarbage(t *testing.T) {
	_, err := RestoreGame([]byte("not json"))
	assert.Error(t, err)
}
