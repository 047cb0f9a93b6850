package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestStoreAndProbeExact(t *testing.T) {
	tb := New(1)
	m := chess.NewMove(0, 1, chess.MakePiece(chess.White, chess.Pawn), chess.PtNone, chess.PtNone, chess.Normal)
	tb.Store(42, m, 5, 120, Exact, 100, 0)

	v, ok := tb.Probe(42, 5, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, chess.Value(120), v)
	assert.Equal(t, m.MoveOf(), tb.BestMove(42).MoveOf())
}

func TestProbeRequiresSufficientDepth(t *testing.T) {
	tb := New(1)
	tb.Store(7, chess.NoMove, 3, 50, Exact, 0, 0)
	_, ok := tb.Probe(7, 5, -1000, 1000, 0)
	assert.False(t, ok)
}

func TestProbeBoundSemantics(t *testing.T) {
	tb := New(1)
	tb.Store(1, chess.NoMove, 4, 100, LowerBound, 0, 0)
	// a lower bound is only usable if it's >= beta
	_, ok := tb.Probe(1, 4, -1000, 90, 0)
	assert.True(t, ok)
	_, ok = tb.Probe(1, 4, -1000, 200, 0)
	assert.False(t, ok)
}

func TestExactEntryResistsShallowerNonExactOverwrite(t *testing.T) {
	tb := New(1)
	tb.Store(9, chess.NoMove, 10, 100, Exact, 0, 0)
	tb.Store(9, chess.NoMove, 3, -50, UpperBound, 0, 0)

	v, ok := tb.Probe(9, 10, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, chess.Value(100), v)
}

func TestEqualDepthExactReplacementIsAllowed(t *testing.T) {
	tb := New(1)
	tb.Store(9, chess.NoMove, 5, 100, Exact, 0, 0)
	tb.Store(9, chess.NoMove, 5, 200, Exact, 0, 0)

	v, ok := tb.Probe(9, 5, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, chess.Value(200), v)
}

func TestMateScoreRebasing(t *testing.T) {
	mate := chess.MateIn(2) // found 2 ply below the node that stores it
	tb := New(1)
	tb.Store(5, chess.NoMove, 10, mate, Exact, 0, 3) // stored from ply 3

	v, ok := tb.Probe(5, 10, -chess.Inf, chess.Inf, 3)
	assert.True(t, ok)
	assert.Equal(t, mate, v)

	// probing from a different ply must rebase the same stored value
	v2, ok := tb.Probe(5, 10, -chess.Inf, chess.Inf, 1)
	assert.True(t, ok)
	assert.Equal(t, mate+2, v2)
}

func TestHashfullAndClear(t *testing.T) {
	tb := New(1)
	assert.Equal(t, 0, tb.Hashfull())
	tb.Store(1, chess.NoMove, 1, 0, Exact, 0, 0)
	assert.True(t, tb.Len() > 0)
	tb.Clear()
	assert.Equal(t, uint64(0), tb.Len())
}
