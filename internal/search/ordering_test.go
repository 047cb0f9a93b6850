package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/pkg/chess"
)

func newTestEngine(fen string) (*Engine, *board.Position) {
	pos, err := board.NewFromFEN(fen)
	if err != nil {
		panic(err)
	}
	eval := evaluator.NewEvaluator(pos)
	return NewEngine(pos, eval, 1), pos
}

func TestSortMovesPutsPVMoveFirst(t *testing.T) {
	e, pos := newTestEngine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var buf [256]chess.Move
	n := pos.GenerateLegalMoves(buf[:])
	moves := buf[:n]

	pv := moves[n-1]
	e.pv.save(0, pv.MoveOf())

	e.sortMoves(moves, 0, chess.NoMove, chess.NoMove)
	assert.Equal(t, pv.MoveOf(), moves[0].MoveOf())
}

func TestSortMovesPutsHashMoveFirstWhenNoPV(t *testing.T) {
	e, pos := newTestEngine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var buf [256]chess.Move
	n := pos.GenerateLegalMoves(buf[:])
	moves := buf[:n]

	hashMove := moves[n-1]
	e.sortMoves(moves, 0, hashMove, chess.NoMove)
	assert.Equal(t, hashMove.MoveOf(), moves[0].MoveOf())
}

func TestSortMovesOrdersWinningCapturesAheadOfQuiets(t *testing.T) {
	e, pos := newTestEngine("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	var buf [256]chess.Move
	n := pos.GenerateLegalMoves(buf[:])
	moves := buf[:n]

	e.sortMoves(moves, 0, chess.NoMove, chess.NoMove)
	require.True(t, moves[0].IsCapture(), "expected the winning pawn-takes-queen capture to sort first")
}

func TestSortMovesRanksQuietPromotionAboveOrdinaryQuiets(t *testing.T) {
	e, pos := newTestEngine("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var buf [256]chess.Move
	n := pos.GenerateLegalMoves(buf[:])
	moves := buf[:n]

	e.sortMoves(moves, 0, chess.NoMove, chess.NoMove)
	require.True(t, moves[0].IsPromotion(), "expected the quiet pawn promotion to outrank ordinary king moves")
	require.False(t, moves[0].IsCapture(), "a7a8 has no piece to capture on a8")
}

func TestQuiescenceOrderingSortsByDescendingCaptureScore(t *testing.T) {
	e, pos := newTestEngine("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	var buf [256]chess.Move
	n := pos.GenerateLegalMoves(buf[:])
	moves := buf[:n]
	e.sortMoves(moves, -1, chess.NoMove, chess.NoMove)
	assert.GreaterOrEqual(t, e.captureScore(moves[0], chess.NoMove), e.captureScore(moves[n-1], chess.NoMove))
}
