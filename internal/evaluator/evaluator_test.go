package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestStartPositionIsSymmetric(t *testing.T) {
	pos := board.NewStartPos()
	e := NewEvaluator(pos)
	v := e.Evaluate()
	// White to move at the start position: material and PSQT are
	// symmetric, so only the tempo bonus should show.
	assert.Greater(t, int(v), 0)
	assert.Less(t, int(v), 100)
}

func TestMaterialAdvantageIsPositive(t *testing.T) {
	pos, err := board.NewFromFEN("4k3/8/8/8/8/8/8/2QK4 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator(pos)
	assert.Greater(t, int(e.Evaluate()), 800)
}

func TestEvaluateIsSideRelative(t *testing.T) {
	posWhite, err := board.NewFromFEN("4k3/8/8/8/8/8/8/2QK4 w - - 0 1")
	require.NoError(t, err)
	posBlack, err := board.NewFromFEN("4k3/8/8/8/8/8/8/2QK4 b - - 0 1")
	require.NoError(t, err)

	vWhite := NewEvaluator(posWhite).Evaluate()
	vBlack := NewEvaluator(posBlack).Evaluate()
	assert.Greater(t, int(vWhite), 0)
	assert.Less(t, int(vBlack), 0)
}

func TestEvaluateDrawnPositionIsZero(t *testing.T) {
	pos, err := board.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator(pos)
	assert.Equal(t, chess.ValueDraw, e.Evaluate())
}

func TestGamePhaseFullMaterial(t *testing.T) {
	pos := board.NewStartPos()
	e := NewEvaluator(pos)
	assert.Equal(t, gamePhaseMax, e.GamePhase())
}

func TestGamePhaseBareKings(t *testing.T) {
	pos, err := board.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator(pos)
	assert.Equal(t, 0, e.GamePhase())
}

func TestPieceValueMatchesMaterialTable(t *testing.T) {
	e := NewEvaluator(board.NewStartPos())
	assert.Equal(t, 900, e.PieceValue(chess.Queen))
	assert.Equal(t, 100, e.PieceValue(chess.Pawn))
	assert.Equal(t, 0, e.PieceValue(chess.PtNone))
}

func TestHasBishopPairRequiresBothBishops(t *testing.T) {
	pos, err := board.NewFromFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator(pos)
	assert.True(t, e.hasBishopPair(chess.White))
	assert.False(t, e.hasBishopPair(chess.Black))
}
