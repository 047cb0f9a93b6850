package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestEngineFindsBackRankMateInOne(t *testing.T) {
	pos, err := board.NewFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	eval := evaluator.NewEvaluator(pos)
	e := NewEngine(pos, eval, 1)
	e.MaxDepth = 2

	result := e.StartSearch(time.Now().Add(2*time.Second), false)

	assert.Equal(t, chess.Square(0), result.BestMove.From())
	assert.Equal(t, chess.Square(56), result.BestMove.To())
	assert.True(t, result.Score.IsMate())
	assert.Greater(t, int(result.Score), 0)
}

func TestSearchReturnsZeroAtRootOnThreefoldRepetition(t *testing.T) {
	pos := board.NewStartPos()
	knight := chess.MakePiece(chess.White, chess.Knight)
	bKnight := chess.MakePiece(chess.Black, chess.Knight)
	shuffle := []chess.Move{
		chess.NewMove(chess.Square(6), chess.Square(21), knight, chess.PtNone, chess.PtNone, chess.Normal),   // Ng1-f3
		chess.NewMove(chess.Square(62), chess.Square(45), bKnight, chess.PtNone, chess.PtNone, chess.Normal), // Ng8-f6
		chess.NewMove(chess.Square(21), chess.Square(6), knight, chess.PtNone, chess.PtNone, chess.Normal),   // Nf3-g1
		chess.NewMove(chess.Square(45), chess.Square(62), bKnight, chess.PtNone, chess.PtNone, chess.Normal), // Nf6-g8
	}
	moves := append(append([]chess.Move{}, shuffle...), shuffle...)
	require.NoError(t, pos.SetPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", moves))
	require.True(t, pos.IsDraw(), "the knight shuffle should have reached the start position a third time")

	eval := evaluator.NewEvaluator(pos)
	e := NewEngine(pos, eval, 1)
	e.MaxDepth = 3

	result := e.StartSearch(time.Now().Add(2*time.Second), false)

	assert.Equal(t, chess.Value(0), result.Score, "a position repeated three times must score 0 at the root, not only below it")
}

func TestStartSearchIgnoredWhileAlreadyRunning(t *testing.T) {
	pos := board.NewStartPos()
	eval := evaluator.NewEvaluator(pos)
	e := NewEngine(pos, eval, 1)
	e.MaxDepth = chess.MaxPly - 1

	require.True(t, e.isRunning.TryAcquire(1))
	result := e.StartSearch(time.Now().Add(time.Hour), false)
	e.isRunning.Release(1)

	assert.Equal(t, chess.NoMove, result.BestMove)
	assert.Equal(t, chess.Value(0), result.Score)
}

func TestNewGameClearsTablesAndCache(t *testing.T) {
	pos := board.NewStartPos()
	eval := evaluator.NewEvaluator(pos)
	e := NewEngine(pos, eval, 1)
	e.MaxDepth = 3
	_ = e.StartSearch(time.Now().Add(time.Second), false)

	e.NewGame()
	assert.Equal(t, uint64(0), e.cache.Len())
}

func TestIsSearchingFalseWhenIdle(t *testing.T) {
	pos := board.NewStartPos()
	eval := evaluator.NewEvaluator(pos)
	e := NewEngine(pos, eval, 1)
	assert.False(t, e.IsSearching())
}
