package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestHistoryUpdateRewardsCutoffCell(t *testing.T) {
	h := newHistoryTable()
	piece := chess.MakePiece(chess.White, chess.Knight)
	to := chess.Square(18)

	h.Update(piece, to, 64)
	assert.Equal(t, 64, h.Score(piece, to))
}

func TestHistoryUpdatePenalizesOtherCells(t *testing.T) {
	h := newHistoryTable()
	piece := chess.MakePiece(chess.White, chess.Knight)
	other := chess.MakePiece(chess.Black, chess.Rook)

	h.Update(piece, 18, 64)
	assert.Equal(t, -64, h.Score(other, 40))
}

func TestHistoryHalvesOnOverflow(t *testing.T) {
	h := newHistoryTable()
	piece := chess.MakePiece(chess.White, chess.Queen)
	to := chess.Square(5)

	h.Update(piece, to, HistoryMax)
	assert.Equal(t, HistoryMax, h.Score(piece, to))

	h.Update(piece, to, HistoryMax)
	// the second update would push the cell to 2*HistoryMax, tripping the
	// overflow guard and halving every cell instead of clamping just one
	assert.Equal(t, HistoryMax, h.Score(piece, to))
}

func TestHistoryAgeDividesByEight(t *testing.T) {
	h := newHistoryTable()
	piece := chess.MakePiece(chess.Black, chess.Bishop)
	h.Update(piece, 10, 800)
	h.age()
	assert.Equal(t, 100, h.Score(piece, 10))
}

func TestHistoryClearResetsAllCells(t *testing.T) {
	h := newHistoryTable()
	h.Update(chess.MakePiece(chess.White, chess.Pawn), 20, 50)
	h.clear()
	for i := range h.grid {
		for j := range h.grid[i] {
			assert.Equal(t, 0, h.grid[i][j])
		}
	}
}
