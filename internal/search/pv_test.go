package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestPVSaveRecordsMoveAtFrameHead(t *testing.T) {
	p := newPVStore()
	m := chess.New(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn))
	p.save(0, m.MoveOf())
	assert.Equal(t, m.MoveOf(), p.moveAt(0))
}

func TestPVSaveCopiesUpChildFrame(t *testing.T) {
	p := newPVStore()
	m0 := chess.New(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn))
	m1 := chess.New(chess.Square(52), chess.Square(36), chess.MakePiece(chess.Black, chess.Pawn))

	p.save(1, m1.MoveOf())
	p.save(0, m0.MoveOf())

	line := p.Line(0)
	assert.Equal(t, []chess.Move{m0.MoveOf(), m1.MoveOf()}, line)
}

func TestPVResetClearsOnlyThatPly(t *testing.T) {
	p := newPVStore()
	m := chess.New(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn))
	p.save(0, m.MoveOf())
	p.reset(0)
	assert.Equal(t, chess.NoMove, p.moveAt(0))
}

func TestPVResetAllClearsEveryFrame(t *testing.T) {
	p := newPVStore()
	m := chess.New(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn))
	p.save(0, m.MoveOf())
	p.resetAll()
	assert.Empty(t, p.Line(0))
}

func TestPVLineStopsAtFirstNoMove(t *testing.T) {
	p := newPVStore()
	m0 := chess.New(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn))
	p.save(0, m0.MoveOf())
	assert.Len(t, p.Line(0), 1)
}
