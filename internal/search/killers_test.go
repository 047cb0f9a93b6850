package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestKillerGetEmptySlotsAreNoMove(t *testing.T) {
	k := newKillerTable()
	m0, m1 := k.Get(5)
	assert.Equal(t, chess.NoMove, m0)
	assert.Equal(t, chess.NoMove, m1)
}

func TestKillerStoreShiftsPreviousIntoSecondSlot(t *testing.T) {
	k := newKillerTable()
	a := chess.New(chess.Square(8), chess.Square(16), chess.MakePiece(chess.White, chess.Pawn))
	b := chess.New(chess.Square(9), chess.Square(17), chess.MakePiece(chess.White, chess.Pawn))

	k.Store(3, a)
	k.Store(3, b)

	m0, m1 := k.Get(3)
	assert.Equal(t, b.MoveOf(), m0)
	assert.Equal(t, a.MoveOf(), m1)
}

func TestKillerStoreIgnoresDuplicateOfFirstSlot(t *testing.T) {
	k := newKillerTable()
	a := chess.New(chess.Square(8), chess.Square(16), chess.MakePiece(chess.White, chess.Pawn))

	k.Store(3, a)
	k.Store(3, a)

	m0, m1 := k.Get(3)
	assert.Equal(t, a.MoveOf(), m0)
	assert.Equal(t, chess.NoMove, m1)
}

func TestKillerClearResetsAllPlies(t *testing.T) {
	k := newKillerTable()
	a := chess.New(chess.Square(8), chess.Square(16), chess.MakePiece(chess.White, chess.Pawn))
	k.Store(10, a)
	k.clear()
	m0, m1 := k.Get(10)
	assert.Equal(t, chess.NoMove, m0)
	assert.Equal(t, chess.NoMove, m1)
}

func TestCounterMoveRoundTrip(t *testing.T) {
	c := newCounterMoveTable()
	last := chess.New(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn))
	reply := chess.New(chess.Square(52), chess.Square(36), chess.MakePiece(chess.Black, chess.Pawn))

	assert.Equal(t, chess.NoMove, c.Get(last))
	c.Store(last, reply)
	assert.Equal(t, reply.MoveOf(), c.Get(last))
}

func TestCounterMoveIgnoresNoMoveLast(t *testing.T) {
	c := newCounterMoveTable()
	reply := chess.New(chess.Square(52), chess.Square(36), chess.MakePiece(chess.Black, chess.Pawn))
	c.Store(chess.NoMove, reply)
	assert.Equal(t, chess.NoMove, c.Get(chess.NoMove))
}
