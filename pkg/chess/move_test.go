package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, MakePiece(White, Pawn), PtNone, PtNone, Normal)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.True(t, m.IsQuiet())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.String())
}

func TestMoveCapture(t *testing.T) {
	m := NewMove(SqD4, SqE5, MakePiece(White, Pawn), Pawn, PtNone, Normal)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Pawn, m.CapturedType())
}

func TestMovePromotion(t *testing.T) {
	m := NewMove(SqA7, SqA8, MakePiece(White, Pawn), PtNone, Queen, Promotion)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, "a7a8q", m.String())
}

func TestMoveValueEmbeddingPreservesIdentity(t *testing.T) {
	m := NewMove(SqE2, SqE4, MakePiece(White, Pawn), PtNone, PtNone, Normal)
	withVal := WithValue(m, 12345)
	assert.True(t, SameMove(m, withVal))
	assert.Equal(t, int32(12345), withVal.Value())
	assert.Equal(t, m, withVal.MoveOf())
}

func TestNoMoveIsInvalid(t *testing.T) {
	assert.False(t, NoMove.IsValid())
	assert.Equal(t, "(none)", NoMove.String())
}

// a few named squares so tests read naturally; the board collaborator
// owns the full enumeration, this package only needs spot values.
const (
	SqE2 Square = 12
	SqE4 Square = 28
	SqD4 Square = 27
	SqE5 Square = 36
	SqA7 Square = 48
	SqA8 Square = 56
)
