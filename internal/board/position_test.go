package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/pkg/chess"
)

func TestNewStartPosPieceCounts(t *testing.T) {
	p := NewStartPos()
	assert.Equal(t, 8, p.PieceCount(chess.White, chess.Pawn))
	assert.Equal(t, 8, p.PieceCount(chess.Black, chess.Pawn))
	assert.Equal(t, 2, p.PieceCount(chess.White, chess.Knight))
	assert.Equal(t, 1, p.PieceCount(chess.White, chess.Queen))
	assert.Equal(t, 1, p.PieceCount(chess.White, chess.King))
	assert.Equal(t, chess.White, p.SideToMove())
}

func TestStartPosLegalMoveCount(t *testing.T) {
	p := NewStartPos()
	var buf [256]chess.Move
	n := p.GenerateLegalMoves(buf[:])
	assert.Equal(t, 20, n)
}

func TestFENParsesSideToMoveAndCastling(t *testing.T) {
	p, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, chess.Black, p.SideToMove())
	assert.True(t, p.castling[0] && p.castling[1] && p.castling[2] && p.castling[3])
}

func TestMakeUnmakeMoveRestoresHash(t *testing.T) {
	p := NewStartPos()
	before := p.HashKey()

	var buf [256]chess.Move
	n := p.GenerateLegalMoves(buf[:])
	require.Greater(t, n, 0)
	m := buf[0]

	p.MakeMove(m)
	assert.NotEqual(t, before, p.HashKey())
	p.UnmakeMove(m)
	assert.Equal(t, before, p.HashKey())
	assert.Equal(t, chess.White, p.SideToMove())
}

func TestNullMoveTogglesSideToMoveOnly(t *testing.T) {
	p := NewStartPos()
	before := p.HashKey()
	p.MakeMove(chess.NoMove)
	assert.Equal(t, chess.Black, p.SideToMove())
	p.UnmakeMove(chess.NoMove)
	assert.Equal(t, chess.White, p.SideToMove())
	assert.Equal(t, before, p.HashKey())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	var buf [256]chess.Move
	n := p.GenerateLegalMoves(buf[:])
	var epMove chess.Move
	found := false
	for i := 0; i < n; i++ {
		if buf[i].Type() == chess.EnPassant {
			epMove = buf[i]
			found = true
			break
		}
	}
	require.True(t, found, "expected an en-passant capture to be generated")

	p.MakeMove(epMove)
	assert.Equal(t, chess.PieceNone, p.pieceAt(chess.Square(4*8+3))) // d5 pawn captured
	p.UnmakeMove(epMove)
	assert.Equal(t, chess.MakePiece(chess.Black, chess.Pawn), p.pieceAt(chess.Square(4*8+3)))
}

func TestCastlingMovesRookToo(t *testing.T) {
	p, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var buf [256]chess.Move
	n := p.GenerateLegalMoves(buf[:])
	var castle chess.Move
	found := false
	for i := 0; i < n; i++ {
		if buf[i].Type() == chess.Castling && buf[i].To() == 6 {
			castle = buf[i]
			found = true
			break
		}
	}
	require.True(t, found, "expected kingside castling to be legal")

	p.MakeMove(castle)
	assert.Equal(t, chess.MakePiece(chess.White, chess.King), p.pieceAt(6))
	assert.Equal(t, chess.MakePiece(chess.White, chess.Rook), p.pieceAt(5))
	p.UnmakeMove(castle)
	assert.Equal(t, chess.MakePiece(chess.White, chess.King), p.pieceAt(4))
	assert.Equal(t, chess.MakePiece(chess.White, chess.Rook), p.pieceAt(7))
}

func TestIsInCheckDetectsAttack(t *testing.T) {
	p, err := NewFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsInCheck())
}

func TestIsDrawFiftyMoveRule(t *testing.T) {
	p, err := NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 1")
	require.NoError(t, err)
	assert.True(t, p.IsDraw())
}

func TestIsDrawInsufficientMaterial(t *testing.T) {
	p, err := NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsDraw())
}

func TestSetPositionReplaysMoves(t *testing.T) {
	p := NewStartPos()
	e2e4 := chess.NewMove(chess.Square(12), chess.Square(28), chess.MakePiece(chess.White, chess.Pawn), chess.PtNone, chess.PtNone, chess.Normal)
	err := p.SetPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", []chess.Move{e2e4})
	require.NoError(t, err)
	assert.Equal(t, chess.Black, p.SideToMove())
	assert.Equal(t, chess.MakePiece(chess.White, chess.Pawn), p.pieceAt(chess.Square(28)))
}
