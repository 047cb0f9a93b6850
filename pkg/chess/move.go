/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package chess

import (
	"fmt"
	"strings"
)

// Move is a bit-packed encoding of a chess move: from-square, to-square,
// the moving piece, the captured piece type (if any), the promotion
// piece type (if any), and a move-type tag. The upper 32 bits carry an
// optional move-ordering sort value, set and read independently of the
// move identity below it — two moves compare equal (and are equal for
// map/TT purposes) iff their low 32 bits match, see MoveOf.
//
//  BITMAP 64-bit
//  |-------- sort value (32) --------|----------------- move (32) -----------------|
//                                     |                                   |1 1 1 1 1 1| to      (0-5)
//                                     |                       |1 1 1 1 1 1|            from    (6-11)
//                                     |             |1 1 1 1|                          moving   (12-15)
//                                     |       |1 1 1|                                  captured (16-18)
//                                     | |1 1 1|                                        promo    (19-21)
//                                  |1 1|                                               type     (22-23)
type Move uint64

// NoMove is the distinguished "absent move" sentinel.
const NoMove Move = 0

const (
	toShift       = 0
	fromShift     = 6
	movingShift   = 12
	capturedShift = 16
	promoShift    = 19
	typeShift     = 22
	valueShift    = 32

	squareBits   Move = 0x3F
	pieceBits    Move = 0xF
	pieceTypeBits Move = 0x7
	typeBits     Move = 0x3

	identityMask Move = 0xFFFFFFFF
)

// New encodes a non-capturing, non-special move.
func New(from, to Square, moving Piece) Move {
	return NewMove(from, to, moving, PtNone, PtNone, Normal)
}

// NewMove encodes a fully general move. capturedType is PtNone when the
// move is not a capture; promoType is PtNone unless t == Promotion.
func NewMove(from, to Square, moving Piece, capturedType, promoType PieceType, t MoveType) Move {
	return Move(to)&squareBits |
		(Move(from)&squareBits)<<fromShift |
		(Move(moving)&pieceBits)<<movingShift |
		(Move(capturedType)&pieceTypeBits)<<capturedShift |
		(Move(promoType)&pieceTypeBits)<<promoShift |
		(Move(t)&typeBits)<<typeShift
}

func (m Move) To() Square           { return Square((m >> toShift) & squareBits) }
func (m Move) From() Square         { return Square((m >> fromShift) & squareBits) }
func (m Move) MovingPiece() Piece   { return Piece((m >> movingShift) & pieceBits) }
func (m Move) CapturedType() PieceType { return PieceType((m >> capturedShift) & pieceTypeBits) }
func (m Move) PromotionType() PieceType { return PieceType((m >> promoShift) & pieceTypeBits) }
func (m Move) Type() MoveType       { return MoveType((m >> typeShift) & typeBits) }

// IsCapture reports whether the move removes an enemy piece, including
// en passant.
func (m Move) IsCapture() bool {
	return m.CapturedType() != PtNone || m.Type() == EnPassant
}

// IsPromotion reports whether the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Type() == Promotion
}

// IsQuiet is the negation used throughout move ordering: neither a
// capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// MoveOf strips any embedded sort value, leaving the bare move identity
// used for equality against killers, hash moves and PV moves.
func (m Move) MoveOf() Move {
	return m & identityMask
}

// SameMove compares two moves ignoring any embedded sort value.
func SameMove(a, b Move) bool {
	return a.MoveOf() == b.MoveOf()
}

// Value returns the embedded move-ordering sort value, if one was set
// with WithValue.
func (m Move) Value() int32 {
	return int32(m >> valueShift)
}

// WithValue returns m with a move-ordering sort value embedded in the
// upper 32 bits, leaving the move's identity (From/To/.../Type) intact.
func WithValue(m Move, v int32) Move {
	return m.MoveOf() | Move(uint32(v))<<valueShift
}

// IsValid reports whether m has well-formed component fields. NoMove is
// never valid in this sense.
func (m Move) IsValid() bool {
	return m != NoMove &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MovingPiece().IsValid() &&
		m.Type().IsValid()
}

func (m Move) String() string {
	if m.MoveOf() == NoMove {
		return "(none)"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Type() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// DebugString is the verbose, field-by-field rendering used in test
// failures and trace logs, mirroring the corpus's "StringBits" idiom.
func (m Move) DebugString() string {
	return fmt.Sprintf("Move{%s from=%s to=%s moving=%d captured=%d promo=%s type=%s value=%d}",
		m.String(), m.From(), m.To(), m.MovingPiece(), m.CapturedType(), m.PromotionType().Char(), m.Type(), m.Value())
}
