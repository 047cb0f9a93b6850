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

// PieceType identifies a kind of piece independent of color.
//  PtNone == 0 so the zero value means "no piece".
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is a valid, known piece type (PtNone included).
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// pieceValues mirrors the corpus's convention of a small lookup table
// for material scoring; used by capture/delta-pruning scoring in search.
var pieceValues = [PtLength]int{0, 20000, 100, 320, 330, 500, 900}

// Value returns the centipawn material value used for MVV-LVA and
// quiescence delta pruning.
func (pt PieceType) Value() int {
	return pieceValues[pt]
}

func (pt PieceType) Char() string {
	switch pt {
	case King:
		return "K"
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	default:
		return "-"
	}
}

// Piece combines a PieceType with a Color into a single small integer,
// used as one axis of the history table: indexed by (color|piece,
// to_square).
type Piece uint8

const PieceNone Piece = 0

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

func (p Piece) Color() Color {
	return Color(p >> 3)
}

func (p Piece) Type() PieceType {
	return PieceType(p & 0b0111)
}

func (p Piece) IsValid() bool {
	return p.Type().IsValid()
}
