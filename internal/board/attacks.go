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

package board

import "github.com/frankkopp/chesscore/pkg/chess"

var knightOffsets = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
var kingOffsets = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}
var bishopDirs = [4]int{-17, -15, 15, 17}
var rookDirs = [4]int{-16, -1, 1, 16}

// isSquareAttacked reports whether sq is attacked by any piece of color by,
// scanning outward from sq rather than from every piece -- cheaper when
// called once per candidate king square than the reverse direction.
func (p *Position) isSquareAttacked(sq chess.Square, by chess.Color) bool {
	from := sq0x88(sq)

	pawnDir := 16
	if by == chess.White {
		pawnDir = -16
	}
	for _, df := range [2]int{-1, 1} {
		i := from + pawnDir + df
		if valid0x88(i) {
			if pc := p.squares[i]; pc != chess.PieceNone && pc.Color() == by && pc.Type() == chess.Pawn {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		i := from + off
		if valid0x88(i) {
			if pc := p.squares[i]; pc != chess.PieceNone && pc.Color() == by && pc.Type() == chess.Knight {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		i := from + off
		if valid0x88(i) {
			if pc := p.squares[i]; pc != chess.PieceNone && pc.Color() == by && pc.Type() == chess.King {
				return true
			}
		}
	}

	for _, dir := range bishopDirs {
		i := from + dir
		for valid0x88(i) {
			pc := p.squares[i]
			if pc == chess.PieceNone {
				i += dir
				continue
			}
			if pc.Color() == by && (pc.Type() == chess.Bishop || pc.Type() == chess.Queen) {
				return true
			}
			break
		}
	}

	for _, dir := range rookDirs {
		i := from + dir
		for valid0x88(i) {
			pc := p.squares[i]
			if pc == chess.PieceNone {
				i += dir
				continue
			}
			if pc.Color() == by && (pc.Type() == chess.Rook || pc.Type() == chess.Queen) {
				return true
			}
			break
		}
	}

	return false
}

func (p *Position) isKingAttacked(c chess.Color) bool {
	return p.isSquareAttacked(p.kingSq[c], c.Flip())
}

// IsInCheck implements search.Board.
func (p *Position) IsInCheck() bool {
	return p.isKingAttacked(p.stm)
}
