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

// PieceAt exposes the piece occupying sq (chess.PieceNone if empty), for
// evaluator consumption.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.pieceAt(sq)
}

// PieceCount counts pieces of type pt and color c currently on the
// board.
func (p *Position) PieceCount(c chess.Color, pt chess.PieceType) int {
	count := 0
	for i := range p.squares {
		if !valid0x88(i) {
			continue
		}
		pc := p.squares[i]
		if pc != chess.PieceNone && pc.Color() == c && pc.Type() == pt {
			count++
		}
	}
	return count
}

// CountPseudoLegalMovesFor returns the number of pseudo-legal moves
// color c has available, used as a cheap mobility proxy by the
// evaluator when c isn't the side to move (so the full legality filter
// of GenerateLegalMoves, which needs make/unmake, doesn't apply).
func (p *Position) CountPseudoLegalMovesFor(c chess.Color, buf []chess.Move) int {
	return p.genPseudoLegalFor(c, buf, 0)
}
