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

package search

import "github.com/frankkopp/chesscore/pkg/chess"

// quiesce is a capture/promotion-only extension past the nominal
// horizon that neutralises the horizon effect before a static score is
// trusted.
func (e *Engine) quiesce(alpha, beta chess.Value, ply int, lastMove chess.Move) chess.Value {
	if e.clock.poll() {
		return 0
	}
	e.stats.NodesVisited++

	if e.board.IsDraw() {
		return 0
	}

	standPat := e.eval.Evaluate()
	e.stats.Evaluations++
	if standPat >= beta {
		e.stats.StandpatCuts++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := e.moveBufs[ply][:]
	n := e.board.GenerateLegalMoves(moves)
	moves = moves[:n]
	e.sortMoves(moves, -1, chess.NoMove, lastMove)

	nonPawnMaterial := e.eval.GamePhase()

	for _, m := range moves {
		if !m.IsCapture() && !m.IsPromotion() {
			continue
		}

		delta := standPat + chess.Value(e.eval.PieceValue(m.CapturedType())) + DeltaMargin
		if m.IsPromotion() {
			delta += chess.Value(e.eval.PieceValue(m.PromotionType()) - e.eval.PieceValue(chess.Pawn))
		}
		if delta <= alpha && nonPawnMaterial >= EndgameMaterialQ {
			e.stats.QFpPrunings++
			continue
		}

		e.board.MakeMove(m)
		score := -e.quiesce(-beta, -alpha, ply+1, m)
		e.board.UnmakeMove(m)

		if e.clock.timeOver.Load() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
