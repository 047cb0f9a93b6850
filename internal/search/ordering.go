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

import (
	"sort"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/pkg/chess"
)

// captureScore is MVV-LVA plus a recapture bonus and a promotion bonus,
// applied only to capturing moves (including capturing promotions).
func (e *Engine) captureScore(m chess.Move, lastMove chess.Move) int {
	score := 0
	if lastMove != chess.NoMove && m.To() == lastMove.To() {
		score += RecaptureBonus
	}
	score += e.eval.PieceValue(m.CapturedType()) - e.eval.PieceValue(m.MovingPiece().Type())
	if m.IsPromotion() {
		score += e.eval.PieceValue(m.PromotionType()) - e.eval.PieceValue(chess.Pawn)
	}
	return score
}

// quietScore orders quiet moves by history score, with non-capturing
// promotions boosted above every ordinary quiet move.
func (e *Engine) quietScore(m chess.Move) int {
	score := e.history.Score(m.MovingPiece(), m.To())
	if m.IsPromotion() {
		score += HistoryMax
	}
	return score
}

// sortMoves reorders moves in place to approximate best-first. ply == -1
// selects the quiescence-only ordering: all moves sorted by capture
// score descending, leaving the quiescence loop to filter out
// non-captures/non-promotions itself.
func (e *Engine) sortMoves(moves []chess.Move, ply int, hashMove, lastMove chess.Move) {
	if ply < 0 {
		sort.SliceStable(moves, func(i, j int) bool {
			return e.captureScore(moves[i], lastMove) > e.captureScore(moves[j], lastMove)
		})
		return
	}

	pvMove := e.pv.moveAt(ply)
	var k0, k1, counter chess.Move
	if config.Settings.Search.UseKiller {
		k0, k1 = e.killers.Get(ply)
	}
	if config.Settings.Search.UseCounterMoves {
		counter = e.counters.Get(lastMove)
	}

	emitted := make(map[chess.Move]bool, len(moves))
	ordered := make([]chess.Move, 0, len(moves))

	take := func(want chess.Move) {
		if want == chess.NoMove || emitted[want.MoveOf()] {
			return
		}
		for _, m := range moves {
			if m.MoveOf() == want.MoveOf() {
				ordered = append(ordered, m)
				emitted[want.MoveOf()] = true
				return
			}
		}
	}
	take(pvMove)
	take(hashMove)

	captures := make([]chess.Move, 0, len(moves))
	quiets := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if emitted[m.MoveOf()] {
			continue
		}
		if m.IsCapture() {
			captures = append(captures, m)
		} else {
			quiets = append(quiets, m)
		}
	}

	sort.SliceStable(captures, func(i, j int) bool {
		return e.captureScore(captures[i], lastMove) > e.captureScore(captures[j], lastMove)
	})
	split := 0
	for split < len(captures) && e.captureScore(captures[split], lastMove) >= 0 {
		split++
	}
	winning, losing := captures[:split], captures[split:]

	ordered = append(ordered, winning...)
	for _, m := range winning {
		emitted[m.MoveOf()] = true
	}

	take(k0)
	take(k1)
	take(counter)

	remaining := quiets[:0]
	for _, m := range quiets {
		if !emitted[m.MoveOf()] {
			remaining = append(remaining, m)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return e.quietScore(remaining[i]) > e.quietScore(remaining[j])
	})

	ordered = append(ordered, remaining...)
	ordered = append(ordered, losing...)

	copy(moves, ordered)
}
