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
	"time"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/pkg/chess"
)

// ProgressFunc receives one report per completed (non-aborted)
// iterative-deepening iteration. Score-string encoding is left to the
// caller via chess.Value.String().
type ProgressFunc func(depth int, nodes uint64, elapsed time.Duration, score chess.Value, pv []chess.Move)

// iterativeDeepen is the outer loop that repeatedly invokes alphabeta at
// growing depth behind an aspiration window, reporting progress after
// each completed iteration and discarding the result of any iteration
// that was cancelled mid-flight.
func (e *Engine) iterativeDeepen(maxDepth int, report ProgressFunc) (chess.Move, chess.Value) {
	e.clock.timeOver.Store(false)
	e.history.age()
	e.killers.clear()
	e.counters.clear()

	alpha, beta := -chess.Inf, chess.Inf
	var eval chess.Value
	depth := 1

	for depth <= maxDepth {
		e.pv.resetAll()
		iterStart := time.Now()
		// Root forbids null-move on its first call.
		score := e.alphabeta(alpha, beta, depth, 0, false, chess.NoMove)

		if e.clock.timeOver.Load() {
			break
		}

		if config.Settings.Search.UseAspiration && (score <= alpha || score >= beta) {
			alpha, beta = -chess.Inf, chess.Inf
			e.stats.AspirationResearches++
			continue
		}

		eval = score
		if config.Settings.Search.UseAspiration {
			base := chess.Value(config.Settings.Search.AspirationBase)
			alpha, beta = eval-base, eval+base
		} else {
			alpha, beta = -chess.Inf, chess.Inf
		}

		if report != nil {
			report(depth, e.clock.nodes, time.Since(iterStart), eval, e.pv.Line(0))
		}
		depth++
	}

	return e.cache.BestMove(e.board.HashKey()), eval
}
