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
	"github.com/frankkopp/chesscore/internal/cache"
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/pkg/chess"
)

// alphabeta is the negamax/PVS driver. Return contract: fail-hard,
// bounded to [alpha, beta]. The order of operations below is stable and
// matters for correctness.
func (e *Engine) alphabeta(alpha, beta chess.Value, depth, ply int, allowNull bool, lastMove chess.Move) chess.Value {
	// 1. Cancellation poll.
	if e.clock.poll() {
		return 0
	}
	e.stats.NodesVisited++

	// 2. PV-frame reset.
	e.pv.reset(ply)

	// 3. Mate-distance pruning.
	if a := -chess.MateEval + chess.Value(ply); alpha < a {
		alpha = a
	}
	if b := chess.MateEval - chess.Value(ply); beta > b {
		beta = b
	}
	if alpha >= beta {
		e.stats.Mdp++
		return alpha
	}

	// 4. Draw.
	if e.board.IsDraw() {
		return 0
	}

	// 5. is_pv.
	isPV := beta-alpha > 1

	// 6. Transposition probe.
	key := e.board.HashKey()
	if config.Settings.Search.UseTT {
		if v, ok := e.cache.Probe(key, depth, alpha, beta, ply); ok {
			if !isPV || (v > alpha && v < beta) {
				e.stats.TTCuts++
				return v
			}
		}
		e.stats.TTNoCuts++
	}

	// 7. Move generation.
	moves := e.moveBufs[ply][:]
	n := e.board.GenerateLegalMoves(moves)
	moves = moves[:n]
	inCheck := e.board.IsInCheck()

	if n == 0 {
		if inCheck {
			e.stats.Checkmates++
			return -(chess.MateEval - chess.Value(ply))
		}
		e.stats.Stalemates++
		return 0
	}

	// 8. Horizon.
	if depth <= 0 {
		return e.quiesce(alpha, beta, ply, lastMove)
	}

	// Supplemented: reverse futility / static null-move pruning.
	if config.Settings.Search.UseRFP && !isPV && !inCheck && depth <= len(rfpMargin) {
		if e.eval.Evaluate()-rfpMargin[depth-1] >= beta {
			e.stats.RfpPrunings++
			return beta
		}
	}

	// 9. Null-move pruning.
	if config.Settings.Search.UseNullMove && allowNull && !isPV && !inCheck && ply > 0 &&
		depth >= config.Settings.Search.NmpDepth && e.eval.GamePhase() >= EndgameMaterialNMP && e.eval.Evaluate() >= beta {
		e.board.MakeMove(chess.NoMove)
		r := config.Settings.Search.NmpReduction
		if depth > 8 {
			r++
		}
		childDepth := depth - 1 - r
		if childDepth < 0 {
			childDepth = 0
		}
		score := -e.alphabeta(-beta, -beta+1, childDepth, ply+1, false, chess.NoMove)
		e.board.UnmakeMove(chess.NoMove)
		if e.clock.timeOver.Load() {
			return 0
		}
		if score >= beta {
			e.stats.NullMoveCuts++
			return beta
		}
	}

	hashMove := chess.NoMove
	if config.Settings.Search.UseTTMove {
		hashMove = e.cache.BestMove(key)
	}

	// Supplemented: internal iterative deepening, furnishing a hash move
	// for ordering when none is on record at a sufficiently deep PV node.
	if config.Settings.Search.UseIID && hashMove == chess.NoMove && isPV && depth >= config.Settings.Search.IIDDepth {
		e.stats.IIDsearches++
		e.alphabeta(alpha, beta, depth-config.Settings.Search.IIDReduction, ply, false, lastMove)
		hashMove = e.cache.BestMove(key)
		if hashMove != chess.NoMove {
			e.stats.IIDmoves++
		}
	}

	// 10. Move loop.
	e.sortMoves(moves, ply, hashMove, lastMove)

	hashFlag := cache.UpperBound
	var bestMove chess.Move
	movesTried := 0
	quietsTried := 0

	for _, m := range moves {
		if alpha >= beta {
			break
		}
		isQuiet := m.IsQuiet()

		// Supplemented: forward futility pruning at the move-loop level.
		if config.Settings.Search.UseFP && !isPV && !inCheck && isQuiet && movesTried >= 1 && depth <= len(fpMargin) {
			if e.eval.Evaluate()+fpMargin[depth-1] <= alpha {
				e.stats.FpPrunings++
				continue
			}
		}

		// Supplemented: late-move (move-count) pruning.
		if config.Settings.Search.UseLmp && !isPV && !inCheck && isQuiet && depth < len(lmpThreshold) &&
			quietsTried >= lmpThreshold[depth] {
			e.stats.LmpCuts++
			continue
		}

		e.board.MakeMove(m)
		movesTried++
		if isQuiet {
			quietsTried++
		}
		givesCheck := e.board.IsInCheck()

		childDepth := depth - 1
		if config.Settings.Search.UseCheckExt && givesCheck {
			childDepth = depth
			e.stats.CheckExtension++
		}

		var score chess.Value
		if movesTried == 1 {
			score = -e.alphabeta(-beta, -alpha, childDepth, ply+1, true, m)
		} else {
			// Sentinel "needs full search": alpha+1 always compares > alpha.
			provisional := alpha + 1
			reduced := false
			if config.Settings.Search.UseLmr && isQuiet && movesTried >= config.Settings.Search.LmrMovesSearched && !inCheck && !givesCheck &&
				depth >= config.Settings.Search.LmrDepth {
				r := lmrReduction(depth, movesTried, isPV)
				if r > depth-1 {
					r = depth - 1
				}
				if r > 0 {
					provisional = -e.alphabeta(-alpha-1, -alpha, childDepth-r, ply+1, true, m)
					reduced = true
				}
			}
			score = provisional
			if provisional > alpha {
				if reduced {
					e.stats.LmrResearches++
				}
				score = -e.alphabeta(-alpha-1, -alpha, childDepth, ply+1, true, m)
				e.stats.PvsResearches++
				if alpha < score && score < beta {
					score = -e.alphabeta(-beta, -alpha, childDepth, ply+1, true, m)
					e.stats.RootPvsResearches++
				}
			}
		}

		e.board.UnmakeMove(m)

		if e.clock.timeOver.Load() {
			return 0
		}

		if score > alpha {
			bestMove = m
			e.pv.save(ply, m.MoveOf())

			if score >= beta {
				e.cache.Store(key, m.MoveOf(), depth, beta, cache.LowerBound, e.eval.Evaluate(), ply)
				if isQuiet {
					if config.Settings.Search.UseKiller {
						e.killers.Store(ply, m.MoveOf())
					}
					e.history.Update(m.MovingPiece(), m.To(), depth*depth)
					if config.Settings.Search.UseCounterMoves {
						e.counters.Store(lastMove, m.MoveOf())
					}
				}
				e.stats.BetaCuts++
				if movesTried == 1 {
					e.stats.BetaCuts1st++
				}
				return beta
			}
			alpha = score
			hashFlag = cache.Exact
		}
	}

	// 11. Record transposition with the final bound.
	e.cache.Store(key, bestMove.MoveOf(), depth, alpha, hashFlag, e.eval.Evaluate(), ply)
	return alpha
}
