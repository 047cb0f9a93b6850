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

// Package evaluator contains structures and functions to calculate the
// value of a chess position to be used by the search core's Evaluator
// collaborator.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/config"
	mylogging "github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/pkg/chess"
)

// gamePhaseMax is the non-pawn material total (in minor-piece units) of
// a full starting position: 8 knights/bishops + 4 rooks*2 + 2 queens*4.
const gamePhaseMax = 8*1 + 4*2 + 2*4

// Evaluator computes a tapered material-plus-positional score for the
// board.Position it was built against. It reads the position live, so
// it always reflects whatever moves the engine has made or unmade on
// that shared position.
type Evaluator struct {
	log *logging.Logger
	pos *board.Position
}

// NewEvaluator builds an Evaluator bound to pos. The engine and the
// evaluator must share this same *board.Position so the evaluator
// always sees the position the search core is currently exploring.
func NewEvaluator(pos *board.Position) *Evaluator {
	return &Evaluator{log: mylogging.GetLog(), pos: pos}
}

// Evaluate implements search.Evaluator: a centipawn score relative to
// the side to move.
func (e *Evaluator) Evaluate() chess.Value {
	if e.pos.IsDraw() {
		return chess.ValueDraw
	}

	phase := e.GamePhase()
	phaseFactor := float64(phase) / gamePhaseMax
	if phaseFactor > 1 {
		phaseFactor = 1
	}

	var midValue, endValue int32

	if config.Settings.Eval.UseMaterialEval {
		wMat, bMat := e.material(chess.White), e.material(chess.Black)
		midValue += int32(wMat - bMat)
		endValue += int32(wMat - bMat)
	}

	if config.Settings.Eval.UsePositionalEval {
		wMid, wEnd := e.psqt(chess.White)
		bMid, bEnd := e.psqt(chess.Black)
		midValue += int32(wMid - bMid)
		endValue += int32(wEnd - bEnd)
	}

	midValue += int32(config.Settings.Eval.Tempo)

	tapered := int32(float64(midValue)*phaseFactor + float64(endValue)*(1-phaseFactor))

	if config.Settings.Eval.UseLazyEval {
		th := int32(config.Settings.Eval.LazyEvalThreshold)
		if tapered > th || tapered < -th {
			return e.finalEval(chess.Value(tapered))
		}
	}

	if config.Settings.Eval.UseMobility {
		wMob, bMob := e.mobility(chess.White), e.mobility(chess.Black)
		tapered += int32(wMob-bMob) * int32(config.Settings.Eval.MobilityBonus)
	}

	if e.hasBishopPair(chess.White) {
		tapered += int32(config.Settings.Eval.BishopPairBonus)
	}
	if e.hasBishopPair(chess.Black) {
		tapered -= int32(config.Settings.Eval.BishopPairBonus)
	}

	return e.finalEval(chess.Value(tapered))
}

// finalEval reorients a white-relative value to the side to move.
func (e *Evaluator) finalEval(v chess.Value) chess.Value {
	if e.pos.SideToMove() == chess.Black {
		return -v
	}
	return v
}

// GamePhase implements search.Evaluator: a tapered non-pawn material
// count used to gate null-move pruning and quiescence delta pruning in
// the endgame.
func (e *Evaluator) GamePhase() int {
	phase := 0
	for _, pt := range [4]chess.PieceType{chess.Knight, chess.Bishop, chess.Rook, chess.Queen} {
		count := e.pos.PieceCount(chess.White, pt) + e.pos.PieceCount(chess.Black, pt)
		switch pt {
		case chess.Knight, chess.Bishop:
			phase += count * 1
		case chess.Rook:
			phase += count * 2
		case chess.Queen:
			phase += count * 4
		}
	}
	return phase
}

// PieceValue implements search.Evaluator.
func (e *Evaluator) PieceValue(pt chess.PieceType) int {
	return pt.Value()
}

func (e *Evaluator) material(c chess.Color) int {
	total := 0
	for pt := chess.Pawn; pt < chess.PtLength; pt++ {
		total += e.pos.PieceCount(c, pt) * pt.Value()
	}
	return total
}

func (e *Evaluator) psqt(c chess.Color) (mid, end int) {
	for sq := chess.Square(0); sq < 64; sq++ {
		pc := e.pos.PieceAt(sq)
		if pc == chess.PieceNone || pc.Color() != c {
			continue
		}
		m, en := pstValue(pc.Type(), sq, c)
		mid += m
		end += en
	}
	return mid, end
}

func (e *Evaluator) mobility(c chess.Color) int {
	var buf [256]chess.Move
	if c == e.pos.SideToMove() {
		return e.pos.GenerateLegalMoves(buf[:])
	}
	return e.pos.CountPseudoLegalMovesFor(c, buf[:])
}

func (e *Evaluator) hasBishopPair(c chess.Color) bool {
	return e.pos.PieceCount(c, chess.Bishop) >= 2
}
