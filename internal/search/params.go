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
	"math"

	"github.com/frankkopp/chesscore/pkg/chess"
)

const (
	// EndgameMaterialNMP is the minimum game-phase value (non-pawn
	// material of both sides together, as Evaluator.GamePhase counts it)
	// before null-move pruning is attempted.
	EndgameMaterialNMP = 4

	// EndgameMaterialQ gates delta pruning in quiescence.
	EndgameMaterialQ = 10

	// HistoryMax bounds every history cell in absolute value.
	HistoryMax = 100_000_000

	// RecaptureBonus rewards a capture landing on the previous move's
	// destination square.
	RecaptureBonus = 2000

	// DeltaMargin is added on top of stand-pat plus the captured piece's
	// value when testing quiescence delta pruning.
	DeltaMargin = 200

	// pollInterval is how often, in nodes, the clock is polled.
	pollInterval = 4096

	// counterTableSize is the size of the hashed counter-move table,
	// grounded on zurichess's counterIndex hashing scheme.
	counterTableSize = 1 << 12
)

// rfpMargin[depth-1] is the reverse futility pruning margin. Gated by
// Settings.Search.UseRFP.
var rfpMargin = [4]chess.Value{100, 160, 220, 280}

// fpMargin[depth-1] is the forward futility pruning margin at the
// move-loop level. Gated by Settings.Search.UseFP.
var fpMargin = [7]chess.Value{0, 200, 300, 400, 500, 600, 700}

// lmpThreshold[depth] is the number of quiet moves already searched at
// a node from which every further quiet move is skipped without search
// (a threshold of 0 skips all quiet moves at that depth). Gated by
// Settings.Search.UseLmp.
var lmpThreshold = [16]int{0, 0, 4, 6, 8, 10, 13, 16, 20, 24, 28, 32, 36, 40, 44, 48}

// lmrReduction computes the late-move reduction:
// r = floor(sqrt(depth-1) + sqrt(moves_tried-1)), two-thirds'd at a PV
// node, clamped to depth-1. Near moves_tried == 1 the second term is 0
// by construction.
func lmrReduction(depth, movesTried int, isPV bool) int {
	r := int(math.Sqrt(float64(depth-1)) + math.Sqrt(float64(movesTried-1)))
	if isPV {
		r = (2 * r) / 3
	}
	if r > depth-1 {
		r = depth - 1
	}
	if r < 0 {
		r = 0
	}
	return r
}
