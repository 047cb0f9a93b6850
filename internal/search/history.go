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

// historyTable is the 16x64 history heuristic grid indexed by
// (color|piece, to_square).
type historyTable struct {
	grid [16][64]int
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

func (h *historyTable) clear() {
	for i := range h.grid {
		for j := range h.grid[i] {
			h.grid[i][j] = 0
		}
	}
}

// age divides every cell by 8 at the start of a new search: history
// persists across searches but is aged, not cleared.
func (h *historyTable) age() {
	for i := range h.grid {
		for j := range h.grid[i] {
			h.grid[i][j] /= 8
		}
	}
}

func (h *historyTable) Score(piece chess.Piece, to chess.Square) int {
	return h.grid[piece][to]
}

// Update rewards the cutoff move's cell with bonus and subtracts the same
// bonus from every other cell -- a global aging subtract, unusual
// compared to a typical history update but kept exactly as is. Halves
// the whole table if any cell would end up outside
// [-HistoryMax, HistoryMax].
func (h *historyTable) Update(piece chess.Piece, to chess.Square, bonus int) {
	for i := range h.grid {
		for j := range h.grid[i] {
			if i == int(piece) && j == int(to) {
				h.grid[i][j] += bonus
			} else {
				h.grid[i][j] -= bonus
			}
		}
	}

	exceeded := false
	for i := range h.grid {
		for j := range h.grid[i] {
			if h.grid[i][j] > HistoryMax || h.grid[i][j] < -HistoryMax {
				exceeded = true
				break
			}
		}
		if exceeded {
			break
		}
	}
	if exceeded {
		for i := range h.grid {
			for j := range h.grid[i] {
				h.grid[i][j] /= 2
			}
		}
	}
}
