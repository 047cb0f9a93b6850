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

// pvStore is the triangular principal-variation table: a single flat
// array with computed offsets rather than a vector-of-vectors, so no
// allocation happens per node. Frame ply begins at offset
// ply*(2N+1-ply)/2 and has capacity N-ply, where N = chess.MaxPly.
type pvStore struct {
	line []chess.Move
}

func newPVStore() *pvStore {
	n := chess.MaxPly
	return &pvStore{line: make([]chess.Move, n*(n+1)/2)}
}

func (p *pvStore) offset(ply int) int {
	n := chess.MaxPly
	return ply * (2*n + 1 - ply) / 2
}

// reset initializes this ply's frame to NoMove, done at the start of
// every alphabeta call.
func (p *pvStore) reset(ply int) {
	p.line[p.offset(ply)] = chess.NoMove
}

// resetAll zeroes the whole store, done once per iterative-deepening
// iteration.
func (p *pvStore) resetAll() {
	for i := range p.line {
		p.line[i] = chess.NoMove
	}
}

// save records move at ply's frame head, then appends the child frame
// ply+1 behind it -- the standard triangular-PV copy-up.
func (p *pvStore) save(ply int, move chess.Move) {
	off := p.offset(ply)
	p.line[off] = move
	n := chess.MaxPly
	if ply+1 >= n {
		if off+1 < len(p.line) {
			p.line[off+1] = chess.NoMove
		}
		return
	}
	childOff := p.offset(ply + 1)
	i := 0
	for off+1+i < len(p.line) {
		m := p.line[childOff+i]
		p.line[off+1+i] = m
		if m == chess.NoMove {
			break
		}
		i++
	}
}

// moveAt returns the move stored at the head of ply's frame (used as the
// PV-move preference in move ordering), or chess.NoMove.
func (p *pvStore) moveAt(ply int) chess.Move {
	return p.line[p.offset(ply)]
}

// Line returns the best line found at ply as a slice terminated
// implicitly by the first NoMove.
func (p *pvStore) Line(ply int) []chess.Move {
	off := p.offset(ply)
	end := off
	for end < len(p.line) && p.line[end] != chess.NoMove {
		end++
	}
	return p.line[off:end]
}
