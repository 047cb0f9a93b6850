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

// killerTable holds, for each ply, the two most recent quiet moves that
// caused a beta cutoff there. Only quiet moves are ever stored.
type killerTable struct {
	slots [chess.MaxPly][2]chess.Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

// clear resets every slot to NoMove; done at the start of each search --
// killers do not survive across searches.
func (k *killerTable) clear() {
	for i := range k.slots {
		k.slots[i][0] = chess.NoMove
		k.slots[i][1] = chess.NoMove
	}
}

// Get returns the two killers for ply.
func (k *killerTable) Get(ply int) (chess.Move, chess.Move) {
	return k.slots[ply][0], k.slots[ply][1]
}

// Store records m as the newest killer at ply, shifting the previous
// slot 0 into slot 1, unless m already occupies slot 0.
func (k *killerTable) Store(ply int, m chess.Move) {
	if k.slots[ply][0].MoveOf() == m.MoveOf() {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m.MoveOf()
}

// counterMoveTable maps an opponent move's identity to a quiet reply
// that refuted it before, consulted as a move-ordering tier between
// killers and history-sorted quiets. Grounded on zurichess's
// move_ordering.go (stack.counter, SaveKiller, counterIndex) -- it
// never changes which moves are legal, only their search order.
type counterMoveTable struct {
	table [counterTableSize]chess.Move
}

func newCounterMoveTable() *counterMoveTable {
	return &counterMoveTable{}
}

func (c *counterMoveTable) clear() {
	for i := range c.table {
		c.table[i] = chess.NoMove
	}
}

func counterIndex(m chess.Move) int {
	return int(m.MoveOf()) & (counterTableSize - 1)
}

// Get returns the move that previously refuted lastMove, or NoMove.
func (c *counterMoveTable) Get(lastMove chess.Move) chess.Move {
	if lastMove == chess.NoMove {
		return chess.NoMove
	}
	return c.table[counterIndex(lastMove)]
}

// Store records reply as the countermove to lastMove.
func (c *counterMoveTable) Store(lastMove, reply chess.Move) {
	if lastMove == chess.NoMove {
		return
	}
	c.table[counterIndex(lastMove)] = reply.MoveOf()
}
