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

// Package cache implements the search's transposition table: a
// fixed-size, power-of-two, direct-mapped hash table of previously
// computed search bounds, keyed by position fingerprint.
package cache

import "github.com/frankkopp/chesscore/pkg/chess"

// Flag records whether a stored value is a tight score, a failed-high
// lower bound, or a failed-low upper bound.
type Flag uint8

const (
	None Flag = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is one slot of the transposition table.
type Entry struct {
	key   uint64
	move  chess.Move
	value chess.Value
	eval  chess.Value
	depth int16
	flag  Flag
	age   uint8
}

func (e *Entry) Key() uint64        { return e.key }
func (e *Entry) Move() chess.Move   { return e.move }
func (e *Entry) Value() chess.Value { return e.value }
func (e *Entry) Eval() chess.Value  { return e.eval }
func (e *Entry) Depth() int16       { return e.depth }
func (e *Entry) Flag() Flag         { return e.flag }
func (e *Entry) Age() uint8         { return e.age }

func (e *Entry) isEmpty() bool {
	return e.flag == None
}

func (e *Entry) increaseAge() {
	if e.age < 255 {
		e.age++
	}
}

func (e *Entry) decreaseAge() {
	if e.age > 0 {
		e.age--
	}
}
