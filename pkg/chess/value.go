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

package chess

import (
	"strconv"
	"strings"
)

// Value is a signed centipawn score, relative to the side to move.
type Value int32

// MaxPly bounds recursion depth and killer/PV table sizing.
const MaxPly = 256

const (
	ValueZero Value = 0
	ValueDraw Value = 0

	// Inf is larger than any real evaluation; MateEval is one below it so
	// that mate scores and the sentinel Inf never collide.
	Inf      Value = 1_000_000
	MateEval Value = Inf - 1

	// MateThreshold: any |score| beyond this is a forced-mate encoding
	// rather than a material evaluation.
	MateThreshold Value = MateEval / 2

	ValueNA Value = -Inf - 1
)

// IsMate reports whether v encodes a forced mate rather than a material
// evaluation.
func (v Value) IsMate() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > MateThreshold && a <= MateEval
}

// String renders v the way a UCI info line would: "mate ±k" for forced
// mates (k = moves to mate: the half-moves to mate, halved and rounded
// up), "cp N" otherwise.
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsMate():
		b.WriteString("mate ")
		a := v
		if v < 0 {
			b.WriteString("-")
			a = -a
		}
		k := (MateEval - a + 1) / 2
		b.WriteString(strconv.Itoa(int(k)))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// MatedIn returns the score for "side to move is checkmated at this ply".
func MatedIn(ply int) Value {
	return -(MateEval - Value(ply))
}

// MateIn returns the score for "side to move delivers mate at this ply".
func MateIn(ply int) Value {
	return MateEval - Value(ply)
}
