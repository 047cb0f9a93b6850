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

package util

import "sync/atomic"

// Bool is a small wrapper around atomic operations on a boolean flag.
// Used for the search's cooperative cancellation signal: a one-shot
// false->true transition, read and written with sync/atomic
// operations.
type Bool struct{ v uint32 }

func NewBool(initial bool) *Bool {
	return &Bool{boolToUint32(initial)}
}

func (b *Bool) Load() bool {
	return atomic.LoadUint32(&b.v) == 1
}

func (b *Bool) Store(val bool) {
	atomic.StoreUint32(&b.v, boolToUint32(val))
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
