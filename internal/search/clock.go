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

	"github.com/frankkopp/chesscore/internal/util"
)

// clock is the shared cooperative cancellation flag plus the monotonic
// deadline it is compared against. The flag only ever transitions
// false->true once per search; reads and writes go through util.Bool's
// atomic operations.
type clock struct {
	timeOver     *util.Bool
	infiniteTime bool
	stopTime     time.Time
	startTime    time.Time
	nodes        uint64
}

func newClock() *clock {
	return &clock{timeOver: util.NewBool(false)}
}

// start arms the clock for a new search.
func (c *clock) start(stopTime time.Time, infinite bool) {
	c.timeOver.Store(false)
	c.infiniteTime = infinite
	c.stopTime = stopTime
	c.startTime = time.Now()
	c.nodes = 0
}

// poll is called once per node. Every pollInterval nodes it checks
// wall-clock time and latches timeOver on expiry, unless infiniteTime
// disables polling entirely. Returns the current value of timeOver.
func (c *clock) poll() bool {
	c.nodes++
	if !c.infiniteTime && c.nodes%pollInterval == 0 && !time.Now().Before(c.stopTime) {
		c.timeOver.Store(true)
	}
	return c.timeOver.Load()
}

// stop is the external controller's "stop" signal.
func (c *clock) stop() {
	c.timeOver.Store(true)
}

func (c *clock) elapsed() time.Duration {
	return time.Since(c.startTime)
}
