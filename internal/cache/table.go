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

package cache

import (
	"math"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mylogging "github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/pkg/chess"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB bounds how large a Table a caller may ask for.
const MaxSizeInMB = 65_536

const mb = 1 << 20

// Table is the transposition table: a fixed-size, power-of-two array of
// Entry, direct-mapped by key mod size (a single slot per key, no probing
// chain). Not safe for concurrent writers; the search core is
// single-threaded by design so none is needed.
type Table struct {
	log         *logging.Logger
	data        []Entry
	sizeInByte  uint64
	keyMask     uint64
	maxEntries  uint64
	numEntries  uint64
	Stats       Stats
}

// Stats holds running counters for diagnostics and the progress callback.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// New creates a Table sized to the largest power-of-two entry count that
// fits within sizeInMByte.
func New(sizeInMByte int) *Table {
	t := &Table{log: mylogging.GetSearchLog()}
	t.Resize(sizeInMByte)
	return t
}

// Resize clears the table and rebuilds it at a new capacity. Must not be
// called concurrently with a running search.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Warningf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	sizeInByte := uint64(sizeInMByte) * mb
	entrySize := uint64(32) // approximate Go struct size incl. padding
	maxEntries := uint64(0)
	if sizeInByte >= entrySize {
		maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/entrySize))))
	}

	t.maxEntries = maxEntries
	t.keyMask = 0
	if maxEntries > 0 {
		t.keyMask = maxEntries - 1
	}
	t.sizeInByte = maxEntries * entrySize
	t.data = make([]Entry, maxEntries)
	t.numEntries = 0
	t.Stats = Stats{}

	t.log.Infof("TT size %d MB, capacity %d entries (requested %d MB)", t.sizeInByte/mb, t.maxEntries, sizeInMByte)
}

func (t *Table) hash(key uint64) uint64 {
	return key & t.keyMask
}

// Probe looks up key and, if the stored bound is usable at the
// requested depth and window, returns the ply-rebased score. Otherwise
// ok is false.
func (t *Table) Probe(key uint64, depth int, alpha, beta chess.Value, ply int) (score chess.Value, ok bool) {
	if t.maxEntries == 0 {
		return 0, false
	}
	t.Stats.Probes++
	e := &t.data[t.hash(key)]
	if e.isEmpty() || e.key != key {
		t.Stats.Misses++
		return 0, false
	}
	e.decreaseAge()
	t.Stats.Hits++

	if int(e.depth) < depth {
		return 0, false
	}
	v := FromTT(e.value, ply)
	switch e.flag {
	case Exact:
		return v, true
	case LowerBound:
		if v >= beta {
			return v, true
		}
	case UpperBound:
		if v <= alpha {
			return v, true
		}
	}
	return 0, false
}

// BestMove returns the move stored for key, or chess.NoMove.
func (t *Table) BestMove(key uint64) chess.Move {
	if t.maxEntries == 0 {
		return chess.NoMove
	}
	e := &t.data[t.hash(key)]
	if e.key == key {
		return e.move
	}
	return chess.NoMove
}

// Store writes an entry, rebasing mate scores to be ply-independent
// before they land in the table (see ToTT). Replacement policy: always
// overwrite, except an existing EXACT entry with strictly greater depth
// is kept when the incoming entry is not itself EXACT.
func (t *Table) Store(key uint64, move chess.Move, depth int, value chess.Value, flag Flag, eval chess.Value, ply int) {
	if t.maxEntries == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.hash(key)]

	switch {
	case e.isEmpty():
		t.numEntries++
	case e.key != key:
		t.Stats.Collisions++
		if e.flag == Exact && int(e.depth) > depth && flag != Exact {
			return
		}
		t.Stats.Overwrites++
	default:
		t.Stats.Updates++
		if e.flag == Exact && int(e.depth) > depth && flag != Exact {
			return
		}
	}

	e.key = key
	e.move = move
	e.value = ToTT(value, ply)
	e.eval = eval
	e.depth = int16(depth)
	e.flag = flag
	e.age = 0
}

// Clear empties the whole table; used on a controller "new game" signal.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxEntries)
	t.numEntries = 0
	t.Stats = Stats{}
}

// Hashfull reports table occupancy in permille, UCI-style.
func (t *Table) Hashfull() int {
	if t.maxEntries == 0 {
		return 0
	}
	return int((1000 * t.numEntries) / t.maxEntries)
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.numEntries
}

func (t *Table) String() string {
	return out.Sprintf("TT: %d MB, %d/%d entries (%d%%), puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		t.sizeInByte/mb, t.numEntries, t.maxEntries, t.Hashfull()/10,
		t.Stats.Puts, t.Stats.Updates, t.Stats.Collisions, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}

// AgeEntries increments the age of every occupied slot in parallel and
// returns once every slot has been visited. It keeps entries that are
// merely old, not wrong, available to a fresh search; the engine's
// NewGame does not call it (it clears the table instead).
func (t *Table) AgeEntries() {
	if t.numEntries == 0 {
		return
	}
	start := time.Now()
	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	chunk := t.maxEntries / goroutines
	for i := 0; i < goroutines; i++ {
		go func(i uint64) {
			defer wg.Done()
			begin := i * chunk
			end := begin + chunk
			if i == goroutines-1 {
				end = t.maxEntries
			}
			for n := begin; n < end; n++ {
				if !t.data[n].isEmpty() {
					t.data[n].increaseAge()
				}
			}
		}(uint64(i))
	}
	wg.Wait()
	t.log.Debugf("aged %d entries in %s", t.numEntries, time.Since(start))
}

// ToTT rebases a mate score from "distance to mate from the root" to
// "distance to mate from this node", making the stored value reusable
// regardless of which ply later probes it.
func ToTT(v chess.Value, ply int) chess.Value {
	if !v.IsMate() {
		return v
	}
	if v > 0 {
		return v + chess.Value(ply)
	}
	return v - chess.Value(ply)
}

// FromTT is the inverse of ToTT, applied when a stored value is read
// back at a (possibly different) ply.
func FromTT(v chess.Value, ply int) chess.Value {
	if !v.IsMate() {
		return v
	}
	if v > 0 {
		return v - chess.Value(ply)
	}
	return v + chess.Value(ply)
}
