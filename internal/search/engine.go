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

// Package search implements the engine's search core: iterative-deepening
// alpha-beta with principal-variation search, quiescence, a transposition
// cache collaborator, and the move-ordering heuristics those two layers
// consume. Board representation and static evaluation are external
// collaborators, see Board and Evaluator.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chesscore/internal/cache"
	mylogging "github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/pkg/chess"
)

// Result is what a completed or cancelled search reports back to the
// controller.
type Result struct {
	BestMove chess.Move
	Score    chess.Value
	Stats    Statistics
}

// Engine owns the search core's whole mutable state: board, evaluator,
// transposition cache, killer/history/counter tables, PV store, and
// clock, behind a single-flight start/stop surface gated by a
// semaphore.
type Engine struct {
	log  *logging.Logger
	slog *logging.Logger

	board Board
	eval  Evaluator
	cache *cache.Table

	pv       *pvStore
	killers  *killerTable
	history  *historyTable
	counters *counterMoveTable
	clock    *clock
	stats    Statistics

	moveBufs [chess.MaxPly][256]chess.Move

	isRunning *semaphore.Weighted

	// MaxDepth bounds the iterative deepener; callers set it before
	// StartSearch.
	MaxDepth int

	report ProgressFunc
}

// NewEngine wires a Board/Evaluator collaborator pair into a ready-to-use
// search core with a transposition cache of ttSizeMB megabytes.
func NewEngine(board Board, eval Evaluator, ttSizeMB int) *Engine {
	return &Engine{
		log:       mylogging.GetLog(),
		slog:      mylogging.GetSearchLog(),
		board:     board,
		eval:      eval,
		cache:     cache.New(ttSizeMB),
		pv:        newPVStore(),
		killers:   newKillerTable(),
		history:   newHistoryTable(),
		counters:  newCounterMoveTable(),
		clock:     newClock(),
		isRunning: semaphore.NewWeighted(1),
		MaxDepth:  chess.MaxPly - 1,
	}
}

// NewGame clears the transposition cache and the killer/history/counter
// tables. It does not run the cache's AgeEntries sweep, and Engine
// exposes no other way to run it.
func (e *Engine) NewGame() {
	e.cache.Clear()
	e.history.clear()
	e.killers.clear()
	e.counters.clear()
}

// SetPosition loads fen and replays moves on the board.
func (e *Engine) SetPosition(fen string, moves []chess.Move) error {
	return e.board.SetPosition(fen, moves)
}

// SetProgressCallback installs the function invoked once per completed
// iterative-deepening iteration.
func (e *Engine) SetProgressCallback(f ProgressFunc) {
	e.report = f
}

// IsSearching reports whether a search is currently in flight.
func (e *Engine) IsSearching() bool {
	if e.isRunning.TryAcquire(1) {
		e.isRunning.Release(1)
		return false
	}
	return true
}

// WaitWhileSearching blocks the caller until any in-flight search
// completes.
func (e *Engine) WaitWhileSearching() {
	_ = e.isRunning.Acquire(context.Background(), 1)
	e.isRunning.Release(1)
}

// StartSearch runs the iterative deepener to completion or
// cancellation. Preconditions: stopTime/infiniteTime passed here,
// MaxDepth already set by the caller. If another search is still in
// flight it does not wait: it logs a warning and returns an empty
// Result at once.
func (e *Engine) StartSearch(stopTime time.Time, infiniteTime bool) Result {
	if !e.isRunning.TryAcquire(1) {
		e.log.Warning("search already running, ignoring StartSearch")
		return Result{}
	}
	defer e.isRunning.Release(1)

	e.clock.start(stopTime, infiniteTime)
	e.stats = Statistics{}

	maxDepth := e.MaxDepth
	if maxDepth <= 0 || maxDepth >= chess.MaxPly {
		maxDepth = chess.MaxPly - 1
	}

	if e.slog.IsEnabledFor(logging.DEBUG) {
		e.slog.Debugf("starting search: maxDepth=%d infinite=%t", maxDepth, infiniteTime)
	}

	best, score := e.iterativeDeepen(maxDepth, e.report)

	if e.slog.IsEnabledFor(logging.DEBUG) {
		e.slog.Debugf("search done in %s: best=%s score=%s nodes=%s",
			e.clock.elapsed(), best, score, out.Sprintf("%d", e.stats.NodesVisited))
	}

	return Result{BestMove: best, Score: score, Stats: e.stats}
}

// StopSearch sets the cooperative cancellation flag; an in-flight search
// observes it at the next node it visits and unwinds (only the
// wall-clock deadline is checked just every 4096 nodes).
func (e *Engine) StopSearch() {
	e.clock.stop()
}
