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

// enginectl is a small command-line driver over the search core: it
// loads a position, runs a timed or depth-limited search, and prints
// the result. It is deliberately not a UCI front end -- no stdin
// protocol loop, no pondering, no multi-PV -- just enough wiring to
// exercise Engine.StartSearch end to end from a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	brd "github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/search"
	"github.com/frankkopp/chesscore/pkg/chess"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to search")
	depth := flag.Int("depth", 6, "maximum search depth")
	movetimeMs := flag.Int("movetime", 5000, "search time budget in milliseconds")
	ttSizeMB := flag.Int("hash", 64, "transposition cache size in megabytes")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the search to ./cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	log := logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := brd.NewFromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}
	eval := evaluator.NewEvaluator(pos)

	engine := search.NewEngine(pos, eval, *ttSizeMB)
	engine.MaxDepth = *depth
	engine.SetProgressCallback(func(depth int, nodes uint64, elapsed time.Duration, score chess.Value, pv []chess.Move) {
		log.Infof("depth %d score %s nodes %s time %s", depth, score, out.Sprintf("%d", nodes), elapsed)
	})

	stopTime := time.Now().Add(time.Duration(*movetimeMs) * time.Millisecond)
	result := engine.StartSearch(stopTime, false)

	out.Printf("bestmove %s score %s nodes %d\n", result.BestMove, result.Score, result.Stats.NodesVisited)
}
