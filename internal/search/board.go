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

// Board is the external move-generation / make-unmake collaborator the
// search core consumes. Board representation, legality, and FEN parsing
// live in a separate package; the core only ever talks to this
// interface.
type Board interface {
	// GenerateLegalMoves fills buf with every legal move in the current
	// position and returns the count.
	GenerateLegalMoves(buf []chess.Move) int

	// MakeMove and UnmakeMove are perfect inverses. MakeMove(chess.NoMove)
	// performs a side-to-move toggle with en-passant clearance and is
	// reversible by UnmakeMove(chess.NoMove).
	MakeMove(m chess.Move)
	UnmakeMove(m chess.Move)

	IsInCheck() bool

	// IsDraw reports draw by threefold repetition, the 50-move rule, or
	// insufficient material.
	IsDraw() bool

	// HashKey is an incrementally maintained Zobrist-style fingerprint.
	HashKey() uint64

	SideToMove() chess.Color

	// SetPosition loads fen and replays moves via MakeMove.
	SetPosition(fen string, moves []chess.Move) error
}

// Evaluator is the external static-evaluation collaborator.
type Evaluator interface {
	// Evaluate returns a centipawn score relative to the side to move.
	Evaluate() chess.Value

	// GamePhase is a tapered non-pawn material count, compared against
	// EndgameMaterialNMP and EndgameMaterialQ.
	GamePhase() int

	// PieceValue is used for MVV-LVA capture scoring and delta pruning.
	PieceValue(pt chess.PieceType) int
}
