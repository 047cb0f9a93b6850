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

// Package board is a minimal, array-based chess position representation
// implementing the search core's external "board collaborator" contract
// (search.Board). Move generation, make/unmake, check detection and
// repetition/50-move/material draw detection live here, using 0x88
// mailbox addressing rather than bitboards to keep the representation
// simple enough to get right without compiling it.
package board

import "github.com/frankkopp/chesscore/pkg/chess"

// sq0x88 converts a chess.Square (a1=0..h8=63) to its 0x88 index.
func sq0x88(s chess.Square) int {
	return s.Rank()<<4 | s.File()
}

// fromSq0x88 converts a 0x88 index back to a chess.Square.
func fromSq0x88(i int) chess.Square {
	rank := i >> 4
	file := i & 7
	return chess.Square(rank*8 + file)
}

func valid0x88(i int) bool {
	return i&0x88 == 0
}

// undoEntry captures everything MakeMove cannot cheaply reverse from the
// move alone.
type undoEntry struct {
	captured    chess.PieceType
	epSquare    chess.Square
	castling    [4]bool
	halfmoveClk int
	hash        uint64
}

// Position is an array-based chess board plus the minimal game state the
// search core's Board interface needs.
type Position struct {
	squares [128]chess.Piece // indexed by 0x88 square; PieceNone means empty

	stm      chess.Color
	castling [4]bool // [0]=WK [1]=WQ [2]=BK [3]=BQ
	epSquare chess.Square

	halfmoveClock int
	fullmoveNum   int

	hash uint64

	kingSq [2]chess.Square // indexed by chess.Color

	history  []undoEntry
	moveHist []chess.Move
	keyHist  []uint64 // hash after each ply played, for repetition detection
}

// NewFromFEN parses a FEN string into a ready Position.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.loadFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// NewStartPos returns the standard chess starting position.
func NewStartPos() *Position {
	p, err := NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return p
}

// SideToMove implements search.Board.
func (p *Position) SideToMove() chess.Color {
	return p.stm
}

// HashKey implements search.Board.
func (p *Position) HashKey() uint64 {
	return p.hash
}

func (p *Position) pieceAt(sq chess.Square) chess.Piece {
	return p.squares[sq0x88(sq)]
}

func (p *Position) setPiece(sq chess.Square, pc chess.Piece) {
	i := sq0x88(sq)
	if old := p.squares[i]; old != chess.PieceNone {
		p.hash ^= pieceKey(old, sq)
	}
	p.squares[i] = pc
	if pc != chess.PieceNone {
		p.hash ^= pieceKey(pc, sq)
		if pc.Type() == chess.King {
			p.kingSq[pc.Color()] = sq
		}
	}
}

func (p *Position) clearPiece(sq chess.Square) {
	i := sq0x88(sq)
	if old := p.squares[i]; old != chess.PieceNone {
		p.hash ^= pieceKey(old, sq)
	}
	p.squares[i] = chess.PieceNone
}
