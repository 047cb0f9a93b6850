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

package board

import "github.com/frankkopp/chesscore/pkg/chess"

var promoTypes = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// genPseudoLegal appends every pseudo-legal move (legal except possibly
// leaving the mover's own king in check) into buf, returning the new
// count. Castling legality (king not in/through/into check) is checked
// here directly since it can't be caught by the generic make+in-check
// filter the same way a simple king move can.
func (p *Position) genPseudoLegal(buf []chess.Move, n int) int {
	return p.genPseudoLegalFor(p.stm, buf, n)
}

func (p *Position) genPseudoLegalFor(us chess.Color, buf []chess.Move, n int) int {
	them := us.Flip()

	for from := chess.Square(0); from < 64; from++ {
		pc := p.pieceAt(from)
		if pc == chess.PieceNone || pc.Color() != us {
			continue
		}
		switch pc.Type() {
		case chess.Pawn:
			n = p.genPawnMoves(buf, n, from, us)
		case chess.Knight:
			n = p.genOffsetMoves(buf, n, from, pc, knightOffsets[:])
		case chess.King:
			n = p.genOffsetMoves(buf, n, from, pc, kingOffsets[:])
		case chess.Bishop:
			n = p.genSlidingMoves(buf, n, from, pc, bishopDirs[:])
		case chess.Rook:
			n = p.genSlidingMoves(buf, n, from, pc, rookDirs[:])
		case chess.Queen:
			n = p.genSlidingMoves(buf, n, from, pc, bishopDirs[:])
			n = p.genSlidingMoves(buf, n, from, pc, rookDirs[:])
		}
	}

	n = p.genCastling(buf, n, us, them)
	return n
}

func (p *Position) genOffsetMoves(buf []chess.Move, n int, from chess.Square, pc chess.Piece, offsets []int) int {
	i0 := sq0x88(from)
	for _, off := range offsets {
		i := i0 + off
		if !valid0x88(i) {
			continue
		}
		to := fromSq0x88(i)
		target := p.squares[i]
		if target == chess.PieceNone {
			buf[n] = chess.New(from, to, pc)
			n++
		} else if target.Color() != pc.Color() {
			buf[n] = chess.NewMove(from, to, pc, target.Type(), chess.PtNone, chess.Normal)
			n++
		}
	}
	return n
}

func (p *Position) genSlidingMoves(buf []chess.Move, n int, from chess.Square, pc chess.Piece, dirs []int) int {
	i0 := sq0x88(from)
	for _, dir := range dirs {
		i := i0 + dir
		for valid0x88(i) {
			to := fromSq0x88(i)
			target := p.squares[i]
			if target == chess.PieceNone {
				buf[n] = chess.New(from, to, pc)
				n++
				i += dir
				continue
			}
			if target.Color() != pc.Color() {
				buf[n] = chess.NewMove(from, to, pc, target.Type(), chess.PtNone, chess.Normal)
				n++
			}
			break
		}
	}
	return n
}

func (p *Position) genPawnMoves(buf []chess.Move, n int, from chess.Square, us chess.Color) int {
	pc := chess.MakePiece(us, chess.Pawn)
	dir := 16
	startRank := 1
	promoRank := 7
	if us == chess.Black {
		dir = -16
		startRank = 6
		promoRank = 0
	}
	i0 := sq0x88(from)

	one := i0 + dir
	if valid0x88(one) && p.squares[one] == chess.PieceNone {
		to := fromSq0x88(one)
		n = p.appendPawnMove(buf, n, from, to, pc, chess.PtNone, to.Rank() == promoRank)
		if from.Rank() == startRank {
			two := i0 + 2*dir
			if p.squares[two] == chess.PieceNone {
				buf[n] = chess.New(from, fromSq0x88(two), pc)
				n++
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		i := i0 + dir + df
		if !valid0x88(i) {
			continue
		}
		to := fromSq0x88(i)
		target := p.squares[i]
		switch {
		case target != chess.PieceNone && target.Color() != us:
			n = p.appendPawnMove(buf, n, from, to, pc, target.Type(), to.Rank() == promoRank)
		case to == p.epSquare && p.epSquare != chess.SqNone:
			buf[n] = chess.NewMove(from, to, pc, chess.Pawn, chess.PtNone, chess.EnPassant)
			n++
		}
	}
	return n
}

func (p *Position) appendPawnMove(buf []chess.Move, n int, from, to chess.Square, pc chess.Piece, captured chess.PieceType, promo bool) int {
	if promo {
		for _, pt := range promoTypes {
			buf[n] = chess.NewMove(from, to, pc, captured, pt, chess.Promotion)
			n++
		}
		return n
	}
	buf[n] = chess.NewMove(from, to, pc, captured, chess.PtNone, chess.Normal)
	return n + 1
}

// castling rights index: 0=WK 1=WQ 2=BK 3=BQ.
var castleKingFrom = [2]chess.Square{4, 60}
var castleKingToShort = [2]chess.Square{6, 62}
var castleKingToLong = [2]chess.Square{2, 58}
var castleRookFromShort = [2]chess.Square{7, 63}
var castleRookFromLong = [2]chess.Square{0, 56}

func (p *Position) genCastling(buf []chess.Move, n int, us, them chess.Color) int {
	kf := castleKingFrom[us]
	if p.pieceAt(kf) != chess.MakePiece(us, chess.King) {
		return n
	}
	if p.isSquareAttacked(kf, them) {
		return n
	}

	shortIdx, longIdx := 0, 1
	if us == chess.Black {
		shortIdx, longIdx = 2, 3
	}

	if p.castling[shortIdx] {
		rf := castleRookFromShort[us]
		kt := castleKingToShort[us]
		if p.pieceAt(rf) == chess.MakePiece(us, chess.Rook) &&
			p.squareEmpty(kf+1) && p.squareEmpty(kf+2) &&
			!p.isSquareAttacked(kf+1, them) && !p.isSquareAttacked(kf+2, them) {
			buf[n] = chess.NewMove(kf, kt, chess.MakePiece(us, chess.King), chess.PtNone, chess.PtNone, chess.Castling)
			n++
		}
	}
	if p.castling[longIdx] {
		rf := castleRookFromLong[us]
		kt := castleKingToLong[us]
		if p.pieceAt(rf) == chess.MakePiece(us, chess.Rook) &&
			p.squareEmpty(kf-1) && p.squareEmpty(kf-2) && p.squareEmpty(kf-3) &&
			!p.isSquareAttacked(kf-1, them) && !p.isSquareAttacked(kf-2, them) {
			buf[n] = chess.NewMove(kf, kt, chess.MakePiece(us, chess.King), chess.PtNone, chess.PtNone, chess.Castling)
			n++
		}
	}
	return n
}

func (p *Position) squareEmpty(sq chess.Square) bool {
	return p.pieceAt(sq) == chess.PieceNone
}

// GenerateLegalMoves implements search.Board: generate pseudo-legal
// moves into a scratch buffer, then keep only those that don't leave
// the mover's own king in check, discovered by actually playing and
// undoing each one.
func (p *Position) GenerateLegalMoves(buf []chess.Move) int {
	var pseudo [256]chess.Move
	count := p.genPseudoLegal(pseudo[:], 0)

	us := p.stm
	n := 0
	for i := 0; i < count; i++ {
		m := pseudo[i]
		p.MakeMove(m)
		if !p.isKingAttacked(us) {
			buf[n] = m
			n++
		}
		p.UnmakeMove(m)
	}
	return n
}
