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

import (
	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/pkg/chess"
)

var rookFromCastle = map[chess.Square]chess.Square{
	6: 7, 2: 0, 62: 63, 58: 56,
}
var rookToCastle = map[chess.Square]chess.Square{
	6: 5, 2: 3, 62: 61, 58: 59,
}

// MakeMove applies m to the position, pushing enough state onto history
// to undo it exactly. MakeMove(chess.NoMove) is the null move: side to
// move toggles and any en-passant square is cleared, nothing else
// changes -- used by the search core's null-move pruning.
func (p *Position) MakeMove(m chess.Move) {
	entry := undoEntry{
		epSquare:    p.epSquare,
		castling:    p.castling,
		halfmoveClk: p.halfmoveClock,
		hash:        p.hash,
	}

	if p.epSquare != chess.SqNone {
		p.hash ^= epFileKeys[p.epSquare.File()]
	}
	p.epSquare = chess.SqNone

	if m == chess.NoMove {
		p.history = append(p.history, entry)
		p.moveHist = append(p.moveHist, m)
		p.stm = p.stm.Flip()
		p.hash ^= sideToMoveKey
		p.keyHist = append(p.keyHist, p.hash)
		return
	}

	from, to := m.From(), m.To()
	moving := m.MovingPiece()
	us := moving.Color()

	if assert.DEBUG {
		assert.Assert(us == p.stm, "MakeMove: moving piece color %s does not match side to move %s", us, p.stm)
		assert.Assert(p.pieceAt(from) == moving, "MakeMove: no %s on %s for move %s", moving, from, m)
		assert.Assert(m.CapturedType() != chess.King, "MakeMove: move %s captures a king", m)
	}

	entry.captured = m.CapturedType()

	p.halfmoveClock++
	if moving.Type() == chess.Pawn || m.IsCapture() {
		p.halfmoveClock = 0
	}

	switch m.Type() {
	case chess.EnPassant:
		capSq := to - 8
		if us == chess.Black {
			capSq = to + 8
		}
		if assert.DEBUG {
			assert.Assert(p.pieceAt(capSq) == chess.MakePiece(us.Flip(), chess.Pawn), "MakeMove: en passant %s has no enemy pawn on %s", m, capSq)
		}
		p.clearPiece(capSq)
		p.clearPiece(from)
		p.setPiece(to, moving)
	case chess.Castling:
		if assert.DEBUG {
			assert.Assert(p.pieceAt(rookFromCastle[to]).Type() == chess.Rook, "MakeMove: castling %s has no rook on %s", m, rookFromCastle[to])
		}
		p.clearPiece(from)
		p.setPiece(to, moving)
		rf := rookFromCastle[to]
		rt := rookToCastle[to]
		rook := p.pieceAt(rf)
		p.clearPiece(rf)
		p.setPiece(rt, rook)
	case chess.Promotion:
		p.clearPiece(from)
		p.setPiece(to, chess.MakePiece(us, m.PromotionType()))
	default:
		p.clearPiece(from)
		p.setPiece(to, moving)
		if moving.Type() == chess.Pawn && abs(int(to)-int(from)) == 16 {
			epSq := (to + from) / 2
			p.epSquare = epSq
			p.hash ^= epFileKeys[epSq.File()]
		}
	}

	p.updateCastlingRights(from, to)

	if us == chess.Black {
		p.fullmoveNum++
	}
	p.stm = us.Flip()
	p.hash ^= sideToMoveKey

	p.history = append(p.history, entry)
	p.moveHist = append(p.moveHist, m)
	p.keyHist = append(p.keyHist, p.hash)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (p *Position) updateCastlingRights(from, to chess.Square) {
	clear := func(idx int) {
		if p.castling[idx] {
			p.hash ^= castleKeys[idx]
			p.castling[idx] = false
		}
	}
	switch from {
	case 4:
		clear(0)
		clear(1)
	case 60:
		clear(2)
		clear(3)
	case 0:
		clear(1)
	case 7:
		clear(0)
	case 56:
		clear(3)
	case 63:
		clear(2)
	}
	switch to {
	case 0:
		clear(1)
	case 7:
		clear(0)
	case 56:
		clear(3)
	case 63:
		clear(2)
	}
}

// UnmakeMove reverses the most recent MakeMove(m); m must be the same
// move just played.
func (p *Position) UnmakeMove(m chess.Move) {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "UnmakeMove: no move to undo")
	}
	n := len(p.history) - 1
	entry := p.history[n]
	p.history = p.history[:n]
	p.moveHist = p.moveHist[:n]
	p.keyHist = p.keyHist[:n+1]

	p.epSquare = entry.epSquare
	p.castling = entry.castling
	p.halfmoveClock = entry.halfmoveClk
	p.hash = entry.hash

	if m == chess.NoMove {
		p.stm = p.stm.Flip()
		return
	}

	from, to := m.From(), m.To()
	moving := m.MovingPiece()
	us := moving.Color()

	if us == chess.Black {
		p.fullmoveNum--
	}
	p.stm = us

	switch m.Type() {
	case chess.EnPassant:
		p.squares[sq0x88(to)] = chess.PieceNone
		p.squares[sq0x88(from)] = moving
		capSq := to - 8
		if us == chess.Black {
			capSq = to + 8
		}
		p.squares[sq0x88(capSq)] = chess.MakePiece(us.Flip(), chess.Pawn)
	case chess.Castling:
		p.squares[sq0x88(to)] = chess.PieceNone
		p.squares[sq0x88(from)] = moving
		rf := rookFromCastle[to]
		rt := rookToCastle[to]
		p.squares[sq0x88(rf)] = p.squares[sq0x88(rt)]
		p.squares[sq0x88(rt)] = chess.PieceNone
	case chess.Promotion:
		p.squares[sq0x88(from)] = moving
		if entry.captured != chess.PtNone {
			p.squares[sq0x88(to)] = chess.MakePiece(us.Flip(), entry.captured)
		} else {
			p.squares[sq0x88(to)] = chess.PieceNone
		}
	default:
		p.squares[sq0x88(from)] = moving
		if entry.captured != chess.PtNone {
			p.squares[sq0x88(to)] = chess.MakePiece(us.Flip(), entry.captured)
		} else {
			p.squares[sq0x88(to)] = chess.PieceNone
		}
	}

	if moving.Type() == chess.King {
		p.kingSq[us] = from
	}
}

// IsDraw implements search.Board: threefold repetition, the 50-move
// rule, or insufficient mating material.
func (p *Position) IsDraw() bool {
	if p.halfmoveClock >= 100 {
		return true
	}
	if p.isThreefoldRepetition() {
		return true
	}
	return p.isInsufficientMaterial()
}

func (p *Position) isThreefoldRepetition() bool {
	n := len(p.keyHist)
	if n == 0 {
		return false
	}
	current := p.keyHist[n-1]
	count := 0
	lookback := p.halfmoveClock
	if lookback > n-1 {
		lookback = n - 1
	}
	for i := n - 1; i >= n-1-lookback && i >= 0; i -= 2 {
		if p.keyHist[i] == current {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

func (p *Position) isInsufficientMaterial() bool {
	var minorCount [2]int
	for i := range p.squares {
		if !valid0x88(i) {
			continue
		}
		pc := p.squares[i]
		if pc == chess.PieceNone {
			continue
		}
		switch pc.Type() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight, chess.Bishop:
			minorCount[pc.Color()]++
		}
	}
	return minorCount[chess.White] <= 1 && minorCount[chess.Black] <= 1
}
