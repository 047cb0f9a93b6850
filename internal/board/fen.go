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
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/pkg/chess"
)

var fenPieceChars = map[rune]chess.PieceType{
	'p': chess.Pawn, 'n': chess.Knight, 'b': chess.Bishop,
	'r': chess.Rook, 'q': chess.Queen, 'k': chess.King,
}

func (p *Position) loadFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("board: malformed FEN %q", fen)
	}

	for i := range p.squares {
		p.squares[i] = chess.PieceNone
	}
	p.hash = 0
	p.history = nil
	p.moveHist = nil
	p.keyHist = nil

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: FEN %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pt, ok := fenPieceChars[toLowerRune(c)]
				if !ok {
					return fmt.Errorf("board: FEN %q has invalid piece char %q", fen, c)
				}
				color := chess.White
				if c >= 'a' && c <= 'z' {
					color = chess.Black
				}
				if file > 7 {
					return fmt.Errorf("board: FEN %q overflows rank %d", fen, rank)
				}
				sq := chess.Square(rank*8 + file)
				p.setPiece(sq, chess.MakePiece(color, pt))
				file++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.stm = chess.White
	case "b":
		p.stm = chess.Black
		p.hash ^= sideToMoveKey
	default:
		return fmt.Errorf("board: FEN %q has invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling[0] = true
			case 'Q':
				p.castling[1] = true
			case 'k':
				p.castling[2] = true
			case 'q':
				p.castling[3] = true
			}
		}
	}
	for i, on := range p.castling {
		if on {
			p.hash ^= castleKeys[i]
		}
	}

	p.epSquare = chess.SqNone
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return err
		}
		p.epSquare = sq
		p.hash ^= epFileKeys[sq.File()]
	}

	p.halfmoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	p.fullmoveNum = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNum = n
		}
	}

	p.keyHist = append(p.keyHist, p.hash)
	return nil
}

func toLowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func parseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.SqNone, fmt.Errorf("board: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.SqNone, fmt.Errorf("board: invalid square %q", s)
	}
	return chess.Square(rank*8 + file), nil
}

// SetPosition implements search.Board: load fen, then replay moves via
// MakeMove.
func (p *Position) SetPosition(fen string, moves []chess.Move) error {
	if err := p.loadFEN(fen); err != nil {
		return err
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	return nil
}
