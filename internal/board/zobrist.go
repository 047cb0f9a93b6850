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

// Zobrist key tables: one key per (piece, square), one for
// side-to-move, one per castling right, one per en-passant file. Filled
// deterministically by a splitmix64 stream seeded with a fixed constant
// so the same binary always produces the same keys -- the fingerprint
// only needs to be stable within one process, not cryptographically
// random.
var (
	pieceSquareKeys [16][64]uint64
	sideToMoveKey   uint64
	castleKeys      [4]uint64
	epFileKeys      [8]uint64
)

func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func init() {
	seed := uint64(0x5EED_C0FF_EE15_C0DE)
	for p := 0; p < 16; p++ {
		for s := 0; s < 64; s++ {
			pieceSquareKeys[p][s] = splitmix64(&seed)
		}
	}
	sideToMoveKey = splitmix64(&seed)
	for i := range castleKeys {
		castleKeys[i] = splitmix64(&seed)
	}
	for i := range epFileKeys {
		epFileKeys[i] = splitmix64(&seed)
	}
}

func pieceKey(p chess.Piece, sq chess.Square) uint64 {
	return pieceSquareKeys[p][sq]
}
