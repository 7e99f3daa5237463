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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

func TestGeneratorString(t *testing.T) {
	mg := New()
	assert.Equal(t, "movegen instance", mg.String())
}

func TestGeneratePseudoLegalMovesStartPos(t *testing.T) {
	mg := New()
	pos := position.New()
	moves := mg.GeneratePseudoLegalMoves(&pos, GenAll)
	assert.Equal(t, 20, moves.Len())
}

func TestGeneratePseudoLegalMovesSplitCapNonCap(t *testing.T) {
	mg := New()
	pos := position.NewFen("1kr3nr/pp1pP1P1/2p1p3/3P1p2/1n1bP3/2P5/PP3PPP/RNBQKBNR w KQ - 0 1")

	caps := mg.GeneratePseudoLegalMoves(&pos, GenCap)
	capCount := caps.Len()
	for i := 0; i < caps.Len(); i++ {
		assert.True(t, caps.At(i).IsCapture())
	}

	nonCaps := mg.GeneratePseudoLegalMoves(&pos, GenNonCap)
	nonCapCount := nonCaps.Len()

	all := mg.GeneratePseudoLegalMoves(&pos, GenAll)
	assert.Equal(t, capCount+nonCapCount, all.Len())
}

func TestGenerateCastlingBothSides(t *testing.T) {
	mg := New()
	pos := position.NewFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R w KQkq - 0 1")
	moves := mg.GeneratePseudoLegalMoves(&pos, GenNonCap)

	var castles []string
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.MoveType() == Castling {
			castles = append(castles, m.StringUci())
		}
	}
	assert.ElementsMatch(t, []string{"e1g1", "e1c1"}, castles)
}

func TestGenerateCastlingBlockedByPiece(t *testing.T) {
	mg := New()
	// bishop on g1 blocks the white kingside castle
	pos := position.NewFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K1BR w KQkq - 0 1")
	moves := mg.GeneratePseudoLegalMoves(&pos, GenNonCap)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, "e1g1", moves.At(i).StringUci())
	}
}

func TestGenerateEnPassantCapture(t *testing.T) {
	mg := New()
	pos := position.NewFen("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	moves := mg.GeneratePseudoLegalMoves(&pos, GenCap)
	var found bool
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == EnPassant {
			found = true
			assert.Equal(t, "e5f6", moves.At(i).StringUci())
		}
	}
	assert.True(t, found, "expected an en passant capture to be generated")
}

func TestGeneratePromotions(t *testing.T) {
	mg := New()
	pos := position.NewFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	moves := mg.GeneratePseudoLegalMoves(&pos, GenNonCap)
	promCount := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == Promotion {
			promCount++
		}
	}
	assert.Equal(t, 4, promCount)
}

func TestLegalMovesExcludesMovesLeavingKingInCheck(t *testing.T) {
	mg := New()
	// the d2 pawn is pinned along the second rank by the rook on h2
	// against the white king on a2 - pushing it exposes the king
	pos := position.NewFen("5k2/8/8/8/8/8/K2P3r/8 w - - 0 1")
	legal := mg.LegalMoves(&pos)
	for i := 0; i < legal.Len(); i++ {
		assert.NotEqual(t, "d2d3", legal.At(i).StringUci())
		assert.NotEqual(t, "d2d4", legal.At(i).StringUci())
	}
}

func TestLegalMovesKiwipeteCount(t *testing.T) {
	mg := New()
	pos := position.NewFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	legal := mg.LegalMoves(&pos)
	assert.Equal(t, 48, legal.Len())
}

func TestGenerateCastlingBlockedByAttack(t *testing.T) {
	mg := New()
	// rook on g8 attacks g1 on an otherwise empty g-file, ruling out
	// kingside castling while leaving queenside castling (e1c1) legal.
	pos := position.NewFen("4k1r1/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	legal := mg.LegalMoves(&pos)
	var castles []string
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.MoveType() == Castling {
			castles = append(castles, m.StringUci())
		}
	}
	assert.NotContains(t, castles, "e1g1")
	assert.Contains(t, castles, "e1c1")
}

func TestForEachMoveVisitsOnlyLegalMoves(t *testing.T) {
	pos := position.New()
	count := 0
	ForEachMove(&pos, GenAll, func(m Move) bool {
		count++
		return true
	})
	assert.Equal(t, 20, count)
}

func TestForEachMoveStopsEarly(t *testing.T) {
	pos := position.New()
	count := 0
	ForEachMove(&pos, GenAll, func(m Move) bool {
		count++
		return count < 5
	})
	assert.Equal(t, 5, count)
}
