/*
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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBitboard(t *testing.T) {
	assert.Equal(t, Bitboard(1), SqA1.Bitboard())
	assert.Equal(t, Bitboard(1)<<63, SqH8.Bitboard())
}

func TestPushPopSquare(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b&SqE4.Bitboard() != 0)
	b.PopSquare(SqE4)
	assert.Equal(t, BbZero, b)
}

func TestBitboardLsbMsb(t *testing.T) {
	b := SqA1.Bitboard() | SqH8.Bitboard() | SqE4.Bitboard()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	assert.Equal(t, SquareNone, BbZero.Lsb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqA1.Bitboard() | SqE4.Bitboard()
	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	second := b.PopLsb()
	assert.Equal(t, SqE4, second)
	assert.Equal(t, BbZero, b)
}

func TestBitboardPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 2, (SqA1.Bitboard() | SqH8.Bitboard()).PopCount())
}

func TestBitboardMirrorVertical(t *testing.T) {
	assert.Equal(t, SqA8.Bitboard(), SqA1.Bitboard().MirrorVertical())
	assert.Equal(t, SqH1.Bitboard(), SqH8.Bitboard().MirrorVertical())
}

func TestBitboardMirrorHorizontal(t *testing.T) {
	assert.Equal(t, SqH1.Bitboard(), SqA1.Bitboard().MirrorHorizontal())
	assert.Equal(t, SqA8.Bitboard(), SqH8.Bitboard().MirrorHorizontal())
}

func TestBitboardMirrorA1H8(t *testing.T) {
	assert.Equal(t, SqA1.Bitboard(), SqA1.Bitboard().MirrorA1H8())
	assert.Equal(t, SqA2.Bitboard(), SqB1.Bitboard().MirrorA1H8())
}

func TestFileRankSquareDistance(t *testing.T) {
	assert.Equal(t, 0, FileDistance(FileA, FileA))
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 0, RankDistance(Rank1, Rank1))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}

func TestBitboardStr(t *testing.T) {
	assert.Equal(t, 64, len(BbZero.Str()))
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", SqA1.Bitboard().Str())
}

func TestBitboardStrBoard(t *testing.T) {
	s := BbAll.StrBoard()
	assert.NotEmpty(t, s)
}

func TestBitboardStrGrp(t *testing.T) {
	s := SqA1.Bitboard().StrGrp()
	assert.NotEmpty(t, s)
}

func TestShiftBitboard(t *testing.T) {
	b := SqE4.Bitboard()
	assert.Equal(t, SqE5.Bitboard(), ShiftBitboard(b, North))
	assert.Equal(t, SqE3.Bitboard(), ShiftBitboard(b, South))
	assert.Equal(t, SqF4.Bitboard(), ShiftBitboard(b, East))
	assert.Equal(t, SqD4.Bitboard(), ShiftBitboard(b, West))
	// shifting off the edge yields an empty board, not a wrapped one
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bitboard(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bitboard(), West))
}

func TestFileRankBitboards(t *testing.T) {
	assert.Equal(t, 8, FileA_Bb.PopCount())
	assert.Equal(t, 8, Rank1_Bb.PopCount())
	assert.True(t, FileA_Bb&SqA1.Bitboard() != 0)
	assert.True(t, Rank8_Bb&SqH8.Bitboard() != 0)
}
