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
	"fmt"
	"math/bits"
	"strings"

	"github.com/FR97/chess-rot/util"
)

// Bitboard is a 64 bit set of squares, one bit per square on the board.
type Bitboard uint64

// Bitboard returns the bitboard with only this square set, from the
// pre computed square-to-bitboard array.
func (sq Square) Bitboard() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare removes the corresponding bit of the bitboard for the square
func PopSquare(b Bitboard, s Square) Bitboard {
	return (b | s.Bitboard()) ^ s.Bitboard()
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(s Square) {
	*b = (*b | s.Bitboard()) ^ s.Bitboard()
}

// Has reports whether s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bitboard() != 0
}

// ShiftBitboard shifts all bits of a bitboard one square in the given
// direction, clearing the wrap-around file so bits do not jump over
// the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the least significant set bit of the bitboard as a
// Square. Returns SqNone (64) on an empty bitboard - callers
// must check emptiness first.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit of the bitboard as a
// Square, or SqNone on an empty bitboard.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// MirrorVertical mirrors a bitboard top-to-bottom (rank 1 <-> rank 8).
func (b Bitboard) MirrorVertical() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// MirrorHorizontal mirrors a bitboard left-to-right (file a <-> file h).
func (b Bitboard) MirrorHorizontal() Bitboard {
	const k1 = Bitboard(0x5555555555555555)
	const k2 = Bitboard(0x3333333333333333)
	const k4 = Bitboard(0x0f0f0f0f0f0f0f0f)
	x := b
	x = ((x >> 1) & k1) | ((x & k1) << 1)
	x = ((x >> 2) & k2) | ((x & k2) << 2)
	x = ((x >> 4) & k4) | ((x & k4) << 4)
	return x
}

// MirrorA1H8 mirrors a bitboard along the a1-h8 diagonal (transpose).
func (b Bitboard) MirrorA1H8() Bitboard {
	var t Bitboard
	x := b
	const k1 = Bitboard(0x5500550055005500)
	const k2 = Bitboard(0x3333000033330000)
	const k4 = Bitboard(0x0f0f0f0f00000000)
	t = k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return x
}

// MirrorA8H1 mirrors a bitboard along the a8-h1 (anti) diagonal.
func (b Bitboard) MirrorA8H1() Bitboard {
	return b.MirrorVertical().MirrorHorizontal().MirrorA1H8()
}

// Str returns a raw 64-character binary string representation.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StrBoard returns a string representation of the Bitboard as an 8x8 board.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8 + 1; r != Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, r-1).Bitboard()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StrGrp returns a string representation of the 64 bits grouped by
// rank, ordered lsb to msb (a1 b1 ... g8 h8).
func (b Bitboard) StrGrp() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// FileDistance returns the absolute distance in files between two files
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between two ranks
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance in squares between two squares
func SquareDistance(s1 Square, s2 Square) int {
	return squareDistance[s1][s2]
}

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	// Go does not overflow const values when shifting a bit over msb

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	// EdgeMask is the union of all four board borders - sliding
	// attacks that reach the edge are never blocked beyond it, so
	// magic masks exclude these squares.
	EdgeMask Bitboard = FileA_Bb | FileH_Bb | Rank1_Bb | Rank8_Bb

	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1 Bitboard = (MsbMask & DiagUpA1) << 1 & FileAMask // shift EAST
	DiagUpC1 Bitboard = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1 Bitboard = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1 Bitboard = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1 Bitboard = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1 Bitboard = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1 Bitboard = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2 Bitboard = (Rank8Mask & DiagUpA1) << 8 // shift NORTH
	DiagUpA3 Bitboard = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4 Bitboard = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5 Bitboard = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6 Bitboard = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7 Bitboard = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8 Bitboard = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2 Bitboard = (Rank8Mask & DiagDownH1) << 8 // shift NORTH
	DiagDownH3 Bitboard = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4 Bitboard = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5 Bitboard = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6 Bitboard = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7 Bitboard = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8 Bitboard = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1 Bitboard = (DiagDownH1 >> 1) & FileHMask // shift WEST
	DiagDownF1 Bitboard = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1 Bitboard = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1 Bitboard = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1 Bitboard = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1 Bitboard = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1 Bitboard = (DiagDownB1 >> 1) & FileHMask
)

// Internal pre computed square-to-square-bitboard array.
var sqBb [SqLength]Bitboard

// Internal pre computed square-to-file-bitboard array.
var sqToFileBb [SqLength]Bitboard

// Internal pre computed square-to-rank-bitboard array.
var sqToRankBb [SqLength]Bitboard

// Internal pre computed square-to-up-diagonal-bitboard array.
var sqDiagUpBb [SqLength]Bitboard

// Internal pre computed square-to-down-diagonal-bitboard array.
var sqDiagDownBb [SqLength]Bitboard

// Internal pre computed index for quick square distance lookup
var squareDistance [SqLength][SqLength]int

// initBb pre computes various bitboards to avoid runtime calculation.
// The sliding attack tables themselves live in magic.go - this only
// builds the small per-square masks every other table is built from.
func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(uint64(1) << sq)

		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())

		// @formatter:off
		switch {
		case DiagUpA8&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA8
		case DiagUpA7&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA7
		case DiagUpA6&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA6
		case DiagUpA5&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA5
		case DiagUpA4&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA4
		case DiagUpA3&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA3
		case DiagUpA2&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA2
		case DiagUpA1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpA1
		case DiagUpB1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpB1
		case DiagUpC1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpC1
		case DiagUpD1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpD1
		case DiagUpE1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpE1
		case DiagUpF1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpF1
		case DiagUpG1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpG1
		case DiagUpH1&sqBb[sq] > 0: sqDiagUpBb[sq] = DiagUpH1
		}

		switch {
		case DiagDownH8&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH8
		case DiagDownH7&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH7
		case DiagDownH6&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH6
		case DiagDownH5&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH5
		case DiagDownH4&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH4
		case DiagDownH3&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH3
		case DiagDownH2&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH2
		case DiagDownH1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownH1
		case DiagDownG1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownG1
		case DiagDownF1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownF1
		case DiagDownE1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownE1
		case DiagDownD1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownD1
		case DiagDownC1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownC1
		case DiagDownB1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownB1
		case DiagDownA1&sqBb[sq] > 0: sqDiagDownBb[sq] = DiagDownA1
		}
		// @formatter:on
	}

	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}

	initLeapers()
	initMagicBitboards()
}
