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

package types

// pseudoAttacks holds the pre computed attack bitboard of a
// non-sliding piece (King, Knight) for every square. Pawn attacks are
// color dependent and kept in a separate table.
var pseudoAttacks [PtLength][SqLength]Bitboard

// pawnAttacks holds the pre computed pawn capture targets per color
// and square.
var pawnAttacks [2][SqLength]Bitboard

// kingSteps/knightSteps/pawnSteps are expressed from White's point of
// view; Black's are derived by negating the direction.
var (
	kingSteps   = []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
	knightSteps = []Direction{North + North + East, North + East + East, South + East + East, South + South + East,
		South + South + West, South + West + West, North + West + West, North + North + West}
	pawnSteps = []Direction{Northeast, Northwest}
)

// initLeapers pre computes King, Knight and Pawn attack bitboards for
// every square and, for pawns, every color.
func initLeapers() {
	for s := SqA1; s <= SqH8; s++ {
		for _, d := range kingSteps {
			pseudoAttacks[King][s] |= leaperTarget(s, d)
		}
		for _, d := range knightSteps {
			pseudoAttacks[Knight][s] |= leaperTarget(s, d)
		}
		for c := White; c <= Black; c++ {
			for _, d := range pawnSteps {
				pawnAttacks[c][s] |= leaperTarget(s, Direction(int(d)*c.MoveDirection()))
			}
		}
	}
}

// leaperTarget returns the destination square bitboard for a single
// (possibly composed, e.g. a knight step) direction offset from s, or
// an empty bitboard if the step would wrap around a board edge. Unlike
// Square.To() this works with arbitrary offsets since it validates
// via square distance rather than a per-direction file check.
func leaperTarget(s Square, d Direction) Bitboard {
	to := Square(int(s) + int(d))
	if !to.IsValid() || SquareDistance(s, to) > 2 {
		return BbZero
	}
	return to.Bitboard()
}

// KingAttacks returns the squares attacked by a king on s.
func KingAttacks(s Square) Bitboard {
	return pseudoAttacks[King][s]
}

// KnightAttacks returns the squares attacked by a knight on s.
func KnightAttacks(s Square) Bitboard {
	return pseudoAttacks[Knight][s]
}

// PawnAttacks returns the squares a pawn of color c on s attacks
// (i.e. the squares it could capture on, not its push targets).
func PawnAttacks(c Color, s Square) Bitboard {
	return pawnAttacks[c][s]
}
