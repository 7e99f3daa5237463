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

// PieceType is a set of constants for piece kinds in chess, ordered
// King, Queen, Rook, Bishop, Knight, Pawn, None.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	King     PieceType = 0 // Non sliding
	Queen    PieceType = 1 // Sliding
	Rook     PieceType = 2 // Sliding
	Bishop   PieceType = 3 // Sliding
	Knight   PieceType = 4 // Non sliding
	Pawn     PieceType = 5 // Non sliding
	PtNone   PieceType = 6
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "NOPIECE"}

// Str returns a string representation of a piece type
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("KQRBNP-")

// Char returns a single char string representation of a piece type
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var gamePhaseValue = [PtLength]int{0, 4, 2, 1, 1, 0, 0}

// GamePhaseValue returns a value for calculating game phase
// by adding the number of certain piece type times this value
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue holds the material value of each piece kind, King's
// value is a sentinel and never contributes to material scoring - mate
// is handled by the search, not the evaluator.
var pieceTypeValue = [PtLength]int{30000, 900, 500, 330, 325, 100, 0}

// ValueOf returns the material value of the piece type
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsValid checks if pt is a valid, non-None piece type
func (pt PieceType) IsValid() bool {
	return pt >= King && pt < PtNone
}

// IsSliding checks if pieces of this type move along a ray (queen,
// rook, bishop) and therefore use the magic-bitboard attack tables
func (pt PieceType) IsSliding() bool {
	return pt == Queen || pt == Rook || pt == Bishop
}
