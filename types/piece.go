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

import "strings"

// Piece is a set of constants combining a PieceType with a Color,
// packed as (color << 3) + pieceType.
type Piece int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	WhiteKing   Piece = 0 // 0b0000
	WhiteQueen  Piece = 1 // 0b0001
	WhiteRook   Piece = 2 // 0b0010
	WhiteBishop Piece = 3 // 0b0011
	WhiteKnight Piece = 4 // 0b0100
	WhitePawn   Piece = 5 // 0b0101
	BlackKing   Piece = 8  // 0b1000
	BlackQueen  Piece = 9  // 0b1001
	BlackRook   Piece = 10 // 0b1010
	BlackBishop Piece = 11 // 0b1011
	BlackKnight Piece = 12 // 0b1100
	BlackPawn   Piece = 13 // 0b1101
	PieceNone   Piece = 6  // PtNone on White's side of the packing
	PieceLength Piece = 16
)

var pieceToString = string("KQRBNP--kqrbnp--")

// String returns a single-char FEN-style representation of the piece
func (p Piece) String() string {
	return string(pieceToString[p])
}

// MakePiece creates the piece given by color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the given piece
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of the piece
func (p Piece) ValueOf() int {
	return pieceTypeValue[p.TypeOf()]
}

// IsValid checks whether p denotes an actual piece (not PieceNone)
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// PieceFromChar parses a single FEN piece character (e.g. "K", "n")
// and returns the corresponding Piece, or PieceNone if c is not a
// valid FEN piece letter.
func PieceFromChar(c string) Piece {
	if len(c) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToString, c[0])
	if idx < 0 || idx == 6 || idx == 7 || idx == 14 || idx == 15 {
		return PieceNone
	}
	return Piece(idx)
}
