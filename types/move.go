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

import (
	"fmt"
	"strings"
)

// MoveType distinguishes the handful of shapes a Move can take -
// plain pushes need no special DoMove handling, the others each
// trigger an extra side effect (§4.4 of the design doc).
type MoveType uint8

//noinspection GoUnusedConst
const (
	Push      MoveType = 0
	PawnJump  MoveType = 1
	Capture   MoveType = 2
	Castling  MoveType = 3
	EnPassant MoveType = 4
	Promotion MoveType = 5
	MtInvalid MoveType = 6
	MtLength  MoveType = 7
)

var moveTypeToString = [MtLength]string{"Push", "PawnJump", "Capture", "Castling", "EnPassant", "Promotion", "Invalid"}

// String returns a human-readable name for the move type
func (mt MoveType) String() string {
	return moveTypeToString[mt]
}

// IsValid checks whether mt is one of the defined move types
func (mt MoveType) IsValid() bool {
	return mt < MtInvalid
}

// Move packs a chess move into a single 32-bit word: move type (3
// bits), from-square (6 bits), to-square (6 bits), moving piece type
// (3 bits), moving color (1 bit), target piece type (3 bits). The
// packing is never exposed unwrapped - only through the named
// constructors and accessors below, so an ill-formed Move cannot be
// constructed by accident.
//
//  BITMAP 32-bit
//  |unused---------|target-|color|moving-|--type-|--from-|---to--|
//  3 ... 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 0 0
//  1 ... 2 1 0 9 8 7 6 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 1 0
//  ------------------------------------------------------------------
//                                                      1 1 1 1 1 1  to
//                                          1 1 1 1 1 1              from
//                                      1 1 1                        move type
//                                    1                              moving color
//                                1 1 1                               moving piece
//                        1 1 1                                       target piece
type Move uint32

// MoveNone is the "no move" sentinel. It is the zero value of Move,
// which would decode to a from=a1, to=a1 move - no constructor call
// for a real move (from != to) produces it.
const MoveNone Move = 0

const (
	toShift          uint   = 0
	fromShift        uint   = 6
	typeShift        uint   = 12
	movingPieceShift uint   = 15
	movingColorShift uint   = 18
	targetPieceShift uint   = 19

	squareMask     Move = 0x3F
	toMask              = squareMask << toShift
	fromMask            = squareMask << fromShift
	moveTypeMaskM  Move = 0x7 << typeShift
	pieceTypeMaskM Move = 0x7
	movingPieceMask     = pieceTypeMaskM << movingPieceShift
	movingColorMask Move = 1 << movingColorShift
	targetPieceMask      = pieceTypeMaskM << targetPieceShift
)

func pack(from, to Square, mt MoveType, movingPiece, targetPiece PieceType, movingColor Color) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(mt)<<typeShift |
		Move(movingPiece)<<movingPieceShift |
		Move(movingColor)<<movingColorShift |
		Move(targetPiece)<<targetPieceShift
}

// NewMove creates a quiet (non-capturing, non-special) Push move.
func NewMove(from, to Square, movingPiece PieceType, movingColor Color) Move {
	return pack(from, to, Push, movingPiece, PtNone, movingColor)
}

// NewPawnJump creates a pawn double-push move.
func NewPawnJump(from, to Square, movingColor Color) Move {
	return pack(from, to, PawnJump, Pawn, PtNone, movingColor)
}

// NewCapture creates a capturing move; targetPiece is the piece
// being captured, read from the to-square in the pre-move state.
func NewCapture(from, to Square, movingPiece, targetPiece PieceType, movingColor Color) Move {
	return pack(from, to, Capture, movingPiece, targetPiece, movingColor)
}

// NewEnPassant creates an en-passant capture; the captured pawn is
// always of type Pawn, though it does not sit on the to-square.
func NewEnPassant(from, to Square, movingColor Color) Move {
	return pack(from, to, EnPassant, Pawn, Pawn, movingColor)
}

// NewCastling creates a castling move. The moving piece is always
// the King; to must be one of c1/g1/c8/g8.
func NewCastling(from, to Square, movingColor Color) Move {
	return pack(from, to, Castling, King, PtNone, movingColor)
}

// NewPromotion creates a pawn promotion move. targetPiece is the
// piece the pawn becomes (Queen, Rook, Bishop or Knight); if the
// destination holds an enemy piece it is captured but the move type
// remains Promotion, not Capture (a promoting capture is still
// tagged Promotion since the target piece field is already in use
// for the promotion choice - callers check Occupied(to) to know if
// it was also a capture).
func NewPromotion(from, to Square, promoteTo PieceType, movingColor Color) Move {
	return pack(from, to, Promotion, Pawn, promoteTo, movingColor)
}

// MoveType returns the move's type.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMaskM) >> typeShift)
}

// From returns the from-square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the to-square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// MovingPiece returns the type of piece making the move.
func (m Move) MovingPiece() PieceType {
	return PieceType((m & movingPieceMask) >> movingPieceShift)
}

// MovingColor returns the color of the side making the move.
func (m Move) MovingColor() Color {
	return Color((m & movingColorMask) >> movingColorShift)
}

// TargetPiece returns the captured piece (Capture/EnPassant) or the
// promotion piece (Promotion); PtNone otherwise.
func (m Move) TargetPiece() PieceType {
	return PieceType((m & targetPieceMask) >> targetPieceShift)
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.MoveType() == Capture || m.MoveType() == EnPassant
}

// IsValid checks that the move is not MoveNone and decodes to
// in-range squares and move/piece types.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid() &&
		m.MovingPiece().IsValid()
}

// String returns a human-readable description of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{None}"
	}
	return fmt.Sprintf("Move{%s type:%s piece:%s target:%s}",
		m.StringUci(), m.MoveType().String(), m.MovingPiece().Char(), m.TargetPiece().Char())
}

// StringUci returns the UCI-style move text (e.g. "e2e4", "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.TargetPiece().Char()))
	}
	return os.String()
}
