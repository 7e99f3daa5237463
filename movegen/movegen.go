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

// Package movegen contains functionality to create moves on a
// chess position. It implements several variants like
// pseudo legal move list, legal move list or on demand move
// generation of pseudo legal moves.
package movegen

import (
	"sort"

	"github.com/FR97/chess-rot/assert"
	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

// GenMode generation modes for on demand move generation
type GenMode int

// GenMode generation modes for on demand move generation
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// scoredMove pairs a candidate move with an ordering value. The value
// is only ever used to sort moves before they are handed back to the
// caller - it has no meaning outside this package and is never packed
// into the Move itself.
type scoredMove struct {
	mv  Move
	val int
}

// Generator generates pseudo legal and legal moves for a position.
// Reused across calls to avoid allocating a fresh move buffer per call.
type Generator struct {
	pseudoLegalMoves MoveList
	legalMoves       MoveList
	scored           []scoredMove
}

// New creates a new instance of a move generator.
func New() Generator {
	return Generator{
		pseudoLegalMoves: *NewMoveList(),
		legalMoves:       *NewMoveList(),
		scored:           make([]scoredMove, 0, MaxMoves),
	}
}

func (mg *Generator) String() string {
	return "movegen instance"
}

// GeneratePseudoLegalMoves generates pseudo legal moves for the next
// player of pos, in the requested mode (captures, non-captures or
// both). Does not check whether the king is left in check, or whether
// a castling king crosses or starts on an attacked square - use
// LegalMoves or filter with pos.IsLegalMove for that. Moves are
// ordered roughly best-first: captures by MVV-LVA plus positional
// value, promotions by the promoted piece's value, quiet moves by
// positional value alone.
func (mg *Generator) GeneratePseudoLegalMoves(pos *position.Position, mode GenMode) *MoveList {
	mg.scored = mg.scored[:0]
	mg.generatePawnMoves(pos, mode)
	mg.generateKingMoves(pos, mode)
	mg.generatePieceMoves(pos, mode)
	mg.generateCastling(pos, mode)

	sort.SliceStable(mg.scored, func(i, j int) bool { return mg.scored[i].val > mg.scored[j].val })

	mg.pseudoLegalMoves.Clear()
	for _, sm := range mg.scored {
		mg.pseudoLegalMoves.PushBack(sm.mv)
	}
	return &mg.pseudoLegalMoves
}

// LegalMoves generates all legal moves for the next player of pos -
// pseudo legal moves filtered by pos.IsLegalMove.
func (mg *Generator) LegalMoves(pos *position.Position) *MoveList {
	mg.GeneratePseudoLegalMoves(pos, GenAll)
	mg.legalMoves.Clear()
	mg.pseudoLegalMoves.ForEach(func(i int) {
		m := mg.pseudoLegalMoves.At(i)
		if pos.IsLegalMove(m) {
			mg.legalMoves.PushBack(m)
		}
	})
	return &mg.legalMoves
}

// ForEachMove generates pseudo legal moves for the next player of pos
// and calls f once per legal move, without building the filtered
// legal-move list. Each call allocates a fresh Generator and its
// pseudo-legal move list.
// Stops early if f returns false.
func ForEachMove(pos *position.Position, mode GenMode, f func(m Move) bool) {
	mg := New()
	moves := mg.GeneratePseudoLegalMoves(pos, mode)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !pos.IsLegalMove(m) {
			continue
		}
		if !f(m) {
			return
		}
	}
}

func (mg *Generator) add(mv Move, val int) {
	mg.scored = append(mg.scored, scoredMove{mv, val})
}

func (mg *Generator) generatePawnMoves(pos *position.Position, mode GenMode) {
	us := pos.NextPlayer()
	them := us.Flip()
	myPawns := pos.PiecesBb(us, Pawn)
	oppPieces := pos.OccupiedBb(them)
	gamePhase := pos.GamePhase()
	piece := MakePiece(us, Pawn)
	fwd := Direction(us.MoveDirection()) * North

	// rook and bishop promotions are usually redundant to a queen
	// promotion (except in some stalemate-avoidance situations), so
	// they sort behind queen/knight promotions.
	addPromotions := func(from, to Square, baseValue int) {
		for _, pt := range [4]PieceType{Queen, Knight, Rook, Bishop} {
			bonus := 0
			if pt == Rook || pt == Bishop {
				bonus = -2000
			}
			mg.add(NewPromotion(from, to, pt, us), baseValue+pt.ValueOf()+bonus)
		}
	}

	if mode&GenCap != 0 {
		// diagonal pawn captures, including promotion captures
		for _, dir := range []Direction{West, East} {
			captures := ShiftBitboard(myPawns, fwd+dir) & oppPieces
			promCaptures := captures & us.PromotionRankBb()
			for promCaptures != 0 {
				to := promCaptures.PopLsb()
				from := to.To(-fwd - dir)
				baseValue := pos.GetPiece(to).ValueOf() - pos.GetPiece(from).ValueOf() + int(PosValue(piece, to, gamePhase))
				addPromotions(from, to, baseValue)
			}
			captures &= ^us.PromotionRankBb()
			for captures != 0 {
				to := captures.PopLsb()
				from := to.To(-fwd - dir)
				val := pos.GetPiece(to).ValueOf() - pos.GetPiece(from).ValueOf() + int(PosValue(piece, to, gamePhase))
				mg.add(NewCapture(from, to, Pawn, pos.GetPiece(to).TypeOf(), us), val)
			}
		}

		// en passant
		epSq := pos.GetEnPassantSquare()
		if epSq != SqNone {
			for _, dir := range []Direction{West, East} {
				attacker := ShiftBitboard(epSq.Bitboard(), -fwd+dir) & myPawns
				if attacker != 0 {
					from := attacker.PopLsb()
					to := from.To(fwd - dir)
					val := Pawn.ValueOf() + int(PosValue(piece, to, gamePhase))
					mg.add(NewEnPassant(from, to, us), val)
				}
			}
		}
	}

	if mode&GenNonCap != 0 {
		empty := ^pos.OccupiedAll()
		single := ShiftBitboard(myPawns, fwd) & empty
		double := ShiftBitboard(single&us.PawnDoubleRank(), fwd) & empty

		promMoves := single & us.PromotionRankBb()
		for promMoves != 0 {
			to := promMoves.PopLsb()
			from := to.To(-fwd)
			addPromotions(from, to, -10_000)
		}

		for double != 0 {
			to := double.PopLsb()
			from := to.To(-fwd).To(-fwd)
			val := -10_000 + int(PosValue(piece, to, gamePhase))
			mg.add(NewPawnJump(from, to, us), val)
		}

		single &= ^us.PromotionRankBb()
		for single != 0 {
			to := single.PopLsb()
			from := to.To(-fwd)
			val := -10_000 + int(PosValue(piece, to, gamePhase))
			mg.add(NewMove(from, to, Pawn, us), val)
		}
	}
}

func (mg *Generator) generateCastling(pos *position.Position, mode GenMode) {
	if mode&GenNonCap == 0 || pos.CastlingRights() == CastlingNone {
		return
	}
	us := pos.NextPlayer()
	cr := pos.CastlingRights()
	occupied := pos.OccupiedAll()

	if us == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupied == 0 {
			if assert.DEBUG {
				assert.Assert(pos.KingSquare(White) == SqE1, "MoveGen Castling: White King not on e1")
				assert.Assert(pos.GetPiece(SqH1) == WhiteRook, "MoveGen Castling: White Rook not on h1")
			}
			mg.add(NewCastling(SqE1, SqG1, White), -5000)
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupied == 0 {
			if assert.DEBUG {
				assert.Assert(pos.KingSquare(White) == SqE1, "MoveGen Castling: White King not on e1")
				assert.Assert(pos.GetPiece(SqA1) == WhiteRook, "MoveGen Castling: White Rook not on a1")
			}
			mg.add(NewCastling(SqE1, SqC1, White), -5000)
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupied == 0 {
			if assert.DEBUG {
				assert.Assert(pos.KingSquare(Black) == SqE8, "MoveGen Castling: Black King not on e8")
				assert.Assert(pos.GetPiece(SqH8) == BlackRook, "MoveGen Castling: Black Rook not on h8")
			}
			mg.add(NewCastling(SqE8, SqG8, Black), -5000)
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupied == 0 {
			if assert.DEBUG {
				assert.Assert(pos.KingSquare(Black) == SqE8, "MoveGen Castling: Black King not on e8")
				assert.Assert(pos.GetPiece(SqA8) == BlackRook, "MoveGen Castling: Black Rook not on a8")
			}
			mg.add(NewCastling(SqE8, SqC8, Black), -5000)
		}
	}
}

func (mg *Generator) generateKingMoves(pos *position.Position, mode GenMode) {
	us := pos.NextPlayer()
	piece := MakePiece(us, King)
	gamePhase := pos.GamePhase()
	kingBb := pos.PiecesBb(us, King)
	if assert.DEBUG {
		assert.Assert(kingBb.PopCount() == 1, "Chess always needs exactly one king. Found=%d ", kingBb.PopCount())
	}
	from := kingBb.PopLsb()
	attacks := KingAttacks(from)

	if mode&GenCap != 0 {
		captures := attacks & pos.OccupiedBb(us.Flip())
		for captures != 0 {
			to := captures.PopLsb()
			val := pos.GetPiece(to).ValueOf() - pos.GetPiece(from).ValueOf() + int(PosValue(piece, to, gamePhase))
			mg.add(NewCapture(from, to, King, pos.GetPiece(to).TypeOf(), us), val)
		}
	}
	if mode&GenNonCap != 0 {
		quiet := attacks &^ pos.OccupiedAll()
		for quiet != 0 {
			to := quiet.PopLsb()
			val := -10_000 + int(PosValue(piece, to, gamePhase))
			mg.add(NewMove(from, to, King, us), val)
		}
	}
}

func (mg *Generator) generatePieceMoves(pos *position.Position, mode GenMode) {
	us := pos.NextPlayer()
	gamePhase := pos.GamePhase()
	occupied := pos.OccupiedAll()

	for pt := Queen; pt <= Knight; pt++ {
		piece := MakePiece(us, pt)
		pieces := pos.PiecesBb(us, pt)

		for pieces != 0 {
			from := pieces.PopLsb()
			var attacks Bitboard
			if pt == Knight {
				attacks = KnightAttacks(from)
			} else {
				attacks = AttacksBb(pt, from, occupied)
			}

			if mode&GenCap != 0 {
				captures := attacks & pos.OccupiedBb(us.Flip())
				for captures != 0 {
					to := captures.PopLsb()
					val := pos.GetPiece(to).ValueOf() - pos.GetPiece(from).ValueOf() + int(PosValue(piece, to, gamePhase))
					mg.add(NewCapture(from, to, pt, pos.GetPiece(to).TypeOf(), us), val)
				}
			}
			if mode&GenNonCap != 0 {
				quiet := attacks &^ occupied
				for quiet != 0 {
					to := quiet.PopLsb()
					val := -10_000 + int(PosValue(piece, to, gamePhase))
					mg.add(NewMove(from, to, pt, us), val)
				}
			}
		}
	}
}
