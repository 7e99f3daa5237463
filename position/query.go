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

package position

import (
	. "github.com/FR97/chess-rot/types"
)

// DoNullMove makes a "null move" - passes the turn to the opponent
// without moving a piece. The search in this module does not use it.
func (p *Position) DoNullMove() {
	tmpHistoryCounter := p.historyCounter
	p.history[tmpHistoryCounter] = historyState{
		p.zobristKey,
		MoveNone,
		PieceNone,
		PieceNone,
		p.castlingRights,
		p.enPassantSquare,
		p.halfMoveClock,
		p.hasCheckFlag,
		p.hasCastled[p.nextPlayer],
	}
	p.historyCounter++
	p.hasCheckFlag = flagTBD
	p.clearEnPassant()
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoNullMove restores the state of the position to before the
// DoNullMove() call.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	tmpHistoryCounter := p.historyCounter
	p.castlingRights = p.history[tmpHistoryCounter].castlingRights
	p.enPassantSquare = p.history[tmpHistoryCounter].enpassantSquare
	p.halfMoveClock = p.history[tmpHistoryCounter].halfMoveClock
	p.hasCheckFlag = p.history[tmpHistoryCounter].hasCheckFlag
	p.zobristKey = p.history[tmpHistoryCounter].zobristKey
}

// IsAttacked checks if the given square is attacked by a piece of the
// given color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// reverse attack from the target square: if a piece of the attacking
	// kind would reach sq from here, the real piece on the board attacks sq.
	if (PawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(KnightAttacks(sq)&p.piecesBb[by][Knight] != 0) ||
		(KingAttacks(sq)&p.piecesBb[by][King] != 0) {
		return true
	}

	occupied := p.OccupiedAll()
	if AttacksBb(Bishop, sq, occupied)&p.piecesBb[by][Bishop] > 0 ||
		AttacksBb(Rook, sq, occupied)&p.piecesBb[by][Rook] > 0 ||
		AttacksBb(Queen, sq, occupied)&p.piecesBb[by][Queen] > 0 {
		return true
	}

	// en passant: the pawn that just jumped can itself be captured,
	// which means the square it jumped over is not directly attacked by
	// it but a capturing pawn threatens the jumped-over square.
	if p.enPassantSquare != SqNone {
		switch by {
		case White:
			if p.board[p.enPassantSquare.To(South)] == BlackPawn && p.enPassantSquare.To(South) == sq {
				if p.board[sq.To(West)] == WhitePawn {
					return true
				}
				return p.board[sq.To(East)] == WhitePawn
			}
		case Black:
			if p.board[p.enPassantSquare.To(North)] == WhitePawn && p.enPassantSquare.To(North) == sq {
				if p.board[sq.To(West)] == BlackPawn {
					return true
				}
				return p.board[sq.To(East)] == BlackPawn
			}
		}
	}
	return false
}

// IsLegalMove tests a move if it is legal on the current position.
// Basically tests if the king would be left in check after the move
// or if the king crosses an attacked square during castling.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType() == Castling {
		if p.IsAttacked(move.From(), p.nextPlayer.Flip()) {
			return false
		}
		switch move.To() {
		case SqG1:
			if p.IsAttacked(SqF1, p.nextPlayer.Flip()) {
				return false
			}
		case SqC1:
			if p.IsAttacked(SqD1, p.nextPlayer.Flip()) {
				return false
			}
		case SqG8:
			if p.IsAttacked(SqF8, p.nextPlayer.Flip()) {
				return false
			}
		case SqC8:
			if p.IsAttacked(SqD8, p.nextPlayer.Flip()) {
				return false
			}
		}
	}
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove tests if the last move made was legal - whether the
// mover's king ended up in check, or a castling king crossed or started
// on an attacked square.
func (p *Position) WasLegalMove() bool {
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return false
	}
	if p.historyCounter > 0 {
		move := p.history[p.historyCounter-1].move
		if move.MoveType() == Castling {
			if p.IsAttacked(move.From(), p.nextPlayer) {
				return false
			}
			switch move.To() {
			case SqG1:
				if p.IsAttacked(SqF1, p.nextPlayer) {
					return false
				}
			case SqC1:
				if p.IsAttacked(SqD1, p.nextPlayer) {
					return false
				}
			case SqG8:
				if p.IsAttacked(SqF8, p.nextPlayer) {
					return false
				}
			case SqC8:
				if p.IsAttacked(SqD8, p.nextPlayer) {
					return false
				}
			}
		}
	}
	return true
}

// HasCheck returns true if the next player is threatened by a check
// (king is attacked). Cached for the current position - repeated calls
// on the same position are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove determines if a move on this position is a capturing
// move, including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// GivesCheck determines if the given move will give check to the
// opponent of p.NextPlayer() and returns true if so.
func (p *Position) GivesCheck(move Move) bool {
	us := p.nextPlayer
	them := us.Flip()
	kingSq := p.kingSquare[them]

	fromSq := move.From()
	toSq := move.To()
	fromPc := p.board[fromSq]
	fromPt := fromPc.TypeOf()
	epTargetSq := SqNone
	moveType := move.MoveType()

	switch moveType {
	case Promotion:
		fromPt = move.TargetPiece()
	case Castling:
		// king can't give check from a castling move and castling can't
		// reveal a check - only the rook's new square matters.
		fromPt = Rook
		switch toSq {
		case SqG1:
			toSq = SqF1
		case SqC1:
			toSq = SqD1
		case SqG8:
			toSq = SqF8
		case SqC8:
			toSq = SqD8
		}
	case EnPassant:
		epTargetSq = toSq.To(Direction(them.MoveDirection()) * North)
	}

	boardAfterMove := p.OccupiedAll()
	boardAfterMove.PopSquare(fromSq)
	boardAfterMove.PushSquare(toSq)
	if moveType == EnPassant {
		boardAfterMove.PopSquare(epTargetSq)
	}

	switch fromPt {
	case Pawn:
		if PawnAttacks(us, toSq).Has(kingSq) {
			return true
		}
	case King:
		// can't give check
	default:
		if AttacksBb(fromPt, toSq, boardAfterMove).Has(kingSq) {
			return true
		}
	}

	// revealed checks - only rook, bishop and queen lines can be
	// revealed; knight and pawn attacks can't.
	switch {
	case AttacksBb(Bishop, kingSq, boardAfterMove)&p.piecesBb[us][Bishop] > 0:
		return true
	case AttacksBb(Rook, kingSq, boardAfterMove)&p.piecesBb[us][Rook] > 0:
		return true
	case AttacksBb(Queen, kingSq, boardAfterMove)&p.piecesBb[us][Queen] > 0:
		return true
	}
	return false
}

// CheckRepetitions reports whether the current position has occurred
// reps times before in the game history. reps=2 checks for a 3-fold
// repetition (2 prior occurrences plus the current one).
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		// every time the half move clock gets reset (an irreversible
		// move) there can't be a repetition of positions before it
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
		}
		if counter >= reps {
			return true
		}
		i -= 2
	}
	return false
}

// HasInsufficientMaterial returns true if no side has enough material
// to force a mate (does not exclude combinations where a helpmate would
// be possible, e.g. the opponent needs to support a mate by mistake).
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() == 0 && p.piecesBb[Black][Pawn].PopCount() == 0 {
		if p.materialNonPawn[White] < 400 && p.materialNonPawn[Black] < 400 {
			return true
		}
		if (p.materialNonPawn[White] == 2*Value(Knight.ValueOf()) && p.materialNonPawn[Black] <= Value(Bishop.ValueOf())) ||
			(p.materialNonPawn[Black] == 2*Value(Knight.ValueOf()) && p.materialNonPawn[White] <= Value(Bishop.ValueOf())) {
			return true
		}
		if (p.materialNonPawn[White] == 2*Value(Bishop.ValueOf()) && p.materialNonPawn[Black] == Value(Bishop.ValueOf())) ||
			(p.materialNonPawn[Black] == 2*Value(Bishop.ValueOf()) && p.materialNonPawn[White] == Value(Bishop.ValueOf())) {
			return true
		}
		if p.materialNonPawn[White] == 2*Value(Bishop.ValueOf()) || p.materialNonPawn[Black] == 2*Value(Bishop.ValueOf()) {
			return false
		}
		if (p.materialNonPawn[White] < 2*Value(Bishop.ValueOf()) && p.materialNonPawn[Black] <= Value(Bishop.ValueOf())) ||
			(p.materialNonPawn[White] <= Value(Bishop.ValueOf()) && p.materialNonPawn[Black] < 2*Value(Bishop.ValueOf())) {
			return true
		}
	}
	return false
}
