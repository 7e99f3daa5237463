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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/FR97/chess-rot/config"
	myLogging "github.com/FR97/chess-rot/logging"
	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

const trace = true

// Evaluator represents a data structure and functionality for
// evaluating chess positions by using various evaluation
// heuristics like material, positional values, bishop pair,
// castled bonus, isolated pawns and mobility.
// Create a new instance with NewEvaluator()
type Evaluator struct {
	log     *logging.Logger
	attacks Attacks
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// Evaluate calculates a value for a chess position by
// using various evaluation heuristics like material,
// positional values, bishop pair, castled bonus, isolated
// pawns and mobility.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	var value Value = 0

	gamePhaseFactor := pos.GamePhaseFactor()

	// Each position is evaluated from the view of the white
	// player. Before returning the value this will be adjusted
	// to the next player's color.
	// All heuristics return a value in centipawns or have a
	// dedicated configurable weight to adjust and test.

	value += e.material(pos)
	value += e.positional(pos, gamePhaseFactor)
	value += e.bishopPair(pos)
	value += e.castled(pos)
	value += e.isolatedPawns(pos)

	if config.Settings.Eval.UseMobility {
		value += e.mobility(pos)
	}

	// value is always from the view of the next player
	if pos.NextPlayer() == Black {
		value *= -1
	}

	// TEMPO Bonus for the side to move (helps with evaluation alternation -
	// less difference between side which makes aspiration search faster
	// (not empirically tested)
	value += Value(float64(config.Settings.Eval.Tempo) * gamePhaseFactor)

	return value
}

func (e *Evaluator) material(pos *position.Position) Value {
	return pos.Material(White) - pos.Material(Black)
}

func (e *Evaluator) positional(pos *position.Position, gamePhaseFactor float64) Value {
	return Value(float64(pos.PsqMidValue(White)-pos.PsqMidValue(Black))*gamePhaseFactor +
		float64(pos.PsqEndValue(White)-pos.PsqEndValue(Black))*(1-gamePhaseFactor))
}

// bishopPair awards the bonus exactly once per side that still holds
// both bishops. Deliberately computed outside any per-piece-kind loop
// (see the evaluator iteration bug note in the design notes): looping
// this term over piece kinds and gating on pieceType == Bishop would
// still work but multiplies the cost for no reason, and the same loop
// used to host the castled/mobility terms without that gate.
func (e *Evaluator) bishopPair(pos *position.Position) Value {
	bonus := Value(config.Settings.Eval.BishopPairBonus)
	var value Value
	if pos.PiecesBb(White, Bishop).PopCount() >= 2 {
		value += bonus
	}
	if pos.PiecesBb(Black, Bishop).PopCount() >= 2 {
		value -= bonus
	}
	return value
}

// castled awards the bonus once per side that has already castled,
// read from the position's explicit hasCastled flag rather than
// inferred from king file and castling rights.
func (e *Evaluator) castled(pos *position.Position) Value {
	bonus := Value(config.Settings.Eval.CastledBonus)
	var value Value
	if pos.HasCastled(White) {
		value += bonus
	}
	if pos.HasCastled(Black) {
		value -= bonus
	}
	return value
}

// isolatedPawns penalizes each pawn once per neighboring file (a-file
// and h-file pawns have only one neighbor) that holds no friendly pawn.
// A pawn isolated on both sides is charged the malus twice.
func (e *Evaluator) isolatedPawns(pos *position.Position) Value {
	malus := Value(config.Settings.Eval.IsolatedPawnMalus)
	return malus * Value(isolatedPawnNeighborMalusCount(pos, Black)-isolatedPawnNeighborMalusCount(pos, White))
}

func isolatedPawnNeighborMalusCount(pos *position.Position, c Color) int {
	pawns := pos.PiecesBb(c, Pawn)
	count := 0
	for bb := pawns; bb != BbZero; {
		sq := bb.PopLsb()
		f := sq.FileOf()
		if f > FileA && pawns&(FileA_Bb<<(f-1)) == BbZero {
			count++
		}
		if f < FileH && pawns&(FileA_Bb<<(f+1)) == BbZero {
			count++
		}
	}
	return count
}

// mobility awards a bonus per square a color attacks that is not
// occupied by its own pieces, computed via the shared Attacks
// machinery so the cost of a full legal move generation (which needs
// a DoMove/UndoMove per candidate to filter out moves that leave the
// king in check) is not paid at every leaf node. This pseudo-attack
// count stands in for a true legal-move count: it is cheap enough to
// run unconditionally. It differs from legal mobility in that pawn
// moves and castling are not counted, and pinned pieces, check
// evasions and king steps onto attacked squares are not filtered.
func (e *Evaluator) mobility(pos *position.Position) Value {
	e.attacks.Compute(pos)
	bonus := Value(config.Settings.Eval.MobilityBonus)
	return bonus * Value(e.attacks.Mobility[White]-e.attacks.Mobility[Black])
}
