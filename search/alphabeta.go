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

package search

import (
	"github.com/FR97/chess-rot/movegen"
	"github.com/FR97/chess-rot/moveslice"
	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

// rootSearch runs the first ply explicitly since the caller needs
// the move that produced the best value, not just the value.
func (s *Search) rootSearch(pos *position.Position, depth int) (Move, Value, moveslice.MoveSlice) {
	root := pos.NextPlayer()

	bestMove := MoveNone
	bestValue := -ValueInf
	if root == Black {
		bestValue = ValueInf
	}
	var bestPV moveslice.MoveSlice

	movegen.ForEachMove(pos, movegen.GenAll, func(m Move) bool {
		pos.DoMove(m)
		s.statistics.NodesVisited++

		var value Value
		var childPV moveslice.MoveSlice
		if root == White {
			value, childPV = s.minSearch(pos, depth-1, -ValueInf, ValueInf)
		} else {
			value, childPV = s.maxSearch(pos, depth-1, -ValueInf, ValueInf)
		}

		pos.UndoMove()

		if (root == White && value > bestValue) || (root == Black && value < bestValue) {
			bestValue = value
			bestMove = m
			bestPV = append(moveslice.New(len(childPV)+1), m)
			bestPV = append(bestPV, childPV...)
		}

		return !s.timeUp()
	})

	return bestMove, bestValue, bestPV
}

// maxSearch searches a node where White is to move and tries to
// maximize the value, pruning branches the minimizing side would
// never let happen (alpha-beta).
func (s *Search) maxSearch(pos *position.Position, depth int, alpha, beta Value) (Value, moveslice.MoveSlice) {
	if depth == 0 || s.timeUp() {
		return s.evaluate(pos), nil
	}

	hadMove := false
	value := -ValueInf
	var pv moveslice.MoveSlice

	movegen.ForEachMove(pos, movegen.GenAll, func(m Move) bool {
		hadMove = true
		pos.DoMove(m)
		s.statistics.NodesVisited++
		child, childPV := s.minSearch(pos, depth-1, alpha, beta)
		pos.UndoMove()

		if child > value {
			value = child
			pv = append(moveslice.New(len(childPV)+1), m)
			pv = append(pv, childPV...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			return false
		}
		return !s.timeUp()
	})

	if !hadMove {
		return s.terminalValue(pos, depth), nil
	}
	return value, pv
}

// minSearch searches a node where Black is to move and tries to
// minimize the value.
func (s *Search) minSearch(pos *position.Position, depth int, alpha, beta Value) (Value, moveslice.MoveSlice) {
	if depth == 0 || s.timeUp() {
		return s.evaluate(pos), nil
	}

	hadMove := false
	value := ValueInf
	var pv moveslice.MoveSlice

	movegen.ForEachMove(pos, movegen.GenAll, func(m Move) bool {
		hadMove = true
		pos.DoMove(m)
		s.statistics.NodesVisited++
		child, childPV := s.maxSearch(pos, depth-1, alpha, beta)
		pos.UndoMove()

		if child < value {
			value = child
			pv = append(moveslice.New(len(childPV)+1), m)
			pv = append(pv, childPV...)
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			return false
		}
		return !s.timeUp()
	})

	if !hadMove {
		return s.terminalValue(pos, depth), nil
	}
	return value, pv
}

// terminalValue scores a node with no legal moves: checkmate for the
// side to move (adjusted for distance from root so closer mates are
// preferred over farther ones) or a draw by stalemate.
func (s *Search) terminalValue(pos *position.Position, depth int) Value {
	if pos.HasCheck() {
		s.statistics.Checkmates++
		mate := ValueCheckMate - Value(s.limits.MaxDepth-depth)
		if pos.NextPlayer() == White {
			return -mate
		}
		return mate
	}
	s.statistics.Stalemates++
	return ValueDraw
}

// evaluate scores a leaf position from White's perspective. The
// evaluator itself returns a value from the mover's perspective, so
// it is flipped back here when Black is to move.
func (s *Search) evaluate(pos *position.Position) Value {
	s.statistics.LeafPositionsEvaluated++
	value := s.eval.Evaluate(pos)
	if pos.NextPlayer() == Black {
		return -value
	}
	return value
}
