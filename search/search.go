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

// Package search implements a fixed-depth minimax search with
// alpha-beta pruning over legal moves generated by the movegen
// package, scored by the evaluator package.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/FR97/chess-rot/chesserrors"
	"github.com/FR97/chess-rot/evaluator"
	myLogging "github.com/FR97/chess-rot/logging"
	"github.com/FR97/chess-rot/movegen"
	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

var out = message.NewPrinter(language.German)
var log = myLogging.GetSearchLog()

// Search represents a single invocation of the fixed-depth
// alpha-beta search. The core is single-threaded and synchronous:
// FindBestMove blocks the calling goroutine until the search
// completes or its time limit is reached. Callers that need
// concurrency (a UI event loop, several searches in parallel) run
// Search on their own goroutines - nothing here is shared mutable
// state beyond the package-level immutable tables built by types
// and movegen at init time.
type Search struct {
	log        *logging.Logger
	eval       *evaluator.Evaluator
	limits     Limits
	statistics Statistics

	startTime time.Time
	stopFlag  bool
}

// NewSearch creates a new Search instance.
func NewSearch() *Search {
	return &Search{
		log:  log,
		eval: evaluator.NewEvaluator(),
	}
}

// FindBestMove runs the search on a copy of pos for the plies and
// time bound described by limits and returns the chosen move. The
// caller's pos is never mutated - DoMove/UndoMove calls made during
// the search are fully unwound before FindBestMove returns. Returns a
// NoLegalMoveError without searching if pos is already terminal.
func (s *Search) FindBestMove(pos position.Position, limits Limits) (Result, error) {
	if movegen.New().LegalMoves(&pos).Len() == 0 {
		return Result{}, chesserrors.NewNoLegalMoveError(pos.StringFen())
	}

	s.limits = limits
	s.statistics = Statistics{CurrentSearchDepth: limits.MaxDepth}
	s.stopFlag = false
	s.startTime = time.Now()

	bestMove, bestValue, pv := s.rootSearch(&pos, limits.MaxDepth)

	result := Result{
		BestMove:    bestMove,
		BestValue:   bestValue,
		SearchTime:  time.Since(s.startTime),
		SearchDepth: limits.MaxDepth,
		Pv:          pv,
	}

	log.Info(out.Sprintf("Search finished after %d ms, %s", result.SearchTime.Milliseconds(), s.statistics.String()))
	log.Infof("Search result: %s", result.String())

	return result, nil
}

// Statistics returns the counters collected by the most recent call
// to FindBestMove.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

// Stop requests that a running search return as soon as it next
// checks its stop condition, at the next node boundary.
func (s *Search) Stop() {
	s.stopFlag = true
}

// timeUp reports whether the search should stop: either Stop
// was called, or the soft wall clock ceiling has been exceeded.
func (s *Search) timeUp() bool {
	if s.stopFlag {
		return true
	}
	if s.limits.MaxTime > 0 && time.Since(s.startTime) >= s.limits.MaxTime {
		s.stopFlag = true
	}
	return s.stopFlag
}
