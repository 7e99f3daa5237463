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

// Package chesserrors collects the error kinds the engine reports to its
// callers. Each kind is a distinct type so callers can tell them apart with
// errors.As instead of matching on message text.
package chesserrors

import "fmt"

// FenParseError reports a FEN string that could not be parsed: invalid
// characters, a board part that does not cover all 64 squares, or a
// malformed side-to-move, castling (including out-of-order letters),
// en passant or clock field. Missing trailing fields are not an error -
// they take default values - and the clock numbers are not range checked.
type FenParseError struct {
	Fen string
	Err error
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("invalid fen %q: %s", e.Fen, e.Err)
}

func (e *FenParseError) Unwrap() error { return e.Err }

// NewFenParseError wraps err as a FenParseError for the given fen string.
func NewFenParseError(fen string, err error) error {
	return &FenParseError{Fen: fen, Err: err}
}

// InvalidSquareError reports an algebraic square string outside a1-h8.
type InvalidSquareError struct {
	Square string
}

func (e *InvalidSquareError) Error() string {
	return fmt.Sprintf("invalid square %q", e.Square)
}

// NewInvalidSquareError builds an InvalidSquareError for the given text.
func NewInvalidSquareError(square string) error {
	return &InvalidSquareError{Square: square}
}

// InvalidMoveError reports a decoded move that does not correspond to any
// legal move in the current position.
type InvalidMoveError struct {
	MoveText string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q: no matching legal move", e.MoveText)
}

// NewInvalidMoveError builds an InvalidMoveError for the given move text.
func NewInvalidMoveError(moveText string) error {
	return &InvalidMoveError{MoveText: moveText}
}

// NoLegalMoveError reports that a move was requested for a position with no
// legal moves (checkmate or stalemate).
type NoLegalMoveError struct {
	Fen string
}

func (e *NoLegalMoveError) Error() string {
	return fmt.Sprintf("no legal move available in position %q", e.Fen)
}

// NewNoLegalMoveError builds a NoLegalMoveError for the given position.
func NewNoLegalMoveError(fen string) error {
	return &NoLegalMoveError{Fen: fen}
}

// LlmResponseError reports that the LLM collaborator's response could not be
// converted into a legal move after exhausting all retries.
type LlmResponseError struct {
	Fen      string
	Attempts int
	Err      error
}

func (e *LlmResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no valid move from llm after %d attempts for position %q: %s", e.Attempts, e.Fen, e.Err)
	}
	return fmt.Sprintf("no valid move from llm after %d attempts for position %q", e.Attempts, e.Fen)
}

func (e *LlmResponseError) Unwrap() error { return e.Err }

// NewLlmResponseError builds a LlmResponseError after attempts failed
// retries, optionally wrapping the last underlying error.
func NewLlmResponseError(fen string, attempts int, err error) error {
	return &LlmResponseError{Fen: fen, Attempts: attempts, Err: err}
}
