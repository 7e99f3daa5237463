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

import "time"

// Limits controls how deep and how long a single search may run.
// Unlike a UCI-driven engine there is no game clock, pondering or
// mate search here - just a ply bound and an optional soft wall
// clock ceiling checked at node boundaries.
type Limits struct {
	// MaxDepth is the number of plies to search. Must be > 0.
	MaxDepth int
	// MaxTime is a soft wall clock ceiling. Zero means no time bound -
	// the search always completes MaxDepth plies.
	MaxTime time.Duration
}

// NewLimits creates a Limits with the given depth and time bound.
func NewLimits(maxDepth int, maxTime time.Duration) Limits {
	return Limits{MaxDepth: maxDepth, MaxTime: maxTime}
}
