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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FR97/chess-rot/position"
)

func TestNewSearch(t *testing.T) {
	s := NewSearch()
	assert.NotNil(t, s.eval)
}

func TestFindBestMove_StartPosition(t *testing.T) {
	s := NewSearch()
	p := position.New()
	result, err := s.FindBestMove(p, NewLimits(2, 0))
	assert.NoError(t, err)
	assert.True(t, result.BestMove.IsValid())
	assert.EqualValues(t, 2, result.SearchDepth)
}

func TestFindBestMove_DoesNotMutateCaller(t *testing.T) {
	s := NewSearch()
	p := position.New()
	before := p.StringFen()
	_, err := s.FindBestMove(p, NewLimits(2, 0))
	assert.NoError(t, err)
	assert.Equal(t, before, p.StringFen())
}

func TestFindBestMove_NoLegalMoveReturnsError(t *testing.T) {
	s := NewSearch()
	// Classic stalemate: Black king a8 has no legal move and is not in check.
	p := position.NewFen("k7/8/KQ6/8/8/8/8/8 b - - 0 1")
	_, err := s.FindBestMove(p, NewLimits(2, 0))
	assert.Error(t, err)
}

func TestStatistics_AfterSearch(t *testing.T) {
	s := NewSearch()
	p := position.New()
	_, err := s.FindBestMove(p, NewLimits(2, 0))
	assert.NoError(t, err)
	stats := s.Statistics()
	assert.Greater(t, stats.NodesVisited, int64(0))
	assert.Greater(t, stats.LeafPositionsEvaluated, int64(0))
}
