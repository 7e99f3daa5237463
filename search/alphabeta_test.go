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
	"time"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"

	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

func TestKRvKFindsAValidMove(t *testing.T) {
	s := NewSearch()
	p := position.NewFen("8/8/8/8/8/3K4/R7/5k2 w - - 0 1")
	result, err := s.FindBestMove(p, NewLimits(3, 0))
	assert.NoError(t, err)
	assert.True(t, result.BestMove.IsValid())
	assert.True(t, result.BestValue >= 0)
}

func TestMateInOne(t *testing.T) {
	s := NewSearch()
	p := position.NewFen("6k1/R7/6K1/8/8/8/8/8 w - - 0 1")
	result, err := s.FindBestMove(p, NewLimits(2, 0))
	assert.NoError(t, err)
	assert.True(t, result.BestValue.IsCheckMateValue())
	assert.True(t, result.BestValue > 0)
}

func TestFindBestMove_CapturesUndefendedQueen(t *testing.T) {
	s := NewSearch()
	// white queen on d1 can capture the black queen on d8 along the open
	// d-file; the black king on a8 is too far to recapture.
	p := position.NewFen("k2q4/8/8/8/8/8/8/3QK3 w - - 0 1")
	result, err := s.FindBestMove(p, NewLimits(1, 0))
	assert.NoError(t, err)
	assert.Equal(t, "d1d8", result.BestMove.StringUci())
}

func TestStartPosDoesNotPanic(t *testing.T) {
	s := NewSearch()
	p := position.New()
	result, err := s.FindBestMove(p, NewLimits(2, 0))
	assert.NoError(t, err)
	assert.True(t, result.BestMove.IsValid())
}

func TestFindBestMove_RespectsTimeLimit(t *testing.T) {
	s := NewSearch()
	p := position.New()
	start := time.Now()
	_, err := s.FindBestMove(p, NewLimits(6, 200*time.Millisecond))
	assert.NoError(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func Test_TimingFindBestMove(t *testing.T) {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath("../bin")).Stop()
	s := NewSearch()
	p := position.NewFen("r1b1k2r/pppp1ppp/2n2n2/1Bb1p2q/4P3/2NP1N2/1PP2PPP/R1BQK2R w KQkq - 0 1")
	result, _ := s.FindBestMove(p, NewLimits(4, 0))
	out.Printf("Search took %s, %s\n", result.SearchTime, s.Statistics().String())
}
