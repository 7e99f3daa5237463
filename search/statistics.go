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

// Statistics carries counters about a finished or running search.
// Not essential for the search itself - useful for tests and for
// reporting to a caller.
type Statistics struct {
	NodesVisited            int64
	LeafPositionsEvaluated  int64
	Checkmates              int64
	Stalemates              int64
	BetaCuts                int64
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int
}

func (st *Statistics) String() string {
	return out.Sprintf("nodes visited = %d, leaf evaluations = %d, checkmates = %d, stalemates = %d, beta cuts = %d, depth = %d",
		st.NodesVisited, st.LeafPositionsEvaluated, st.Checkmates, st.Stalemates, st.BetaCuts, st.CurrentSearchDepth)
}
