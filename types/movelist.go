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

package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gammazero/deque"
)

// MoveList is an ordered list of moves backed by a deque so that both
// the move generator (which appends) and search (which pops from the
// front in best-first order) are cheap.
type MoveList struct {
	deque.Deque
}

// NewMoveList creates a MoveList pre-sized for a typical position's
// branching factor.
func NewMoveList() *MoveList {
	ml := &MoveList{}
	ml.SetMinCapacity(6) // 2^6 = 64 slots, comfortably above the ~35 move average
	return ml
}

// PushBack appends a move to the end of the list.
func (ml *MoveList) PushBack(m Move) {
	ml.Deque.PushBack(m)
}

// PushFront prepends a move to the list.
func (ml *MoveList) PushFront(m Move) {
	ml.Deque.PushFront(m)
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return ml.Deque.At(i).(Move)
}

// Set replaces the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.Deque.Set(i, m)
}

// PopFront removes and returns the first move.
func (ml *MoveList) PopFront() Move {
	return ml.Deque.PopFront().(Move)
}

// PopBack removes and returns the last move.
func (ml *MoveList) PopBack() Move {
	return ml.Deque.PopBack().(Move)
}

// Clear empties the list, keeping its underlying buffer for reuse.
func (ml *MoveList) Clear() {
	ml.Deque.Clear()
}

// ForEach calls f once per index currently stored in the list, in
// front-to-back order.
func (ml *MoveList) ForEach(f func(index int)) {
	size := ml.Len()
	for i := 0; i < size; i++ {
		f(i)
	}
}

// ToSlice copies the list's contents into a plain []Move.
func (ml *MoveList) ToSlice() []Move {
	size := ml.Len()
	moves := make([]Move, size)
	for i := 0; i < size; i++ {
		moves[i] = ml.At(i)
	}
	return moves
}

// Sort orders the moves by MVV-LVA-ish heuristic score, descending,
// using the supplied scoring function - the list itself carries no
// opinion on move ordering.
func (ml *MoveList) Sort(score func(Move) int) {
	s := ml.ToSlice()
	sort.SliceStable(s, func(i, j int) bool {
		return score(s[i]) > score(s[j])
	})
	for i, m := range s {
		ml.Set(i, m)
	}
}

func (ml *MoveList) String() string {
	var os strings.Builder
	size := ml.Len()
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(ml.At(i).String())
	}
	os.WriteString(" }")
	return os.String()
}

// StringUci returns a space separated list of all moves in the list
// in UCI protocol format.
func (ml *MoveList) StringUci() string {
	var os strings.Builder
	size := ml.Len()
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(ml.At(i).StringUci())
	}
	return os.String()
}
