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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Deque(t *testing.T) {
	ml := NewMoveList()
	ml.PushBack(NewMove(SqG1, SqF3, Knight, White))
	ml.PushBack(NewMove(SqB8, SqC6, Knight, Black))
	ml.PushFront(NewPawnJump(SqE7, SqE5, Black))
	ml.PushFront(NewPawnJump(SqE2, SqE4, White))
	assert.Equal(t, 4, ml.Len())
	assert.Equal(t, "e2e4 e7e5 g1f3 b8c6", ml.StringUci())
}

func TestMoveList_ToSlice(t *testing.T) {
	ml := NewMoveList()
	ml.PushBack(NewMove(SqG1, SqF3, Knight, White))
	ml.PushBack(NewMove(SqB8, SqC6, Knight, Black))
	s := ml.ToSlice()
	assert.Len(t, s, 2)
	assert.Equal(t, SqG1, s[0].From())
	assert.Equal(t, SqB8, s[1].From())
}

func TestMoveList_Sort(t *testing.T) {
	ml := NewMoveList()
	ml.PushBack(NewMove(SqG1, SqF3, Knight, White))
	ml.PushBack(NewCapture(SqF3, SqE5, Knight, Pawn, White))
	ml.Sort(func(m Move) int {
		if m.IsCapture() {
			return 1
		}
		return 0
	})
	assert.True(t, ml.At(0).IsCapture())
}
