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

package movegen

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes of the full game tree up to a given
// depth, used to verify move generation correctness against known
// node counts for standard test positions.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop interrupts a perft run started in a goroutine.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// StartPerftMulti runs StartPerft for every depth from startDepth to
// endDepth. Can be interrupted with Stop() if run in a goroutine.
func (p *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	p.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if p.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		p.StartPerft(fen, i)
	}
}

// StartPerft runs a single-depth perft from fen and prints a report.
// Can be interrupted with Stop() if run in a goroutine.
func (p *Perft) StartPerft(fen string, depth int) {
	p.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	p.resetCounter()

	pos := position.NewFen(fen)
	generators := make([]Generator, depth+1)
	for i := range generators {
		generators[i] = New()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := p.miniMax(depth, &pos, generators)
	elapsed := time.Since(start)

	if result == 0 {
		out.Print("Perft stopped\n")
		return
	}
	p.Nodes = result

	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", (p.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", p.Nodes)
	out.Printf("   Captures  : %d\n", p.CaptureCounter)
	out.Printf("   EnPassant : %d\n", p.EnpassantCounter)
	out.Printf("   Checks    : %d\n", p.CheckCounter)
	out.Printf("   CheckMates: %d\n", p.CheckMateCounter)
	out.Printf("   Castles   : %d\n", p.CastleCounter)
	out.Printf("   Promotions: %d\n", p.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (p *Perft) miniMax(depth int, pos *position.Position, generators []Generator) uint64 {
	totalNodes := uint64(0)
	moves := generators[depth].GeneratePseudoLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		if p.stopFlag {
			return 0
		}
		move := moves.At(i)
		if depth > 1 {
			pos.DoMove(move)
			if pos.WasLegalMove() {
				totalNodes += p.miniMax(depth-1, pos, generators)
			}
			pos.UndoMove()
			continue
		}
		capture := pos.GetPiece(move.To()) != PieceNone
		enpassant := move.MoveType() == EnPassant
		castling := move.MoveType() == Castling
		promotion := move.MoveType() == Promotion
		pos.DoMove(move)
		if pos.WasLegalMove() {
			totalNodes++
			if enpassant {
				p.EnpassantCounter++
				p.CaptureCounter++
			}
			if capture {
				p.CaptureCounter++
			}
			if castling {
				p.CastleCounter++
			}
			if promotion {
				p.PromotionCounter++
			}
			if pos.HasCheck() {
				p.CheckCounter++
				if generators[0].LegalMoves(pos).Len() == 0 {
					p.CheckMateCounter++
				}
			}
		}
		pos.UndoMove()
	}
	return totalNodes
}

func (p *Perft) resetCounter() {
	p.Nodes = 0
	p.CheckCounter = 0
	p.CheckMateCounter = 0
	p.CaptureCounter = 0
	p.EnpassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}

// DivideResult is the node count contributed by a single root move in
// a "perft divide" run.
type DivideResult struct {
	Move  Move
	Nodes uint64
}

// Divide runs perft to the given depth, but reports the node count
// broken down by each root move instead of only the total - the
// standard way to bisect a move generator bug against a reference
// engine. Root moves are searched concurrently, bounded to GOMAXPROCS
// workers by a weighted semaphore.
func Divide(fen string, depth int) []DivideResult {
	if depth <= 0 {
		depth = 1
	}
	rootPos := position.NewFen(fen)
	rootGen := New()
	rootMoves := rootGen.LegalMoves(&rootPos)

	results := make([]DivideResult, rootMoves.Len())
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < rootMoves.Len(); i++ {
		move := rootMoves.At(i)
		idx := i
		_ = sem.Acquire(ctx, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			pos := position.NewFen(fen)
			pos.DoMove(move)
			var nodes uint64
			if depth > 1 {
				generators := make([]Generator, depth)
				for g := range generators {
					generators[g] = New()
				}
				var p Perft
				nodes = p.miniMax(depth-1, &pos, generators)
			} else {
				nodes = 1
			}
			results[idx] = DivideResult{Move: move, Nodes: nodes}
		}()
	}
	wg.Wait()
	return results
}
