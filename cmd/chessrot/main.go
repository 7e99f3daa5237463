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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/FR97/chess-rot/config"
	"github.com/FR97/chess-rot/logging"
	"github.com/FR97/chess-rot/movegen"
	"github.com/FR97/chess-rot/position"
	"github.com/FR97/chess-rot/search"
)

// Version is the engine's release string.
const Version = "1.0.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Bool("perft", false, "runs perft from -fen to -depth and exits")
	depth := flag.Int("depth", 5, "perft depth")
	fen := flag.String("fen", position.StartFen, "fen of the position to use")
	parallel := flag.Bool("parallel", false, "runs perft as a parallel divide over root moves")
	searchDepth := flag.Int("searchdepth", 0, "plies to search from -fen and print the best move")
	searchTime := flag.Float64("searchtime", 0, "soft search time cap in seconds")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.SetupFromFile(*configFile)
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *perft {
		runPerft(*fen, *depth, *parallel)
		return
	}

	if *searchDepth > 0 {
		runSearch(*fen, *searchDepth, *searchTime)
		return
	}

	flag.Usage()
}

func runPerft(fen string, depth int, parallel bool) {
	if parallel {
		start := time.Now()
		results := movegen.Divide(fen, depth)
		var total uint64
		for _, r := range results {
			out.Printf("%-6s: %d\n", r.Move.StringUci(), r.Nodes)
			total += r.Nodes
		}
		out.Printf("Nodes: %d in %s\n", total, time.Since(start))
		return
	}

	var p movegen.Perft
	p.StartPerft(fen, depth)
}

func runSearch(fen string, depth int, seconds float64) {
	pos := position.NewFen(fen)
	s := search.NewSearch()
	limits := search.NewLimits(depth, time.Duration(seconds*float64(time.Second)))
	result, err := s.FindBestMove(pos, limits)
	if err != nil {
		out.Println(err)
		return
	}
	out.Println(result.String())
}

func printVersionInfo() {
	out.Printf("chess-rot %s\n", Version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
	fmt.Println()
}
