// Command chessperft runs the perft driver against a FEN position and
// reports the node count (and, with -divide, the per-root breakdown). It
// is the only place in the repository that does file I/O, logging
// configuration, or profiling: the core library stays free of all three.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	chesscore "github.com/kassadian/chesscore"
	"go.uber.org/zap"
)

// initialPositionFEN is the standard chess starting position.
const initialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fen := flag.String("fen", initialPositionFEN, "FEN of the position to search from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "report the per-root-move node breakdown")
	workers := flag.Int("workers", 1, "number of goroutines to fan perft divide across (1 = sequential)")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	memprofile := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chessperft:", err)
		os.Exit(1)
	}
	defer log.Sync()

	board, err := chesscore.ParseFEN(*fen)
	if err != nil {
		log.Fatal("invalid FEN", zap.Error(err))
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile", zap.Error(err))
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()

	var nodes uint64
	if *divide {
		var counts []chesscore.RootCount
		if *workers > 1 {
			nodes, counts = perftDivideParallel(&board, *depth, *workers, log)
		} else {
			nodes, counts = chesscore.PerftDivide(&board, *depth, log)
		}
		for _, c := range counts {
			fmt.Printf("%s %d\n", c.Move, c.Nodes)
		}
		fmt.Println()
	} else {
		nodes = chesscore.Perft(&board, *depth)
	}

	elapsed := time.Since(start)
	fmt.Printf("Nodes searched: %d\n", nodes)
	log.Info("perft complete",
		zap.Int("depth", *depth),
		zap.Uint64("nodes", nodes),
		zap.Duration("elapsed", elapsed),
	)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile", zap.Error(err))
		}
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// perftDivideParallel fans the root moves of PerftDivide out across
// workers goroutines. The library's Board is plain-value and the
// precomputed tables are read-only after init, so concurrent perft over
// independent root positions needs no synchronization beyond collecting
// results.
func perftDivideParallel(board *chesscore.Board, depth, workers int, log *zap.Logger) (uint64, []chesscore.RootCount) {
	var list chesscore.MoveSlice
	chesscore.LegalMoves(board, &list)
	moves := list.Moves

	counts := make([]chesscore.RootCount, len(moves))

	jobs := make(chan int, len(moves))
	for i := range moves {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				child := *board
				child.MakeMove(moves[i])

				var nodes uint64
				if depth <= 1 {
					nodes = 1
				} else {
					nodes = chesscore.Perft(&child, depth-1)
				}
				counts[i] = chesscore.RootCount{Move: moves[i], Nodes: nodes}
			}
		}()
	}
	wg.Wait()

	var total uint64
	for _, c := range counts {
		log.Debug("perft root move", zap.Stringer("move", c.Move), zap.Uint64("nodes", c.Nodes))
		total += c.Nodes
	}
	return total, counts
}
