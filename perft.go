// perft.go implements the perft driver: a recursive leaf-node counter
// over the legal move tree, used to validate the move generator against
// known node counts.

package chesscore

import (
	"time"

	"go.uber.org/zap"
)

// Perft counts the leaf nodes of the legal move tree rooted at b, to the
// given depth. Perft(b, 0) is 1; Perft(b, 1) is the number of legal moves.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list FixedMoveList
	LegalMoves(b, &list)
	moves := list.Slice()

	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := *b
		child.MakeMove(m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// RootCount is the node count contributed by a single root move, as
// produced by PerftDivide.
type RootCount struct {
	Move  Move
	Nodes uint64
}

// PerftDivide runs perft at depth and additionally reports the
// contribution of each root move, the classic "perft divide" used to
// bisect a move generation bug down to the offending root move. log
// receives one debug-level entry per root move, then a debug-level
// summary with the depth, total nodes, duration and nodes per second;
// pass zap.NewNop() to silence it. The library does no I/O of its own; rendering the
// breakdown is left to the caller (e.g. cmd/chessperft).
func PerftDivide(b *Board, depth int, log *zap.Logger) (uint64, []RootCount) {
	if log == nil {
		log = zap.NewNop()
	}

	start := time.Now()

	var list FixedMoveList
	LegalMoves(b, &list)
	moves := list.Slice()

	counts := make([]RootCount, 0, len(moves))
	var total uint64

	for _, m := range moves {
		child := *b
		child.MakeMove(m)

		var nodes uint64
		if depth <= 1 {
			nodes = 1
		} else {
			nodes = Perft(&child, depth-1)
		}

		log.Debug("perft root move", zap.Stringer("move", m), zap.Uint64("nodes", nodes))
		counts = append(counts, RootCount{Move: m, Nodes: nodes})
		total += nodes
	}

	elapsed := time.Since(start)
	log.Debug("perft divide complete",
		zap.Int("depth", depth),
		zap.Uint64("nodes", total),
		zap.Duration("duration", elapsed),
		zap.Float64("nps", float64(total)/elapsed.Seconds()),
	)

	return total, counts
}
