// movelist.go implements the polymorphic move container: a single
// "append one move" capability, satisfied by both a growable slice and a
// fixed-capacity, stack-allocatable buffer.

package chesscore

// MoveAppender is the minimal capability the move generator needs from a
// move container.
type MoveAppender interface {
	Append(m Move)
}

// MoveSlice is a heap-growable MoveAppender backed by a slice.
type MoveSlice struct {
	Moves []Move
}

// Append adds m to the end of the slice.
func (l *MoveSlice) Append(m Move) { l.Moves = append(l.Moves, m) }

// maxLegalMoves is an upper bound on legal moves in any reachable chess
// position (the published maximum is 218; see
// https://www.talkchess.com/forum/viewtopic.php?t=61792), rounded up.
const maxLegalMoves = 256

// FixedMoveList is a fixed-capacity MoveAppender with no heap traffic.
// Using one per perft stack frame avoids allocating a move buffer at
// every node of the recursion.
type FixedMoveList struct {
	Moves [maxLegalMoves]Move
	Len   int
}

// Append adds m to the list. It panics if the list is already at
// capacity. LegalMoves never produces more than maxLegalMoves moves from
// a single position, so this indicates a caller bug, not a chess
// position the generator failed to bound.
func (l *FixedMoveList) Append(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the moves appended so far.
func (l *FixedMoveList) Slice() []Move { return l.Moves[:l.Len] }
