// board.go defines Board, the mutable game state, and MakeMove, the
// board mutator.

package chesscore

// Board is the mutable state of a chess position. It is a plain value:
// freely copyable, with no identity or aliasing requirements.
type Board struct {
	// Pieces holds, for each of the 12 pieces, the bitboard of its
	// occupied squares. INVARIANT: pairwise disjoint.
	Pieces [12]BB

	SideToMove Side
	// EnPassant is the target square behind a pawn that just advanced
	// two squares, or NoSquare if there is none.
	EnPassant Square

	HalfmoveClock  uint32
	FullmoveNumber uint32

	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// NewBoard returns an empty board with White to move, move 1, no en
// passant target and all four castling rights set. It is the caller's
// responsibility (typically the FEN codec) to place pieces and correct
// the castling rights to match; an empty board with no kings is not
// rejected at construction time.
func NewBoard() Board {
	return Board{
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Occupied returns the union of all 12 piece bitboards.
func (b *Board) Occupied() BB {
	var occ BB
	for _, p := range b.Pieces {
		occ |= p
	}
	return occ
}

// Empty returns the complement of Occupied.
func (b *Board) Empty() BB { return ^b.Occupied() }

// PiecesOf returns the union of the six piece bitboards belonging to s.
func (b *Board) PiecesOf(s Side) BB {
	base := int(s) * 6
	return b.Pieces[base] | b.Pieces[base+1] | b.Pieces[base+2] |
		b.Pieces[base+3] | b.Pieces[base+4] | b.Pieces[base+5]
}

// King returns the square of s's king. Behavior is undefined if s has no
// king on the board; every reachable position has exactly one king of
// each color.
func (b *Board) King(s Side) Square {
	return b.Pieces[NewPiece(s, King)].LSB()
}

// PieceAt returns the piece standing on sq, or PieceNone if the square is
// empty.
func (b *Board) PieceAt(sq Square) Piece {
	mask := sq.BB()
	for i, bb := range b.Pieces {
		if bb&mask != 0 {
			return Piece(i)
		}
	}
	return PieceNone
}

// clearSquare clears sq across all 12 piece bitboards.
func (b *Board) clearSquare(sq Square) {
	mask := ^sq.BB()
	for i := range b.Pieces {
		b.Pieces[i] &= mask
	}
}

// placeSquare clears sq, then sets it in p's bitboard.
func (b *Board) placeSquare(p Piece, sq Square) {
	b.clearSquare(sq)
	b.Pieces[p] |= sq.BB()
}

// relocateRook moves the rook standing at from to an empty square to,
// used for the rook leg of a castling move.
func (b *Board) relocateRook(from, to Square) {
	rook := b.PieceAt(from)
	b.clearSquare(from)
	b.placeSquare(rook, to)
}

// MakeMove applies m to b in place, updating piece placement, castling
// rights, the en-passant target, the move clocks and the side to move.
// It is the caller's responsibility to pass a legal move; the move
// generator never produces anything else. A missing piece at m.From is a
// programmer error and panics.
func (b *Board) MakeMove(m Move) {
	// 1. Look up the moving piece.
	moving := b.PieceAt(m.From)
	if moving == PieceNone {
		invariantViolation("MakeMove: no piece at %s", m.From)
	}

	// 2. Halfmove clock: reset on capture or pawn move, else increment.
	if m.Flag.IsCapture() || moving.Kind() == Pawn {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	// 3. Place the moving piece, unless this is a promotion (handled below).
	if !m.Flag.IsPromotion() {
		b.placeSquare(moving, m.To)
	}

	// 4. Castling additionally relocates the rook.
	switch m.Flag {
	case KingCastle:
		if b.SideToMove == White {
			b.relocateRook(H1, F1)
		} else {
			b.relocateRook(H8, F8)
		}
	case QueenCastle:
		if b.SideToMove == White {
			b.relocateRook(A1, D1)
		} else {
			b.relocateRook(A8, D8)
		}
	}

	// 5. Pawn double push sets the en-passant target unconditionally, even
	// if no enemy pawn stands beside it to capture; every other move clears
	// it.
	if m.Flag == PawnDoubleMove {
		b.EnPassant = (m.From + m.To) / 2
	} else {
		b.EnPassant = NoSquare
	}

	// 6. En-passant capture removes the opponent pawn behind the target.
	if m.Flag == EnPassant {
		captured := Square(m.From.Rank()*8 + m.To.File())
		b.clearSquare(captured)
	}

	// 7. Promotion places the promoted piece (also handles capture-promotions:
	// placeSquare clears whatever occupied m.To first).
	if m.Flag.IsPromotion() {
		b.placeSquare(NewPiece(b.SideToMove, m.Flag.promotionKind()), m.To)
	}

	// 8. Fullmove counter increments when the mover (before the flip) was
	// White, not after Black's move as the usual FEN convention would
	// suggest.
	if b.SideToMove == White {
		b.FullmoveNumber++
	}

	// 9. Flip the side to move.
	b.SideToMove = b.SideToMove.Other()

	// 10. Clear the origin square across all piece boards.
	b.clearSquare(m.From)

	// 11. Update castling rights.
	b.updateCastlingRights(m)
}

func (b *Board) updateCastlingRights(m Move) {
	switch m.From {
	case E1:
		b.WhiteKingside, b.WhiteQueenside = false, false
	case E8:
		b.BlackKingside, b.BlackQueenside = false, false
	}
	if m.From == A1 || m.To == A1 {
		b.WhiteQueenside = false
	}
	if m.From == H1 || m.To == H1 {
		b.WhiteKingside = false
	}
	if m.From == A8 || m.To == A8 {
		b.BlackQueenside = false
	}
	if m.From == H8 || m.To == H8 {
		b.BlackKingside = false
	}
}
