// movegen.go implements the legal move generator: pseudo-legal generation
// from the precomputed tables, filtered for legality via the pin-mask
// optimization.

package chesscore

// LegalMoves appends every legal move of board.SideToMove to out.
func LegalMoves(board *Board, out MoveAppender) {
	pinned := pinnedMask(board)
	stm := board.SideToMove

	pawnPushes(board, out, pinned)
	pawnPromotionPushes(board, out, pinned)
	pawnDoublePushes(board, out, pinned)
	pawnCaptures(board, out, pinned)
	pawnEnPassant(board, out)
	castleMoves(board, out)

	leaperMoves(board, out, pinned, board.Pieces[NewPiece(stm, Knight)], &KnightAttacks)
	leaperMoves(board, out, pinned, board.Pieces[NewPiece(stm, King)], &KingAttacks)
	sliderMoves(board, out, pinned, board.Pieces[NewPiece(stm, Bishop)], &BishopAttacks)
	sliderMoves(board, out, pinned, board.Pieces[NewPiece(stm, Rook)], &RookAttacks)
	sliderMoves(board, out, pinned, board.Pieces[NewPiece(stm, Queen)], &QueenAttacks)
}

// IsInCheck reports whether s's king is currently attacked.
func IsInCheck(board *Board, s Side) bool {
	return isSquareThreatened(board, board.King(s), s)
}

// acceptIfLegal appends m unless it originates from a pinned square and
// exposes the mover's king.
func acceptIfLegal(board *Board, out MoveAppender, pinned BB, m Move) {
	if pinned&m.From.BB() == EmptyBB || !movePutsSelfInCheck(board, m) {
		out.Append(m)
	}
}

// movePutsSelfInCheck clones board, applies m, and reports whether the
// mover's king is attacked afterwards.
func movePutsSelfInCheck(board *Board, m Move) bool {
	mover := board.SideToMove
	next := *board
	next.MakeMove(m)
	return IsInCheck(&next, mover)
}

func leaperMoves(board *Board, out MoveAppender, pinned BB, pieces BB, attacks *[64]BB) {
	friendly := board.PiecesOf(board.SideToMove)
	enemy := board.PiecesOf(board.SideToMove.Other())

	for pieces != EmptyBB {
		from := PopLSB(&pieces)
		targets := attacks[from] &^ friendly
		for targets != EmptyBB {
			to := PopLSB(&targets)
			flag := Quiet
			if enemy.Has(to) {
				flag = Capture
			}
			acceptIfLegal(board, out, pinned, NewMove(from, to, flag))
		}
	}
}

func sliderMoves(board *Board, out MoveAppender, pinned BB, pieces BB, attacks *[64]BB) {
	friendly := board.PiecesOf(board.SideToMove)
	enemy := board.PiecesOf(board.SideToMove.Other())
	occ := board.Occupied()

	for pieces != EmptyBB {
		from := PopLSB(&pieces)
		targets := attacks[from] &^ friendly
		for targets != EmptyBB {
			to := PopLSB(&targets)
			if InBetween[from][to]&occ != EmptyBB {
				continue
			}
			flag := Quiet
			if enemy.Has(to) {
				flag = Capture
			}
			acceptIfLegal(board, out, pinned, NewMove(from, to, flag))
		}
	}
}

func pawnPushes(board *Board, out MoveAppender, pinned BB) {
	pawns := board.Pieces[NewPiece(board.SideToMove, Pawn)]
	var targets BB
	var forward int

	if board.SideToMove == White {
		forward = 8
		targets = (pawns << 8) & board.Empty()
	} else {
		forward = -8
		targets = (pawns >> 8) & board.Empty()
	}
	targets &^= RankBB[0] | RankBB[7]

	for targets != EmptyBB {
		to := PopLSB(&targets)
		from := Square(int(to) - forward)
		acceptIfLegal(board, out, pinned, NewMove(from, to, Quiet))
	}
}

func pawnPromotionPushes(board *Board, out MoveAppender, pinned BB) {
	pawns := board.Pieces[NewPiece(board.SideToMove, Pawn)]
	var targets BB
	var forward int

	if board.SideToMove == White {
		forward = 8
		targets = (pawns << 8) & board.Empty()
	} else {
		forward = -8
		targets = (pawns >> 8) & board.Empty()
	}
	targets &= RankBB[0] | RankBB[7]

	for targets != EmptyBB {
		to := PopLSB(&targets)
		from := Square(int(to) - forward)
		emitPromotions(board, out, pinned, from, to, KnightPromotion)
	}
}

func pawnDoublePushes(board *Board, out MoveAppender, pinned BB) {
	var targets BB
	var forward int

	if board.SideToMove == White {
		forward = 16
		targets = board.Pieces[WhitePawn] & RankBB[1]
		targets = (targets << 8) & board.Empty()
		targets = (targets << 8) & board.Empty()
	} else {
		forward = -16
		targets = board.Pieces[BlackPawn] & RankBB[6]
		targets = (targets >> 8) & board.Empty()
		targets = (targets >> 8) & board.Empty()
	}

	for targets != EmptyBB {
		to := PopLSB(&targets)
		from := Square(int(to) - forward)
		acceptIfLegal(board, out, pinned, NewMove(from, to, PawnDoubleMove))
	}
}

// emitPromotions tests legality of the base promotion flag only; since
// legality of a promotion depends only on from/to, not on the promoted
// kind, the other three flags (base+1..base+3) are emitted unconditionally
// once base is accepted. base must be KnightPromotion or
// KnightPromotionCapture.
func emitPromotions(board *Board, out MoveAppender, pinned BB, from, to Square, base MoveFlag) {
	m := NewMove(from, to, base)
	if pinned&from.BB() != EmptyBB && movePutsSelfInCheck(board, m) {
		return
	}
	out.Append(m)
	out.Append(NewMove(from, to, base+1))
	out.Append(NewMove(from, to, base+2))
	out.Append(NewMove(from, to, base+3))
}

func pawnCaptures(board *Board, out MoveAppender, pinned BB) {
	pawns := board.Pieces[NewPiece(board.SideToMove, Pawn)]
	enemy := board.PiecesOf(board.SideToMove.Other())

	var forwardLeft, forwardRight int
	var left, right BB

	if board.SideToMove == White {
		forwardLeft, forwardRight = 7, 9
		left = (pawns &^ FileBB[0]) << 7 & enemy
		right = (pawns &^ FileBB[7]) << 9 & enemy
	} else {
		forwardLeft, forwardRight = -9, -7
		left = (pawns &^ FileBB[0]) >> 9 & enemy
		right = (pawns &^ FileBB[7]) >> 7 & enemy
	}

	processPawnCaptures(board, out, pinned, left, forwardLeft)
	processPawnCaptures(board, out, pinned, right, forwardRight)
}

func processPawnCaptures(board *Board, out MoveAppender, pinned BB, targets BB, forward int) {
	for targets != EmptyBB {
		to := PopLSB(&targets)
		from := Square(int(to) - forward)

		if to.Rank() == 0 || to.Rank() == 7 {
			emitPromotions(board, out, pinned, from, to, KnightPromotionCapture)
			continue
		}
		acceptIfLegal(board, out, pinned, NewMove(from, to, Capture))
	}
}

func pawnEnPassant(board *Board, out MoveAppender) {
	if board.EnPassant == NoSquare {
		return
	}

	attackers := PawnAttacks[board.SideToMove.Other()][board.EnPassant] &
		board.Pieces[NewPiece(board.SideToMove, Pawn)]

	for attackers != EmptyBB {
		from := PopLSB(&attackers)
		m := NewMove(from, board.EnPassant, EnPassant)
		// En-passant must always be legality-checked: our pawn and the
		// captured pawn both vacate the same rank, so a discovered attack
		// is possible even from an unpinned square.
		if !movePutsSelfInCheck(board, m) {
			out.Append(m)
		}
	}
}

func castleMoves(board *Board, out MoveAppender) {
	occ := board.Occupied()
	stm := board.SideToMove

	try := func(right bool, kingFrom, rookSq, transit, dest Square, flag MoveFlag) {
		if !right {
			return
		}
		if InBetween[kingFrom][rookSq]&occ != EmptyBB {
			return
		}
		if isSquareThreatened(board, kingFrom, stm) ||
			isSquareThreatened(board, transit, stm) ||
			isSquareThreatened(board, dest, stm) {
			return
		}
		out.Append(NewMove(kingFrom, dest, flag))
	}

	if stm == White {
		try(board.WhiteKingside, E1, H1, F1, G1, KingCastle)
		try(board.WhiteQueenside, E1, A1, D1, C1, QueenCastle)
	} else {
		try(board.BlackKingside, E8, H8, F8, G8, KingCastle)
		try(board.BlackQueenside, E8, A8, D8, C8, QueenCastle)
	}
}

// isSquareThreatened reports whether any piece of side.Other() attacks
// sq. side is the defender; checks run knights, pawns, king, then the
// sliders, short-circuiting on the first hit.
func isSquareThreatened(board *Board, sq Square, side Side) bool {
	enemy := side.Other()

	if KnightAttacks[sq]&board.Pieces[NewPiece(enemy, Knight)] != EmptyBB {
		return true
	}
	if PawnAttacks[side][sq]&board.Pieces[NewPiece(enemy, Pawn)] != EmptyBB {
		return true
	}
	if KingAttacks[sq]&board.Pieces[NewPiece(enemy, King)] != EmptyBB {
		return true
	}

	occ := board.Occupied()

	queens := QueenAttacks[sq] & board.Pieces[NewPiece(enemy, Queen)]
	for queens != EmptyBB {
		from := PopLSB(&queens)
		if InBetween[from][sq]&occ == EmptyBB {
			return true
		}
	}

	bishops := BishopAttacks[sq] & board.Pieces[NewPiece(enemy, Bishop)]
	for bishops != EmptyBB {
		from := PopLSB(&bishops)
		if InBetween[from][sq]&occ == EmptyBB {
			return true
		}
	}

	rooks := RookAttacks[sq] & board.Pieces[NewPiece(enemy, Rook)]
	for rooks != EmptyBB {
		from := PopLSB(&rooks)
		if InBetween[from][sq]&occ == EmptyBB {
			return true
		}
	}

	return false
}

// pinnedMask returns the set of squares from which a move must be
// legality-verified: every square, if the side to move is in check;
// otherwise, on each line through the king (diagonal, antidiagonal, rank,
// file) that holds an enemy slider moving along that kind of line, each of
// our pieces with nothing between it and the king (a potential pin), plus
// the king's own square (king moves always need verification).
func pinnedMask(board *Board) BB {
	stm := board.SideToMove
	king := board.King(stm)

	if IsInCheck(board, stm) {
		return FullBB
	}

	occ := board.Occupied()
	ours := board.PiecesOf(stm)
	enemy := stm.Other()

	enemyQueen := board.Pieces[NewPiece(enemy, Queen)]
	enemyBishop := board.Pieces[NewPiece(enemy, Bishop)]
	enemyRook := board.Pieces[NewPiece(enemy, Rook)]
	queenRook := enemyQueen | enemyRook
	queenBishop := enemyQueen | enemyBishop

	scan := func(candidates BB) BB {
		var pinned BB
		for candidates != EmptyBB {
			sq := PopLSB(&candidates)
			if InBetween[king][sq]&occ == EmptyBB {
				pinned |= sq.BB()
			}
		}
		return pinned
	}

	var pinned BB
	if DiagonalBB[king.Diagonal()]&queenBishop != EmptyBB {
		pinned |= scan(DiagonalBB[king.Diagonal()] & ours)
	}
	if AntidiagonalBB[king.Antidiagonal()]&queenBishop != EmptyBB {
		pinned |= scan(AntidiagonalBB[king.Antidiagonal()] & ours)
	}
	if RankBB[king.Rank()]&queenRook != EmptyBB {
		pinned |= scan(RankBB[king.Rank()] & ours)
	}
	if FileBB[king.File()]&queenRook != EmptyBB {
		pinned |= scan(FileBB[king.File()] & ours)
	}

	pinned |= king.BB()
	return pinned
}
