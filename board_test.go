package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardPiecesDisjoint(t *testing.T) {
	board, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var seen BB
	for _, bb := range board.Pieces {
		require.Zero(t, seen&bb, "piece bitboards must be pairwise disjoint")
		seen |= bb
	}
}

func TestMakeMoveQuiet(t *testing.T) {
	board, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	board.MakeMove(NewMove(E2, E4, PawnDoubleMove))

	require.Equal(t, Black, board.SideToMove)
	require.Equal(t, E3, board.EnPassant)
	require.True(t, board.Pieces[WhitePawn].Has(E4))
	require.False(t, board.Pieces[WhitePawn].Has(E2))
	require.EqualValues(t, 2, board.FullmoveNumber)

	board.MakeMove(NewMove(G8, F6, Quiet))
	require.Equal(t, White, board.SideToMove)
	require.Equal(t, NoSquare, board.EnPassant)
	require.EqualValues(t, 2, board.FullmoveNumber)
}

func TestMakeMoveCastlingRelocatesRook(t *testing.T) {
	board, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	board.MakeMove(NewMove(E1, G1, KingCastle))

	require.True(t, board.Pieces[WhiteKing].Has(G1))
	require.True(t, board.Pieces[WhiteRook].Has(F1))
	require.False(t, board.Pieces[WhiteRook].Has(H1))
	require.False(t, board.WhiteKingside)
	require.False(t, board.WhiteQueenside)
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	board, err := ParseFEN("8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1")
	require.NoError(t, err)

	board.MakeMove(NewMove(C4, D3, EnPassant))

	require.False(t, board.Pieces[WhitePawn].Has(D4))
	require.True(t, board.Pieces[BlackPawn].Has(D3))
}

func TestMakeMovePromotion(t *testing.T) {
	board, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	board.MakeMove(NewMove(A7, A8, QueenPromotion))

	require.True(t, board.Pieces[WhiteQueen].Has(A8))
	require.False(t, board.Pieces[WhitePawn].Has(A7))
}

func TestMakeMoveFullmoveAnomaly(t *testing.T) {
	// The fullmove counter increments when the mover (before the side-to-move
	// flip) was White, not on Black's move as the usual FEN convention
	// would suggest.
	board, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 5")
	require.NoError(t, err)

	board.MakeMove(NewMove(E7, E5, PawnDoubleMove))
	require.EqualValues(t, 5, board.FullmoveNumber)

	board.MakeMove(NewMove(G1, F3, Quiet))
	require.EqualValues(t, 6, board.FullmoveNumber)
}

func TestUpdateCastlingRightsOnRookCapture(t *testing.T) {
	board, err := ParseFEN("r3k2r/8/8/8/8/8/7N/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	board.MakeMove(NewMove(H2, H8, Quiet)) // Pretend a piece lands on h8.
	require.False(t, board.BlackKingside)
	require.True(t, board.BlackQueenside)
}
