// square.go declares Square, Side, PieceKind and Piece, and the
// geometric attributes derived from a square index.

package chesscore

// Square is an index in 0..=63; square 0 is a1, square 63 is h8.
type Square int

// NoSquare marks the absence of a square, used for an unset en-passant
// target.
const NoSquare Square = -1

// File returns the file (0=a .. 7=h) of sq.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank (0=1st .. 7=8th) of sq.
func (sq Square) Rank() int { return int(sq) / 8 }

// Diagonal returns the a1-h8-parallel diagonal index (0..=14) of sq.
func (sq Square) Diagonal() int { return 7 + sq.File() - sq.Rank() }

// Antidiagonal returns the a8-h1-parallel diagonal index (0..=14) of sq.
func (sq Square) Antidiagonal() int { return 14 - sq.File() - sq.Rank() }

// BB returns the single-bit bitboard of sq.
func (sq Square) BB() BB { return 1 << uint(sq) }

// String renders sq in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{"abcdefgh"[sq.File()], "12345678"[sq.Rank()]})
}

// Named squares, used throughout the tests and the castling logic.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Side is one of the two players.
type Side int

const (
	White Side = iota
	Black
)

// Other returns the opposing side.
func (s Side) Other() Side { return s ^ 1 }

// String renders the side as its FEN letter.
func (s Side) String() string {
	if s == White {
		return "w"
	}
	return "b"
}

// PieceKind is a chess piece type, independent of side.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a (Side, PieceKind) pair, encoded 0..11: the six White pieces
// followed by the six Black pieces, in PieceKind order.
type Piece int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	// PieceNone marks the absence of a piece on a square. Board.PieceAt
	// returns it for an empty square rather than panicking.
	PieceNone Piece = -1
)

// NewPiece builds the Piece for the given side and kind.
func NewPiece(s Side, k PieceKind) Piece {
	return Piece(int(s)*6 + int(k))
}

// Side returns the side of p. p must not be PieceNone.
func (p Piece) Side() Side { return Side(p / 6) }

// Kind returns the piece kind of p. p must not be PieceNone.
func (p Piece) Kind() PieceKind { return PieceKind(p % 6) }

var pieceLetters = [12]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the FEN letter for p (uppercase White, lowercase Black).
func (p Piece) Letter() byte { return pieceLetters[p] }
