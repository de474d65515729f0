// fen.go implements the Forsyth-Edwards Notation codec: parsing and
// serializing the six space-separated fields of a FEN string.

package chesscore

import (
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string into a Board. It returns a *FENError
// describing the first field that failed to parse rather than panicking:
// FEN commonly comes from untrusted or hand-edited input, while a move
// produced by LegalMoves never is.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, fenErrorf("fen", fen, "expected 6 space-separated fields, got %d", len(fields))
	}

	b := NewBoard()
	b.WhiteKingside, b.WhiteQueenside = false, false
	b.BlackKingside, b.BlackQueenside = false, false

	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return Board{}, fenErrorf("active color", fields[1], "must be %q or %q", "w", "b")
	}

	if err := parseCastling(&b, fields[2]); err != nil {
		return Board{}, err
	}

	sq, err := parseEnPassant(fields[3])
	if err != nil {
		return Board{}, err
	}
	b.EnPassant = sq

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, fenErrorf("halfmove clock", fields[4], "must be a non-negative integer")
	}
	b.HalfmoveClock = uint32(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Board{}, fenErrorf("fullmove number", fields[5], "must be a positive integer")
	}
	b.FullmoveNumber = uint32(fullmove)

	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenErrorf("piece placement", placement, "expected 8 ranks, got %d", len(ranks))
	}

	// Ranks are listed 8th-to-1st; square indices run 1st-to-8th.
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceFromLetter(byte(c))
				if !ok {
					return fenErrorf("piece placement", placement, "unrecognized piece letter %q", c)
				}
				if file > 7 {
					return fenErrorf("piece placement", placement, "rank %d overflows 8 files", rank+1)
				}
				b.Pieces[piece] |= Square(rank*8 + file).BB()
				file++
			}
		}
		if file != 8 {
			return fenErrorf("piece placement", placement, "rank %d covers %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func pieceFromLetter(c byte) (Piece, bool) {
	for i, letter := range pieceLetters {
		if letter == c {
			return Piece(i), true
		}
	}
	return PieceNone, false
}

func parseCastling(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			b.WhiteKingside = true
		case 'Q':
			b.WhiteQueenside = true
		case 'k':
			b.BlackKingside = true
		case 'q':
			b.BlackQueenside = true
		default:
			return fenErrorf("castling rights", field, "unrecognized character %q", field[i])
		}
	}
	return nil
}

func parseEnPassant(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return NoSquare, fenErrorf("en passant target", field, "must be %q or a square like %q", "-", "e3")
	}
	file := int(field[0] - 'a')
	rank := int(field[1] - '1')
	return Square(rank*8 + file), nil
}

// String serializes b into a FEN string. The inverse of ParseFEN for
// every Board that ParseFEN can produce.
func (b Board) String() string {
	var out strings.Builder
	out.Grow(64)

	out.WriteString(serializePlacement(&b))
	out.WriteByte(' ')
	out.WriteString(b.SideToMove.String())
	out.WriteByte(' ')
	out.WriteString(serializeCastling(&b))
	out.WriteByte(' ')
	out.WriteString(b.EnPassant.String())
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(int(b.HalfmoveClock)))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(int(b.FullmoveNumber)))

	return out.String()
}

func serializePlacement(b *Board) string {
	var squares [64]Piece
	for i := range squares {
		squares[i] = PieceNone
	}
	for p, bb := range b.Pieces {
		for bb != EmptyBB {
			sq := PopLSB(&bb)
			squares[sq] = Piece(p)
		}
	}

	var out strings.Builder
	out.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := squares[rank*8+file]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte('0' + byte(empty))
				empty = 0
			}
			out.WriteByte(p.Letter())
		}
		if empty > 0 {
			out.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}

	return out.String()
}

func serializeCastling(b *Board) string {
	var out strings.Builder
	if b.WhiteKingside {
		out.WriteByte('K')
	}
	if b.WhiteQueenside {
		out.WriteByte('Q')
	}
	if b.BlackKingside {
		out.WriteByte('k')
	}
	if b.BlackQueenside {
		out.WriteByte('q')
	}
	if out.Len() == 0 {
		return "-"
	}
	return out.String()
}
