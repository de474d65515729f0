// bitboard.go implements the BB bit-set type and the primitive bit
// operations move generation is built on.

package chesscore

import "math/bits"

// BB is a 64-bit bit set over the 64 squares of a chessboard. Bit index
// 8*rank+file is set iff the corresponding square belongs to whatever the
// BB represents.
type BB uint64

// EmptyBB and FullBB are the all-zeros and all-ones bitboards.
const (
	EmptyBB BB = 0
	FullBB  BB = 0xFFFFFFFFFFFFFFFF
)

// Has reports whether sq is a member of b.
func (b BB) Has(sq Square) bool {
	return b&(1<<uint(sq)) != 0
}

// Set returns b with sq added.
func (b BB) Set(sq Square) BB {
	return b | (1 << uint(sq))
}

// Clear returns b with sq removed.
func (b BB) Clear(sq Square) BB {
	return b &^ (1 << uint(sq))
}

// Count returns the number of set bits in b.
func (b BB) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the square of the least significant set bit. The result is
// undefined if b is empty.
func (b BB) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the least significant bit's square and clears it from *b.
// Returns -1 if *b is empty.
func PopLSB(b *BB) Square {
	if *b == EmptyBB {
		return -1
	}
	sq := (*b).LSB()
	*b &= *b - 1
	return sq
}
