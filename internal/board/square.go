package board

import "fmt"

// Square represents a square on the chess board, packed as y*8+x
// (x = file 0..7 = a..h, y = rank 0..7 = 1..8). A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
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
	NoSquare Square = 64
)

// File returns the file (column) of the square, 0=a .. 7=h.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square, 0=rank1 .. 7=rank8.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// X is an alias for File, matching the (x, y) naming in the source spec.
func (sq Square) X() int { return sq.File() }

// Y is an alias for Rank, matching the (x, y) naming in the source spec.
func (sq Square) Y() int { return sq.Rank() }

// ToBitmap returns the bitboard with only this square set.
func (sq Square) ToBitmap() Bitboard {
	return SquareBB(sq)
}

// FromBitmap returns the index of the lowest set bit of bm.
func FromBitmap(bm Bitboard) Square {
	return bm.LSB()
}

// NewSquare packs a file and rank (0-indexed) into a Square.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// IsValid returns true if the square is a real board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the UCI coordinate for the square (e.g. "e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ToUCI is an explicit alias for String, matching spec naming.
func (sq Square) ToUCI() string {
	return sq.String()
}

// FromUCI parses algebraic notation (e.g. "e4") into a Square.
// Returns NoSquare and an error for malformed input.
func FromUCI(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("board: invalid UCI square %q", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("board: invalid UCI square %q", s)
	}

	return NewSquare(file, rank), nil
}
