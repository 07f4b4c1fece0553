package chess

import "fmt"

// A File is the file of a square.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return string(rune('a' + int(f)))
}

// A Rank is the rank of a square.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return string(rune('1' + int(r)))
}

// A Square is one of the 64 squares on a chess board, indexed rank*8+file
// so that ascending order walks a1, b1, ..., h1, a2, ..., h8.
type Square int8

// NoSquare represents the absence of a square.
const NoSquare Square = -1

const numOfSquaresInBoard = 64

// NewSquare creates a new Square from a File and a Rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// File returns the square's file.
func (sq Square) File() File {
	return File(sq % 8)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(sq / 8)
}

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < numOfSquaresInBoard
}

// String implements the fmt.Stringer interface and returns
// a string in the algebraic notation format (e.g. "e4").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// ParseSquare parses a square in algebraic form such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("chess: %w %q", ErrInvalidSquare, s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}

// offset returns the square df files and dr ranks away from sq, or
// NoSquare when that walks off the board.
func (sq Square) offset(df, dr int) Square {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return NewSquare(File(f), Rank(r))
}

// light reports whether sq is a light square (h1 is light).
func (sq Square) light() bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}

// frequently used squares
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
