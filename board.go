package chess

import (
	"fmt"
	"strings"
)

// Side names the wing a king castles towards.
type Side uint8

const (
	// NoSide is used for moves that are not castles.
	NoSide Side = iota
	// KingSide is castling towards the h-file.
	KingSide
	// QueenSide is castling towards the a-file.
	QueenSide
)

func (s Side) String() string {
	switch s {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	}
	return ""
}

// CastleRights holds the four independent castling flags.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastleRights  CastleRights = 0
	AllCastleRights              = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

func castleFlag(c Color, side Side) CastleRights {
	switch {
	case c == White && side == KingSide:
		return WhiteKingSide
	case c == White && side == QueenSide:
		return WhiteQueenSide
	case c == Black && side == KingSide:
		return BlackKingSide
	case c == Black && side == QueenSide:
		return BlackQueenSide
	}
	return NoCastleRights
}

// CanCastle returns true if the given color and side combination
// can still castle.
func (cr CastleRights) CanCastle(c Color, side Side) bool {
	f := castleFlag(c, side)
	return f != NoCastleRights && cr&f != 0
}

// String implements the fmt.Stringer interface and returns
// a FEN compatible string, e.g. "KQkq" or "-".
func (cr CastleRights) String() string {
	var sb strings.Builder
	if cr&WhiteKingSide != 0 {
		sb.WriteByte('K')
	}
	if cr&WhiteQueenSide != 0 {
		sb.WriteByte('Q')
	}
	if cr&BlackKingSide != 0 {
		sb.WriteByte('k')
	}
	if cr&BlackQueenSide != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// A Board is a complete chess position: piece placement, side to move,
// castling rights, en passant target and the two move clocks.
//
// Boards are values. Nothing mutates a Board once it has been built; Apply
// returns a new one, which lets a Game keep its history as a plain slice.
type Board struct {
	squares    [numOfSquaresInBoard]Piece
	turn       Color
	castling   CastleRights
	enPassant  Square
	halfMoves  int
	moveNumber int
	kings      [2]Square
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial position.
func StartingBoard() Board {
	b := emptyBoard()
	for f := FileA; f <= FileH; f++ {
		b.put(NewSquare(f, Rank1), Piece{Type: backRank[f], Color: White})
		b.put(NewSquare(f, Rank2), Piece{Type: Pawn, Color: White})
		b.put(NewSquare(f, Rank7), Piece{Type: Pawn, Color: Black})
		b.put(NewSquare(f, Rank8), Piece{Type: backRank[f], Color: Black})
	}
	b.turn = White
	b.castling = AllCastleRights
	return b
}

func emptyBoard() Board {
	return Board{
		turn:       White,
		enPassant:  NoSquare,
		moveNumber: 1,
		kings:      [2]Square{NoSquare, NoSquare},
	}
}

// put places p on sq and keeps the king cache current.
func (b *Board) put(sq Square, p Piece) {
	b.squares[sq] = p
	if p.Type == King {
		b.kings[p.Color.index()] = sq
	}
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return NoPiece, false
	}
	p := b.squares[sq]
	return p, !p.Empty()
}

// Squares returns every occupied square mapped to its piece.
func (b Board) Squares() map[Square]Piece {
	m := make(map[Square]Piece, 32)
	for sq, p := range b.squares {
		if !p.Empty() {
			m[Square(sq)] = p
		}
	}
	return m
}

// Turn returns the color to move.
func (b Board) Turn() Color { return b.turn }

// CastleRights returns the remaining castling rights.
func (b Board) CastleRights() CastleRights { return b.castling }

// EnPassantSquare returns the square a pawn skipped on the previous
// double step, or NoSquare.
func (b Board) EnPassantSquare() Square { return b.enPassant }

// HalfMoveClock returns the number of half moves since the last capture
// or pawn move.
func (b Board) HalfMoveClock() int { return b.halfMoves }

// MoveNumber returns the full move number. It starts at 1 and is
// incremented after Black moves.
func (b Board) MoveNumber() int { return b.moveNumber }

// KingSquare returns the square of c's king.
func (b Board) KingSquare(c Color) Square {
	return b.kings[c.index()]
}

// InCheck reports whether the side to move is in check.
func (b Board) InCheck() bool {
	return b.kingAttacked(b.turn)
}

func (b Board) kingAttacked(c Color) bool {
	k := b.KingSquare(c)
	if k == NoSquare {
		return false
	}
	return b.IsSquareAttacked(k, c.Other())
}

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookDirs      = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenDirs     = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// pawnDir is the rank step of c's pawns.
func pawnDir(c Color) int {
	if c == Black {
		return -1
	}
	return 1
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
// Pieces pinned to their own king still attack; this is the raw
// primitive the legality filter is built on.
func (b Board) IsSquareAttacked(sq Square, by Color) bool {
	// a pawn attacks diagonally forward, so look one rank behind sq
	// from the attacker's point of view
	for _, df := range [2]int{-1, 1} {
		from := sq.offset(df, -pawnDir(by))
		if from != NoSquare && b.squares[from] == (Piece{Type: Pawn, Color: by}) {
			return true
		}
	}
	for _, o := range knightOffsets {
		from := sq.offset(o[0], o[1])
		if from != NoSquare && b.squares[from] == (Piece{Type: Knight, Color: by}) {
			return true
		}
	}
	for _, o := range kingOffsets {
		from := sq.offset(o[0], o[1])
		if from != NoSquare && b.squares[from] == (Piece{Type: King, Color: by}) {
			return true
		}
	}
	if b.slidingAttack(sq, by, rookDirs[:], Rook) {
		return true
	}
	return b.slidingAttack(sq, by, bishopDirs[:], Bishop)
}

func (b Board) slidingAttack(sq Square, by Color, dirs [][2]int, slider PieceType) bool {
	for _, d := range dirs {
		for to := sq.offset(d[0], d[1]); to != NoSquare; to = to.offset(d[0], d[1]) {
			p := b.squares[to]
			if p.Empty() {
				continue
			}
			if p.Color == by && (p.Type == slider || p.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// Validate checks the board invariants: one king per color, at most
// sixteen pieces per color, no pawns on the first or last rank, a
// plausible en passant target with the pushed pawn in front of it and the side not to move not in check.
func (b Board) Validate() error {
	var kings, pieces [2]int
	for sq, p := range b.squares {
		if p.Empty() {
			continue
		}
		if p.Color != White && p.Color != Black {
			return fmt.Errorf("%w: piece without color on %s", ErrInvalidBoard, Square(sq))
		}
		pieces[p.Color.index()]++
		switch p.Type {
		case King:
			kings[p.Color.index()]++
		case Pawn:
			if r := Square(sq).Rank(); r == Rank1 || r == Rank8 {
				return fmt.Errorf("%w: pawn on %s", ErrInvalidBoard, Square(sq))
			}
		}
	}
	for _, c := range []Color{White, Black} {
		if kings[c.index()] != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrInvalidBoard, c.Name(), kings[c.index()])
		}
		if pieces[c.index()] > 16 {
			return fmt.Errorf("%w: %s has %d pieces", ErrInvalidBoard, c.Name(), pieces[c.index()])
		}
	}
	if b.turn != White && b.turn != Black {
		return fmt.Errorf("%w: no side to move", ErrInvalidBoard)
	}
	if b.enPassant != NoSquare {
		want := Rank6
		if b.turn == Black {
			want = Rank3
		}
		if !b.enPassant.Valid() || b.enPassant.Rank() != want || !b.squares[b.enPassant].Empty() {
			return fmt.Errorf("%w: en passant target %s", ErrInvalidBoard, b.enPassant)
		}
		// the pawn that just pushed two squares sits in front of the target
		pushed := b.enPassant.offset(0, -pawnDir(b.turn))
		if b.squares[pushed] != (Piece{Type: Pawn, Color: b.turn.Other()}) {
			return fmt.Errorf("%w: en passant target %s without a pawn on %s", ErrInvalidBoard, b.enPassant, pushed)
		}
	}
	if b.kingAttacked(b.turn.Other()) {
		return fmt.Errorf("%w: %s to move can capture the king", ErrInvalidBoard, b.turn.Name())
	}
	return nil
}

// Draw returns visual representation of the board useful for debugging.
func (b Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n A B C D E F G H\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		for f := FileA; f <= FileH; f++ {
			p := b.squares[NewSquare(f, r)]
			sb.WriteString(p.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements the fmt.Stringer interface and returns the FEN
// snapshot of the board.
func (b Board) String() string {
	return b.FEN()
}
