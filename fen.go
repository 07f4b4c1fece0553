package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the snapshot of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN returns the snapshot of the board in Forsyth-Edwards Notation.
func (b Board) FEN() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.squares[NewSquare(f, r)]
			if p.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", b.turn, b.castling, b.enPassant, b.halfMoves, b.moveNumber)
	return sb.String()
}

// ParseFEN decodes a FEN snapshot. The two clock fields may be omitted
// and default to "0 1". The resulting board is validated.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return Board{}, fmt.Errorf("%w: expected 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	b := emptyBoard()
	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return Board{}, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	cr, err := parseCastleRights(fields[2])
	if err != nil {
		return Board{}, err
	}
	b.castling = cr & b.homeRights()

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Board{}, fmt.Errorf("%w: en passant: %w", ErrInvalidFEN, err)
		}
		b.enPassant = sq
	}

	if len(fields) == 6 {
		if b.halfMoves, err = strconv.Atoi(fields[4]); err != nil || b.halfMoves < 0 {
			return Board{}, fmt.Errorf("%w: half move clock %q", ErrInvalidFEN, fields[4])
		}
		if b.moveNumber, err = strconv.Atoi(fields[5]); err != nil || b.moveNumber < 1 {
			return Board{}, fmt.Errorf("%w: move number %q", ErrInvalidFEN, fields[5])
		}
	}

	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

func parsePlacement(b *Board, s string) error {
	rows := strings.Split(s, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}
	for i, row := range rows {
		r := Rank8 - Rank(i)
		f := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			p, ok := pieceFromFEN(c)
			if !ok || f > 7 {
				return fmt.Errorf("%w: rank %s %q", ErrInvalidFEN, r, row)
			}
			b.put(NewSquare(File(f), r), p)
			f++
		}
		if f != 8 {
			return fmt.Errorf("%w: rank %s has %d files", ErrInvalidFEN, r, f)
		}
	}
	return nil
}

func parseCastleRights(s string) (CastleRights, error) {
	if s == "-" {
		return NoCastleRights, nil
	}
	var cr CastleRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		default:
			return NoCastleRights, fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, s)
		}
	}
	return cr, nil
}

// homeRights returns the castling rights the placement still allows:
// a right needs its king and rook on their starting squares.
func (b Board) homeRights() CastleRights {
	var cr CastleRights
	for _, c := range []Color{White, Black} {
		rank := Rank1
		if c == Black {
			rank = Rank8
		}
		if b.squares[NewSquare(FileE, rank)] != (Piece{Type: King, Color: c}) {
			continue
		}
		rook := Piece{Type: Rook, Color: c}
		if b.squares[NewSquare(FileH, rank)] == rook {
			cr |= castleFlag(c, KingSide)
		}
		if b.squares[NewSquare(FileA, rank)] == rook {
			cr |= castleFlag(c, QueenSide)
		}
	}
	return cr
}
