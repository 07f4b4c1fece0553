package chess

import "strings"

// SAN encodes m in Standard Algebraic Notation relative to b, e.g.
// "Nbd7", "exd6", "e8=Q+", "O-O-O" or "Qxf7#". The move must be legal
// in b.
func (b Board) SAN(m Move) string {
	var sb strings.Builder
	switch side := m.CastleSide(); side {
	case KingSide, QueenSide:
		sb.WriteString(side.String())
	default:
		p := b.squares[m.s1]
		if p.Type == Pawn {
			if m.IsCapture() {
				sb.WriteString(m.s1.File().String())
			}
		} else {
			sb.WriteString(p.Type.sanLetter())
			sb.WriteString(b.disambiguation(m, p))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.s2.String())
		if m.promo != NoPieceType {
			sb.WriteByte('=')
			sb.WriteString(m.promo.sanLetter())
		}
	}
	next := b.Apply(m)
	if next.InCheck() {
		if next.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell
// m apart from other legal moves of the same piece kind to the same square.
func (b Board) disambiguation(m Move, p Piece) string {
	var others []Square
	for _, o := range b.LegalMoves() {
		if o.s2 == m.s2 && o.s1 != m.s1 && b.squares[o.s1] == p {
			others = append(others, o.s1)
		}
	}
	if len(others) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, sq := range others {
		if sq.File() == m.s1.File() {
			sameFile = true
		}
		if sq.Rank() == m.s1.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return m.s1.File().String()
	case !sameRank:
		return m.s1.Rank().String()
	}
	return m.s1.String()
}

// ParseSAN finds the legal move of b written as s. Check and annotation
// suffixes are optional and "0-0" is accepted for castling.
func (b Board) ParseSAN(s string) (Move, error) {
	want := normalizeSAN(s)
	if want == "" {
		return Move{}, sanError(s, ReasonNotLegal)
	}
	for _, m := range b.LegalMoves() {
		if normalizeSAN(b.SAN(m)) == want {
			return m, nil
		}
	}
	return Move{}, sanError(s, ReasonNotLegal)
}

func sanError(s string, r Reason) *MoveError {
	return &MoveError{From: NoSquare, To: NoSquare, SAN: s, Reason: r}
}

func normalizeSAN(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "+#!?")
	return strings.ReplaceAll(s, "0", "O")
}
