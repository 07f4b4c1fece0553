package chess

import "fmt"

// LegalMoves returns every legal move for the side to move. The order is
// deterministic: origin squares ascending from a1, then the fixed
// direction order of each piece kind.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, 48)
	origin := b.origin()
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		p := b.squares[sq]
		if p.Empty() || p.Color != b.turn {
			continue
		}
		moves = b.appendLegal(moves, sq, p, origin)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on sq. It is empty
// when sq is empty or holds a piece of the side not to move.
func (b Board) LegalMovesFrom(sq Square) []Move {
	p, ok := b.PieceAt(sq)
	if !ok || p.Color != b.turn {
		return []Move{}
	}
	return b.appendLegal(make([]Move, 0, 16), sq, p, b.origin())
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It stops at the first one found.
func (b Board) HasLegalMoves() bool {
	var buf [64]Move
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		p := b.squares[sq]
		if p.Empty() || p.Color != b.turn {
			continue
		}
		for _, m := range b.pseudoMoves(buf[:0], sq, p) {
			if !b.Apply(m).kingAttacked(p.Color) {
				return true
			}
		}
	}
	return false
}

// appendLegal keeps the pseudo-legal moves of the piece on sq that do
// not leave its own king attacked once played.
func (b Board) appendLegal(moves []Move, sq Square, p Piece, origin uint64) []Move {
	var buf [64]Move
	for _, m := range b.pseudoMoves(buf[:0], sq, p) {
		next := b.Apply(m)
		if next.kingAttacked(p.Color) {
			continue
		}
		if next.kingAttacked(p.Color.Other()) {
			m.tags |= Check
		}
		m.origin = origin
		moves = append(moves, m)
	}
	return moves
}

// pseudoMoves appends the moves the piece on from can make by its
// movement pattern and occupancy alone.
func (b Board) pseudoMoves(moves []Move, from Square, p Piece) []Move {
	switch p.Type {
	case Pawn:
		return b.pawnMoves(moves, from, p.Color)
	case Knight:
		return b.stepMoves(moves, from, p.Color, knightOffsets[:])
	case Bishop:
		return b.slideMoves(moves, from, p.Color, bishopDirs[:])
	case Rook:
		return b.slideMoves(moves, from, p.Color, rookDirs[:])
	case Queen:
		return b.slideMoves(moves, from, p.Color, queenDirs[:])
	case King:
		moves = b.stepMoves(moves, from, p.Color, kingOffsets[:])
		return b.castleMoves(moves, from, p.Color)
	case NoPieceType:
		return moves
	}
	panic(fmt.Sprintf("chess: no movement rule for piece type %d", p.Type))
}

func (b Board) stepMoves(moves []Move, from Square, c Color, offsets [][2]int) []Move {
	for _, o := range offsets {
		to := from.offset(o[0], o[1])
		if to == NoSquare {
			continue
		}
		target := b.squares[to]
		switch {
		case target.Empty():
			moves = append(moves, Move{s1: from, s2: to})
		case target.Color != c:
			moves = append(moves, Move{s1: from, s2: to, tags: Capture})
		}
	}
	return moves
}

func (b Board) slideMoves(moves []Move, from Square, c Color, dirs [][2]int) []Move {
	for _, d := range dirs {
		for to := from.offset(d[0], d[1]); to != NoSquare; to = to.offset(d[0], d[1]) {
			target := b.squares[to]
			if target.Empty() {
				moves = append(moves, Move{s1: from, s2: to})
				continue
			}
			if target.Color != c {
				moves = append(moves, Move{s1: from, s2: to, tags: Capture})
			}
			break
		}
	}
	return moves
}

func (b Board) pawnMoves(moves []Move, from Square, c Color) []Move {
	dir := pawnDir(c)
	startRank, lastRank := Rank2, Rank8
	if c == Black {
		startRank, lastRank = Rank7, Rank1
	}
	if one := from.offset(0, dir); one != NoSquare && b.squares[one].Empty() {
		moves = appendPawnMove(moves, from, one, 0, lastRank)
		if from.Rank() == startRank {
			if two := from.offset(0, 2*dir); b.squares[two].Empty() {
				moves = append(moves, Move{s1: from, s2: two, tags: DoublePawnPush})
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		to := from.offset(df, dir)
		if to == NoSquare {
			continue
		}
		target := b.squares[to]
		switch {
		case !target.Empty() && target.Color != c:
			moves = appendPawnMove(moves, from, to, Capture, lastRank)
		case target.Empty() && to == b.enPassant &&
			b.squares[NewSquare(to.File(), from.Rank())] == (Piece{Type: Pawn, Color: c.Other()}):
			moves = append(moves, Move{s1: from, s2: to, tags: Capture | EnPassant})
		}
	}
	return moves
}

// appendPawnMove expands a pawn arriving on the last rank into one move
// per promotion kind.
func appendPawnMove(moves []Move, from, to Square, tags MoveTag, lastRank Rank) []Move {
	if to.Rank() != lastRank {
		return append(moves, Move{s1: from, s2: to, tags: tags})
	}
	for _, pt := range PromotableTypes() {
		moves = append(moves, Move{s1: from, s2: to, promo: pt, tags: tags})
	}
	return moves
}

// castleMoves adds castling when the right is intact, the rook is home,
// the squares between are empty and the king neither starts on, passes
// through nor lands on an attacked square.
func (b Board) castleMoves(moves []Move, from Square, c Color) []Move {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	home := NewSquare(FileE, rank)
	if from != home || !(b.castling.CanCastle(c, KingSide) || b.castling.CanCastle(c, QueenSide)) {
		return moves
	}
	opp := c.Other()
	if b.IsSquareAttacked(home, opp) {
		return moves
	}
	rook := Piece{Type: Rook, Color: c}
	f, g := NewSquare(FileF, rank), NewSquare(FileG, rank)
	if b.castling.CanCastle(c, KingSide) && b.squares[NewSquare(FileH, rank)] == rook &&
		b.squares[f].Empty() && b.squares[g].Empty() &&
		!b.IsSquareAttacked(f, opp) && !b.IsSquareAttacked(g, opp) {
		moves = append(moves, Move{s1: home, s2: g, tags: KingSideCastle})
	}
	d, cc, bb := NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank)
	if b.castling.CanCastle(c, QueenSide) && b.squares[NewSquare(FileA, rank)] == rook &&
		b.squares[d].Empty() && b.squares[cc].Empty() && b.squares[bb].Empty() &&
		!b.IsSquareAttacked(d, opp) && !b.IsSquareAttacked(cc, opp) {
		moves = append(moves, Move{s1: home, s2: cc, tags: QueenSideCastle})
	}
	return moves
}
