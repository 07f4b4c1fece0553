package chess

// castleRevoke maps a square to the rights lost when a move starts or
// ends there: the king's home square clears both of its side's rights,
// a rook's home square clears the right on its wing.
var castleRevoke = func() (t [numOfSquaresInBoard]CastleRights) {
	t[E1] = WhiteKingSide | WhiteQueenSide
	t[H1] = WhiteKingSide
	t[A1] = WhiteQueenSide
	t[E8] = BlackKingSide | BlackQueenSide
	t[H8] = BlackKingSide
	t[A8] = BlackQueenSide
	return t
}()

// Apply returns the board that results from playing m. The move must be
// one the receiver generated; Apply does not check legality.
func (b Board) Apply(m Move) Board {
	next := b
	p := next.squares[m.s1]
	c := p.Color
	pawnMove := p.Type == Pawn

	if m.HasTag(EnPassant) {
		next.squares[m.CapturedSquare()] = NoPiece
	}
	next.squares[m.s1] = NoPiece
	if m.promo != NoPieceType {
		p.Type = m.promo
	}
	next.put(m.s2, p)

	switch m.CastleSide() {
	case KingSide:
		rank := m.s1.Rank()
		next.squares[NewSquare(FileH, rank)] = NoPiece
		next.squares[NewSquare(FileF, rank)] = Piece{Type: Rook, Color: c}
	case QueenSide:
		rank := m.s1.Rank()
		next.squares[NewSquare(FileA, rank)] = NoPiece
		next.squares[NewSquare(FileD, rank)] = Piece{Type: Rook, Color: c}
	}

	next.castling &^= castleRevoke[m.s1] | castleRevoke[m.s2]

	next.enPassant = NoSquare
	if m.HasTag(DoublePawnPush) {
		next.enPassant = m.s1.offset(0, pawnDir(c))
	}

	if pawnMove || m.IsCapture() {
		next.halfMoves = 0
	} else {
		next.halfMoves++
	}
	if c == Black {
		next.moveNumber++
	}
	next.turn = c.Other()
	return next
}
