package chess

// A MoveTag represents a notable consequence of a move.
type MoveTag uint16

const (
	// KingSideCastle indicates that the move is a king side castle.
	KingSideCastle MoveTag = 1 << iota
	// QueenSideCastle indicates that the move is a queen side castle.
	QueenSideCastle
	// Capture indicates that the move captures a piece.
	Capture
	// EnPassant indicates that the move captures via en passant.
	EnPassant
	// DoublePawnPush indicates a pawn advancing two squares from its start.
	DoublePawnPush
	// Check indicates that the move puts the opposing player in check.
	Check
)

// A Move is a single transition generated for one specific Board. Moves
// are only meaningful against the board they came from: a Game rejects a
// Move whose origin key does not match its current board, clocks included.
type Move struct {
	s1     Square
	s2     Square
	promo  PieceType
	tags   MoveTag
	origin uint64
}

// S1 returns the origin square of the move.
func (m Move) S1() Square { return m.s1 }

// S2 returns the destination square of the move.
func (m Move) S2() Square { return m.s2 }

// Promo returns promotion piece type of the move.
func (m Move) Promo() PieceType { return m.promo }

// HasTag returns true if the move contains the MoveTag given.
func (m Move) HasTag(tag MoveTag) bool {
	return (tag & m.tags) > 0
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool { return m.HasTag(Capture) }

// IsDoubleStep reports whether the move is a pawn's two-square advance.
func (m Move) IsDoubleStep() bool { return m.HasTag(DoublePawnPush) }

// CastleSide returns the side castled towards, or NoSide.
func (m Move) CastleSide() Side {
	switch {
	case m.HasTag(KingSideCastle):
		return KingSide
	case m.HasTag(QueenSideCastle):
		return QueenSide
	}
	return NoSide
}

// CapturedSquare returns the square of the captured piece, or NoSquare
// for quiet moves. It differs from S2 only for en passant, where the
// captured pawn sits behind the destination.
func (m Move) CapturedSquare() Square {
	switch {
	case m.HasTag(EnPassant):
		return NewSquare(m.s2.File(), m.s1.Rank())
	case m.HasTag(Capture):
		return m.s2
	}
	return NoSquare
}

// Origin returns the key of the board the move was generated from: its
// Hash mixed with both move clocks.
func (m Move) Origin() uint64 { return m.origin }

// String returns a string useful for debugging. String doesn't return
// algebraic notation; it returns the long form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	return m.s1.String() + m.s2.String() + m.promo.String()
}

// sameAs compares the geometry of two moves, ignoring tags and origin.
func (m Move) sameAs(from, to Square, promo PieceType) bool {
	return m.s1 == from && m.s2 == to && m.promo == promo
}
