package chess

const (
	halfMoveClockForFiftyMoveRule          = 100
	numOfRepetitionsForThreefoldRepetition = 3
)

// positionKey is the part of a board that decides whether two positions
// repeat: placement, side to move, castling rights and en passant target.
type positionKey struct {
	squares   [numOfSquaresInBoard]Piece
	turn      Color
	castling  CastleRights
	enPassant Square
}

func (b Board) key() positionKey {
	return positionKey{
		squares:   b.squares,
		turn:      b.turn,
		castling:  b.castling,
		enPassant: b.enPassant,
	}
}

// samePosition reports whether b and other repeat each other.
func (b Board) samePosition(other Board) bool {
	return b.key() == other.key()
}

// countRepetitions scans the whole history and returns how often its last
// board has occurred.
func countRepetitions(history []Board) int {
	if len(history) == 0 {
		return 0
	}
	last := history[len(history)-1]
	count := 0
	for _, b := range history {
		if last.samePosition(b) {
			count++
		}
	}
	return count
}

// repetitionMemo counts occurrences of each key in a history. It is kept
// in step with the history on every push and pop so the current count is
// a map lookup, and always agrees with countRepetitions.
type repetitionMemo map[positionKey]int

func newRepetitionMemo(history []Board) repetitionMemo {
	memo := make(repetitionMemo, len(history))
	for _, b := range history {
		memo.push(b)
	}
	return memo
}

func (r repetitionMemo) push(b Board) {
	r[b.key()]++
}

func (r repetitionMemo) pop(b Board) {
	k := b.key()
	if r[k] <= 1 {
		delete(r, k)
		return
	}
	r[k]--
}

func (r repetitionMemo) count(b Board) int {
	return r[b.key()]
}

// hasSufficientMaterial reports whether either side could still
// deliver mate. Bare kings, a single minor piece, and any number of
// bishops all standing on one square colour are not enough.
func (b Board) hasSufficientMaterial() bool {
	knights, minors := 0, 0
	lightBishops, darkBishops := 0, 0
	for sq, p := range b.squares {
		switch p.Type {
		case Pawn, Rook, Queen:
			return true
		case Knight:
			knights++
			minors++
		case Bishop:
			minors++
			if Square(sq).light() {
				lightBishops++
			} else {
				darkBishops++
			}
		}
	}
	if minors <= 1 {
		return false
	}
	if knights == 0 && (lightBishops == 0 || darkBishops == 0) {
		return false
	}
	return true
}

// evaluateStatus derives the status of a position from the board and the
// number of times it has occurred in the game so far.
func evaluateStatus(b Board, repetitions int) Status {
	if !b.HasLegalMoves() {
		if b.InCheck() {
			return Status{Method: Checkmate, Winner: b.turn.Other()}
		}
		return Status{Method: Stalemate}
	}
	if b.halfMoves >= halfMoveClockForFiftyMoveRule {
		return Status{Method: FiftyMoveRule}
	}
	if repetitions >= numOfRepetitionsForThreefoldRepetition {
		return Status{Method: ThreefoldRepetition}
	}
	if !b.hasSufficientMaterial() {
		return Status{Method: InsufficientMaterial}
	}
	return Status{}
}
