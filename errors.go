package chess

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned for any move that is not in the legal set
	// of the current position, including moves after the game has ended.
	ErrIllegalMove = errors.New("chess: illegal move")
	// ErrNoHistory is returned by Undo when only the initial position remains.
	ErrNoHistory = errors.New("chess: no move to undo")
	// ErrNoRedo is returned by Redo when there is no undone move to replay.
	ErrNoRedo = errors.New("chess: no move to redo")
	// ErrInvalidBoard is returned when a position breaks a board invariant.
	ErrInvalidBoard = errors.New("chess: invalid board")
	// ErrInvalidFEN is returned for malformed snapshot strings.
	ErrInvalidFEN = errors.New("chess: invalid FEN")
	// ErrInvalidSquare is returned for malformed square names.
	ErrInvalidSquare = errors.New("invalid square")
)

// A Reason tells why a move was rejected.
type Reason uint8

const (
	// ReasonNotLegal covers unreachable squares and moves that leave the
	// mover's king attacked.
	ReasonNotLegal Reason = iota
	// ReasonGameOver means the game already reached a terminal status.
	ReasonGameOver
	// ReasonNoPiece means the origin square is empty.
	ReasonNoPiece
	// ReasonWrongTurn means the origin holds a piece of the side not to move.
	ReasonWrongTurn
	// ReasonPromotionRequired means a pawn reaches the last rank without a
	// valid promotion kind.
	ReasonPromotionRequired
	// ReasonStale means the move was generated from a different position.
	ReasonStale
)

func (r Reason) String() string {
	switch r {
	case ReasonGameOver:
		return "game is over"
	case ReasonNoPiece:
		return "no piece on origin square"
	case ReasonWrongTurn:
		return "not that side's turn"
	case ReasonPromotionRequired:
		return "invalid promotion choice"
	case ReasonStale:
		return "move belongs to another position"
	}
	return "not a legal move"
}

// MoveError describes a rejected move. It matches ErrIllegalMove with errors.Is.
// Moves requested in algebraic notation carry the text in SAN and leave
// From and To as NoSquare.
type MoveError struct {
	From   Square
	To     Square
	Promo  PieceType
	SAN    string
	Reason Reason
}

func (e *MoveError) Error() string {
	if e.From == NoSquare && e.To == NoSquare {
		return fmt.Sprintf("chess: illegal move %q: %s", e.SAN, e.Reason)
	}
	promo := ""
	if e.Promo != NoPieceType {
		promo = "=" + e.Promo.sanLetter()
	}
	return fmt.Sprintf("chess: illegal move %s%s%s: %s", e.From, e.To, promo, e.Reason)
}

// Is makes errors.Is(err, ErrIllegalMove) hold for every MoveError.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
