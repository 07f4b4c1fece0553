/*
Package chess provides a chess rules engine: board representation, legal
move generation, move application and detection of checkmate, stalemate
and the automatic draws (fifty-move rule, threefold repetition and
insufficient material).

A Game keeps its positions as an append-only history of immutable Boards,
so undo and repetition detection are plain slice operations.
Example usage:

	// Create new game
	game := NewGame()

	// Make moves
	game.Move(E2, E4, NoPieceType)
	game.MoveSAN("e5")

	// Check game status
	if !game.Status().InProgress() {
		fmt.Printf("Game ended: %s by %s\n", game.Status().Outcome(), game.Status().Method)
	}

A Game is not safe for concurrent use. Applications that share one game
between goroutines must serialize access; see package lobby.
*/
package chess

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
	// Draw indicates that game was a draw.
	Draw Outcome = "1/2-1/2"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that the game is still in progress.
	NoMethod Method = iota
	// Checkmate indicates that the game was won by checkmate.
	Checkmate
	// Stalemate indicates that the game was drawn by stalemate.
	Stalemate
	// FiftyMoveRule indicates that the game was drawn by the half
	// move clock reaching one hundred.
	FiftyMoveRule
	// ThreefoldRepetition indicates that the game was drawn when the
	// same position occurred for the third time.
	ThreefoldRepetition
	// InsufficientMaterial indicates that the game was drawn because
	// neither side has enough material left to checkmate.
	InsufficientMaterial
)

func (m Method) String() string {
	switch m {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	case ThreefoldRepetition:
		return "ThreefoldRepetition"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	}
	return "NoMethod"
}

// Status is the state of a game. The zero value means in progress.
// Winner is only set for Checkmate.
type Status struct {
	Method Method
	Winner Color
}

// InProgress reports whether the game still accepts moves.
func (s Status) InProgress() bool {
	return s.Method == NoMethod
}

// Outcome maps the status onto a game result.
func (s Status) Outcome() Outcome {
	switch s.Method {
	case NoMethod:
		return NoOutcome
	case Checkmate:
		if s.Winner == White {
			return WhiteWon
		}
		return BlackWon
	}
	return Draw
}

func (s Status) String() string {
	switch s.Method {
	case NoMethod:
		return "in progress"
	case Checkmate:
		return fmt.Sprintf("checkmate, %s wins", s.Winner.Name())
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "draw by fifty-move rule"
	case ThreefoldRepetition:
		return "draw by threefold repetition"
	}
	return "draw by insufficient material"
}

// CapturedPieces lists the pieces each side has taken, in capture order.
// White holds Black pieces captured by White and vice versa.
type CapturedPieces struct {
	White []Piece
	Black []Piece
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Move Move
	// Captured is the piece removed by the move, or NoPiece.
	Captured Piece
	// SAN is the move in Standard Algebraic Notation.
	SAN    string
	Status Status
}

// A Game represents a single chess game.
type Game struct {
	boards   []Board        // history, index 0 is the initial position
	moves    []Move         // moves[i] turned boards[i] into boards[i+1]
	sans     []string       // notation of moves[i]
	captures []Piece        // piece removed by moves[i], or NoPiece
	redo     []Move         // undone moves, most recent last
	reps     repetitionMemo // occurrences of each position in boards
	status   Status
}

// FEN takes a string and returns a function that updates
// the game to start from that position. Since FEN doesn't encode
// prior moves, the move list will be empty. The returned
// function is designed to be used in the NewGame constructor.
// An error is returned if there is a problem parsing the FEN data.
func FEN(fen string) (func(*Game), error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return WithBoard(b), nil
}

// WithBoard returns a Game option that starts the game from b.
func WithBoard(b Board) func(*Game) {
	return func(g *Game) {
		g.boards = []Board{b}
	}
}

// NewGame returns a new game in the standard starting position.
// Optional functions can be provided to configure the initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from FEN
//	fen, _ := FEN("k7/8/8/8/8/8/8/1Q5K w - - 0 1")
//	game := NewGame(fen)
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		boards: []Board{StartingBoard()},
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	g.reps = newRepetitionMemo(g.boards)
	g.refresh()
	return g
}

// Board returns the current position.
func (g *Game) Board() Board {
	return g.boards[len(g.boards)-1]
}

// Turn returns the color to move.
func (g *Game) Turn() Color {
	return g.Board().Turn()
}

// Status returns the current status of the game.
func (g *Game) Status() Status {
	return g.status
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.status.Outcome()
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.status.Method
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.Board().InCheck()
}

// ValidMoves returns all legal moves in the current position. It is empty
// once the game is over.
func (g *Game) ValidMoves() []Move {
	if !g.status.InProgress() {
		return []Move{}
	}
	return g.Board().LegalMoves()
}

// LegalDestinations returns the squares the piece on sq may move to. It
// is empty if sq is empty, holds a piece of the side not to move, or the
// game is over. A promotion square is listed once.
func (g *Game) LegalDestinations(sq Square) []Square {
	dests := []Square{}
	if !g.status.InProgress() {
		return dests
	}
	for _, m := range g.Board().LegalMovesFrom(sq) {
		if !slices.Contains(dests, m.s2) {
			dests = append(dests, m.s2)
		}
	}
	return dests
}

// Move plays the piece on from to to. promo names the promotion kind
// and must be NoPieceType unless a pawn reaches the last rank. A
// rejected move returns a *MoveError matching ErrIllegalMove and leaves
// the game untouched.
func (g *Game) Move(from, to Square, promo PieceType) (MoveResult, error) {
	m, err := g.resolve(from, to, promo)
	if err != nil {
		return MoveResult{}, err
	}
	g.redo = g.redo[:0]
	return g.push(m), nil
}

// PlayMove plays a move taken from ValidMoves. Moves generated for any
// other board are rejected, including an earlier occurrence of the same
// position.
func (g *Game) PlayMove(m Move) (MoveResult, error) {
	fail := &MoveError{From: m.s1, To: m.s2, Promo: m.promo, Reason: ReasonStale}
	if !g.status.InProgress() {
		fail.Reason = ReasonGameOver
		return MoveResult{}, fail
	}
	b := g.Board()
	if m.origin != b.origin() {
		return MoveResult{}, fail
	}
	for _, legal := range b.LegalMovesFrom(m.s1) {
		if legal.sameAs(m.s1, m.s2, m.promo) {
			g.redo = g.redo[:0]
			return g.push(legal), nil
		}
	}
	fail.Reason = ReasonNotLegal
	return MoveResult{}, fail
}

// MoveSAN plays a move written in Standard Algebraic Notation.
//
// Example:
//
//	_, err := game.MoveSAN("Nf3")
func (g *Game) MoveSAN(san string) (MoveResult, error) {
	if !g.status.InProgress() {
		return MoveResult{}, sanError(san, ReasonGameOver)
	}
	m, err := g.Board().ParseSAN(san)
	if err != nil {
		return MoveResult{}, err
	}
	g.redo = g.redo[:0]
	return g.push(m), nil
}

// resolve finds the legal move matching the request or explains why
// there is none.
func (g *Game) resolve(from, to Square, promo PieceType) (Move, error) {
	fail := func(r Reason) error {
		return &MoveError{From: from, To: to, Promo: promo, Reason: r}
	}
	if !g.status.InProgress() {
		return Move{}, fail(ReasonGameOver)
	}
	b := g.Board()
	p, ok := b.PieceAt(from)
	if !ok {
		return Move{}, fail(ReasonNoPiece)
	}
	if p.Color != b.Turn() {
		return Move{}, fail(ReasonWrongTurn)
	}
	reachable := false
	for _, m := range b.LegalMovesFrom(from) {
		if m.s2 != to {
			continue
		}
		if m.promo == promo {
			return m, nil
		}
		if m.promo != NoPieceType {
			reachable = true
		}
	}
	if reachable {
		return Move{}, fail(ReasonPromotionRequired)
	}
	return Move{}, fail(ReasonNotLegal)
}

// push appends the position after m to the history. m must be legal.
func (g *Game) push(m Move) MoveResult {
	b := g.Board()
	captured := NoPiece
	if sq := m.CapturedSquare(); sq != NoSquare {
		captured = b.squares[sq]
	}
	san := b.SAN(m)
	next := b.Apply(m)

	g.boards = append(g.boards, next)
	g.moves = append(g.moves, m)
	g.sans = append(g.sans, san)
	g.captures = append(g.captures, captured)
	g.reps.push(next)
	g.refresh()

	return MoveResult{Move: m, Captured: captured, SAN: san, Status: g.status}
}

// Undo takes back the last move.
// It returns ErrNoHistory when the game is at its initial position.
func (g *Game) Undo() error {
	if len(g.boards) <= 1 {
		return ErrNoHistory
	}
	last := len(g.moves) - 1
	g.reps.pop(g.Board())
	g.redo = append(g.redo, g.moves[last])

	g.boards = g.boards[:len(g.boards)-1]
	g.moves = g.moves[:last]
	g.sans = g.sans[:last]
	g.captures = g.captures[:last]
	g.refresh()
	return nil
}

// Redo replays the most recently undone move.
// It returns ErrNoRedo when nothing has been undone since the last move.
func (g *Game) Redo() error {
	if len(g.redo) == 0 {
		return ErrNoRedo
	}
	m := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]
	g.push(m)
	return nil
}

// Reset returns the game to its initial position and forgets all moves.
func (g *Game) Reset() {
	g.boards = g.boards[:1]
	g.moves = g.moves[:0]
	g.sans = g.sans[:0]
	g.captures = g.captures[:0]
	g.redo = g.redo[:0]
	g.reps = newRepetitionMemo(g.boards)
	g.refresh()
}

// refresh recomputes the status from the current board and history.
func (g *Game) refresh() {
	g.status = evaluateStatus(g.Board(), g.reps.count(g.Board()))
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.reps.count(g.Board())
}

// History returns the moves played so far in Standard Algebraic Notation.
func (g *Game) History() []string {
	return slices.Clone(g.sans)
}

// Moves returns the moves played so far.
func (g *Game) Moves() []Move {
	return slices.Clone(g.moves)
}

// Positions returns all positions in the game.
// This includes the starting position and all positions after each move.
func (g *Game) Positions() []Board {
	return slices.Clone(g.boards)
}

// Captured returns the pieces captured by each side.
func (g *Game) Captured() CapturedPieces {
	cp := CapturedPieces{White: []Piece{}, Black: []Piece{}}
	for _, p := range g.captures {
		switch p.Color {
		case Black:
			cp.White = append(cp.White, p)
		case White:
			cp.Black = append(cp.Black, p)
		}
	}
	return cp
}

// StatusLine returns a one line description of the game state for
// display, e.g. "White to move" or "Checkmate! Black wins!".
func (g *Game) StatusLine() string {
	turn := g.Turn().Name()
	switch g.status.Method {
	case Checkmate:
		return fmt.Sprintf("Checkmate! %s wins!", g.status.Winner.Name())
	case Stalemate:
		return "Stalemate!"
	case FiftyMoveRule:
		return "Draw by fifty-move rule!"
	case ThreefoldRepetition:
		return "Draw by threefold repetition!"
	case InsufficientMaterial:
		return "Draw by insufficient material!"
	}
	if g.InCheck() {
		return fmt.Sprintf("%s is in check!", turn)
	}
	return fmt.Sprintf("%s to move", turn)
}

// FEN returns the FEN notation of the current position.
func (g *Game) FEN() string {
	return g.Board().FEN()
}

// String implements the fmt.Stringer interface and returns the numbered
// move text followed by the result, e.g. "1. e4 e5 2. Bc4 *".
func (g *Game) String() string {
	var sb strings.Builder
	for i, san := range g.sans {
		b := g.boards[i]
		if b.turn == White {
			fmt.Fprintf(&sb, "%d. ", b.moveNumber)
		} else if i == 0 {
			fmt.Fprintf(&sb, "%d... ", b.moveNumber)
		}
		sb.WriteString(san)
		sb.WriteByte(' ')
	}
	sb.WriteString(g.Outcome().String())
	return sb.String()
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	return &Game{
		boards:   slices.Clone(g.boards),
		moves:    slices.Clone(g.moves),
		sans:     slices.Clone(g.sans),
		captures: slices.Clone(g.captures),
		redo:     slices.Clone(g.redo),
		reps:     maps.Clone(g.reps),
		status:   g.status,
	}
}
