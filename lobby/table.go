package lobby

import (
	"log"
	"sync"
	"time"

	"github.com/mway1/chess"
)

// A Table is one game and the lock guarding it.
type Table struct {
	ID      string
	Name    string
	Created time.Time

	mu     sync.Mutex
	game   *chess.Game
	logger *log.Logger
}

// Snapshot is everything a client needs to draw a table: the board, whose
// turn it is, the status line, the move list and captured pieces.
type Snapshot struct {
	ID         string
	Name       string
	Board      map[chess.Square]chess.Piece
	Turn       chess.Color
	InCheck    bool
	Status     chess.Status
	StatusLine string
	History    []string
	Captured   chess.CapturedPieces
	FEN        string
}

// Do runs fn with exclusive access to the table's game.
func (t *Table) Do(fn func(g *chess.Game) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.game)
}

// Move submits a move. Rejected moves are logged and returned unchanged
// so callers can match them against chess.ErrIllegalMove.
func (t *Table) Move(from, to chess.Square, promo chess.PieceType) (chess.MoveResult, error) {
	var res chess.MoveResult
	err := t.Do(func(g *chess.Game) error {
		var err error
		res, err = g.Move(from, to, promo)
		return err
	})
	if err != nil {
		t.logger.Printf("lobby: table %s: %v", t.ID, err)
		return chess.MoveResult{}, err
	}
	if !res.Status.InProgress() {
		t.logger.Printf("lobby: table %s finished: %s", t.ID, res.Status)
	}
	return res, nil
}

// Destinations returns the legal target squares of the piece on sq.
func (t *Table) Destinations(sq chess.Square) []chess.Square {
	var dests []chess.Square
	_ = t.Do(func(g *chess.Game) error {
		dests = g.LegalDestinations(sq)
		return nil
	})
	return dests
}

// Undo takes back the last move.
func (t *Table) Undo() error {
	err := t.Do(func(g *chess.Game) error {
		return g.Undo()
	})
	if err != nil {
		t.logger.Printf("lobby: table %s: undo: %v", t.ID, err)
	}
	return err
}

// Reset starts the table's game over.
func (t *Table) Reset() {
	_ = t.Do(func(g *chess.Game) error {
		g.Reset()
		return nil
	})
	t.logger.Printf("lobby: table %s reset", t.ID)
}

// Snapshot returns a consistent copy of the table state.
func (t *Table) Snapshot() Snapshot {
	var s Snapshot
	_ = t.Do(func(g *chess.Game) error {
		s = Snapshot{
			ID:         t.ID,
			Name:       t.Name,
			Board:      g.Board().Squares(),
			Turn:       g.Turn(),
			InCheck:    g.InCheck(),
			Status:     g.Status(),
			StatusLine: g.StatusLine(),
			History:    g.History(),
			Captured:   g.Captured(),
			FEN:        g.FEN(),
		}
		return nil
	})
	return s
}

func (t *Table) summary() Summary {
	s := Summary{ID: t.ID, Name: t.Name, Created: t.Created}
	_ = t.Do(func(g *chess.Game) error {
		s.Status = g.Status()
		s.Plies = len(g.Moves())
		return nil
	})
	return s
}
