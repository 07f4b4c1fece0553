package lobby

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mway1/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	m := New(WithLogger(log.New(&buf, "", 0)))
	return m, &buf
}

func TestCreateAndGet(t *testing.T) {
	m, logs := newTestManager(t)
	table := m.Create()

	_, err := uuid.Parse(table.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, table.Name)
	assert.Contains(t, logs.String(), "opened table "+table.ID)

	got, err := m.Get(table.ID)
	require.NoError(t, err)
	assert.Same(t, table, got)
	assert.Equal(t, 1, m.Len())

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestWithNamer(t *testing.T) {
	n := 0
	m := New(WithLogger(log.New(&bytes.Buffer{}, "", 0)), WithNamer(func() string {
		n++
		return fmt.Sprintf("table-%d", n)
	}))
	assert.Equal(t, "table-1", m.Create().Name)
	assert.Equal(t, "table-2", m.Create().Name)
}

func TestCreateFromFEN(t *testing.T) {
	m, _ := newTestManager(t)
	table, err := m.CreateFromFEN("k1K5/8/8/8/8/8/8/1Q6 w - - 0 1")
	require.NoError(t, err)
	res, err := table.Move(chess.B1, chess.B6, chess.NoPieceType)
	require.NoError(t, err)
	assert.Equal(t, chess.Stalemate, res.Status.Method)

	_, err = m.CreateFromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.ErrorIs(t, err, chess.ErrInvalidBoard)
	assert.Equal(t, 1, m.Len())
}

func TestRemove(t *testing.T) {
	m, logs := newTestManager(t)
	table := m.Create()
	require.NoError(t, m.Remove(table.ID))
	assert.Contains(t, logs.String(), "closed table "+table.ID)
	assert.ErrorIs(t, m.Remove(table.ID), ErrTableNotFound)
	assert.Zero(t, m.Len())
}

func TestTableMove(t *testing.T) {
	m, logs := newTestManager(t)
	table := m.Create()

	res, err := table.Move(chess.E2, chess.E4, chess.NoPieceType)
	require.NoError(t, err)
	assert.Equal(t, "e4", res.SAN)

	_, err = table.Move(chess.E2, chess.E4, chess.NoPieceType)
	assert.ErrorIs(t, err, chess.ErrIllegalMove)
	assert.Contains(t, logs.String(), "table "+table.ID)

	snap := table.Snapshot()
	assert.Equal(t, table.ID, snap.ID)
	assert.Equal(t, chess.Black, snap.Turn)
	assert.Equal(t, []string{"e4"}, snap.History)
	assert.Equal(t, "Black to move", snap.StatusLine)
	assert.Equal(t, chess.Piece{Type: chess.Pawn, Color: chess.White}, snap.Board[chess.E4])
	assert.Len(t, snap.Board, 32)
}

func TestTableFinishedIsLogged(t *testing.T) {
	m, logs := newTestManager(t)
	table := m.Create()
	for _, mv := range [][2]chess.Square{{chess.F2, chess.F3}, {chess.E7, chess.E5}, {chess.G2, chess.G4}, {chess.D8, chess.H4}} {
		_, err := table.Move(mv[0], mv[1], chess.NoPieceType)
		require.NoError(t, err)
	}
	assert.Contains(t, logs.String(), "finished: checkmate, Black wins")
	assert.Equal(t, "Checkmate! Black wins!", table.Snapshot().StatusLine)
}

func TestTableUndoAndReset(t *testing.T) {
	m, _ := newTestManager(t)
	table := m.Create()
	assert.ErrorIs(t, table.Undo(), chess.ErrNoHistory)

	assert.ElementsMatch(t, []chess.Square{chess.F3, chess.H3}, table.Destinations(chess.G1))
	_, err := table.Move(chess.G1, chess.F3, chess.NoPieceType)
	require.NoError(t, err)
	assert.Empty(t, table.Destinations(chess.F3), "not white's turn after a move")

	require.NoError(t, table.Undo())
	assert.Equal(t, chess.StartFEN, table.Snapshot().FEN)

	_, err = table.Move(chess.E2, chess.E4, chess.NoPieceType)
	require.NoError(t, err)
	table.Reset()
	assert.Equal(t, chess.StartFEN, table.Snapshot().FEN)
}

func TestList(t *testing.T) {
	m, _ := newTestManager(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	m.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	first := m.Create()
	second := m.Create()
	_, err := second.Move(chess.D2, chess.D4, chess.NoPieceType)
	require.NoError(t, err)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, 0, list[0].Plies)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, 1, list[1].Plies)
	assert.True(t, list[1].Status.InProgress())
}

func TestConcurrentMoves(t *testing.T) {
	m, _ := newTestManager(t)
	table := m.Create()

	// every goroutine races to play the same first move; exactly one wins
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := table.Move(chess.E2, chess.E4, chess.NoPieceType); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
			table.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, accepted)
	assert.Len(t, table.Snapshot().History, 1)
}
