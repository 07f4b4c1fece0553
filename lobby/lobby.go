// Package lobby keeps a set of independent chess games in one process and
// serializes access to each of them.
//
// A chess.Game is single-writer. A Table pairs one game with the mutex
// that every operation on it goes through, and a Manager hands out
// tables by ID.
package lobby

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/mway1/chess"
)

// ErrTableNotFound is returned for unknown table IDs.
var ErrTableNotFound = errors.New("lobby: table not found")

// Manager owns the tables of one process.
type Manager struct {
	mu     sync.RWMutex
	tables map[string]*Table
	logger *log.Logger
	namer  func() string
	newID  func() string
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for table lifecycle events and
// rejected moves.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithNamer sets the function producing human readable table names.
func WithNamer(namer func() string) Option {
	return func(m *Manager) {
		m.namer = namer
	}
}

// New returns an empty Manager.
func New(options ...Option) *Manager {
	m := &Manager{
		tables: make(map[string]*Table),
		logger: log.Default(),
		namer:  func() string { return petname.Generate(2, "-") },
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, o := range options {
		if o != nil {
			o(m)
		}
	}
	return m
}

// Create opens a table with a new game. Game options such as chess.FEN
// are passed through to chess.NewGame.
func (m *Manager) Create(options ...func(*chess.Game)) *Table {
	t := &Table{
		ID:      m.newID(),
		Name:    m.namer(),
		Created: m.now(),
		game:    chess.NewGame(options...),
		logger:  m.logger,
	}
	m.mu.Lock()
	m.tables[t.ID] = t
	m.mu.Unlock()
	m.logger.Printf("lobby: opened table %s (%s)", t.ID, t.Name)
	return t
}

// CreateFromFEN opens a table whose game starts from a snapshot.
func (m *Manager) CreateFromFEN(fen string) (*Table, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("lobby: create table: %w", err)
	}
	return m.Create(opt), nil
}

// Get returns the table with the given ID.
func (m *Manager) Get(id string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, id)
	}
	return t, nil
}

// Remove closes the table with the given ID.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, id)
	}
	delete(m.tables, id)
	m.logger.Printf("lobby: closed table %s", id)
	return nil
}

// Summary is a short description of a table.
type Summary struct {
	ID      string
	Name    string
	Created time.Time
	Status  chess.Status
	Plies   int
}

// List returns a summary of every table, oldest first.
func (m *Manager) List() []Summary {
	m.mu.RLock()
	tables := make([]*Table, 0, len(m.tables))
	for _, t := range m.tables {
		tables = append(tables, t)
	}
	m.mu.RUnlock()

	out := make([]Summary, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.summary())
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Len returns the number of open tables.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}
