package chess

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uciSet(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func dragontoothMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftAgainstDragontooth(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, tt := range perftTests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseFEN(tt.fen)
			require.NoError(t, err)
			oracle := dragontoothmg.ParseFen(tt.fen)
			assert.Equal(t, dragontoothPerft(&oracle, depth), Perft(b, depth))
		})
	}
}

// randomBoards plays seeded random games and calls fn on every position
// reached, including the final one.
func randomBoards(seed int64, games, plies int, fn func(b Board)) {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < games; i++ {
		b := StartingBoard()
		for ply := 0; ply < plies; ply++ {
			fn(b)
			moves := b.LegalMoves()
			if len(moves) == 0 {
				break
			}
			b = b.Apply(moves[r.Intn(len(moves))])
		}
	}
}

func TestLegalMovesAgainstDragontooth(t *testing.T) {
	games := 30
	if testing.Short() {
		games = 5
	}
	randomBoards(1, games, 150, func(b Board) {
		fen := b.FEN()
		if want, got := dragontoothMoves(fen), uciSet(b.LegalMoves()); !assert.Equal(t, want, got, fen) {
			t.FailNow()
		}
	})
}

func TestNotationAgainstNotnil(t *testing.T) {
	games := 20
	if testing.Short() {
		games = 3
	}
	randomBoards(2, games, 150, func(b Board) {
		fen := b.FEN()
		opt, err := notnil.FEN(fen)
		require.NoError(t, err, fen)
		pos := notnil.NewGame(opt).Position()

		want := make(map[string]string)
		for _, m := range pos.ValidMoves() {
			want[notnil.UCINotation{}.Encode(pos, m)] = notnil.AlgebraicNotation{}.Encode(pos, m)
		}
		got := make(map[string]string)
		for _, m := range b.LegalMoves() {
			got[m.String()] = b.SAN(m)
		}
		if !assert.Equal(t, want, got, fen) {
			t.FailNow()
		}

		switch pos.Status() {
		case notnil.Checkmate:
			assert.Equal(t, Checkmate, evaluateStatus(b, 1).Method, fen)
		case notnil.Stalemate:
			assert.Equal(t, Stalemate, evaluateStatus(b, 1).Method, fen)
		default:
			assert.True(t, b.HasLegalMoves(), fen)
		}
	})
}

func TestGameAgainstNotnil(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Ba4", "Nf6", "O-O", "Be7", "Re1", "b5", "Bb3", "d6", "c3", "O-O"}
	ours := NewGame()
	theirs := notnil.NewGame()
	for _, san := range moves {
		_, err := ours.MoveSAN(san)
		require.NoError(t, err)
		require.NoError(t, theirs.MoveStr(san))
	}
	// notnil also resets the half move clock when castling rights change,
	// so only placement, side, castling and en passant are compared
	assert.Equal(t, strings.Fields(theirs.Position().String())[:4], strings.Fields(ours.FEN())[:4])
	// c3 was the last pawn move; O-O is one quiet half move after it
	assert.Equal(t, 1, ours.Board().HalfMoveClock())
	assert.Equal(t, 9, ours.Board().MoveNumber())
}
