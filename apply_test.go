package chess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMove(t *testing.T, b Board, uci string) Move {
	t.Helper()
	for _, m := range b.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("%s is not legal in %s", uci, b.FEN())
	return Move{}
}

func applyUCI(t *testing.T, b Board, moves ...string) Board {
	t.Helper()
	for _, uci := range moves {
		b = b.Apply(findMove(t, b, uci))
	}
	return b
}

func TestApplyDoesNotModifyReceiver(t *testing.T) {
	b := StartingBoard()
	next := b.Apply(findMove(t, b, "e2e4"))
	assert.Equal(t, StartingBoard(), b)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", next.FEN())
}

func TestApplyCastling(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10")
	require.NoError(t, err)

	ks := b.Apply(findMove(t, b, "e1g1"))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10", ks.FEN())
	assert.Equal(t, G1, ks.KingSquare(White))

	qs := ks.Apply(findMove(t, ks, "e8c8"))
	assert.Equal(t, "2kr3r/8/8/8/8/8/8/R4RK1 w - - 5 11", qs.FEN())
	assert.Equal(t, C8, qs.KingSquare(Black))
}

func TestApplyRevokesCastleRights(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  CastleRights
	}{
		{"king move", []string{"e1e2"}, BlackKingSide | BlackQueenSide},
		{"king side rook", []string{"h1h2"}, WhiteQueenSide | BlackKingSide | BlackQueenSide},
		{"queen side rook", []string{"a1a2"}, WhiteKingSide | BlackKingSide | BlackQueenSide},
		{"rook captured on home square", []string{"a1a8"}, WhiteKingSide | BlackKingSide},
		{"rook returns home", []string{"h1h2", "a8a7", "h2h1"}, WhiteQueenSide | BlackKingSide},
		{"king returns home", []string{"e1d1", "e8d8", "d1e1", "d8e8"}, NoCastleRights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			require.NoError(t, err)
			b = applyUCI(t, b, tt.moves...)
			assert.Equal(t, tt.want, b.CastleRights())
		})
	}
}

func TestApplyCastleRightsNeverReturn(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	b, err := ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	for ply := 0; ply < 300; ply++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next := b.Apply(moves[r.Intn(len(moves))])
		if next.castling&^b.castling != 0 {
			t.Fatalf("castling rights grew from %s to %s", b.castling, next.castling)
		}
		b = next
	}
}

func TestApplyEnPassantTarget(t *testing.T) {
	b := applyUCI(t, StartingBoard(), "e2e4")
	assert.Equal(t, E3, b.EnPassantSquare())
	b = applyUCI(t, b, "g8f6")
	assert.Equal(t, NoSquare, b.EnPassantSquare())
	b = applyUCI(t, b, "e4e5", "d7d5")
	assert.Equal(t, D6, b.EnPassantSquare())

	b = applyUCI(t, b, "e5d6")
	_, ok := b.PieceAt(D5)
	assert.False(t, ok, "captured pawn is removed")
	p, _ := b.PieceAt(D6)
	assert.Equal(t, Piece{Type: Pawn, Color: White}, p)
	assert.Equal(t, 0, b.HalfMoveClock())
}

func TestApplyClocks(t *testing.T) {
	b := StartingBoard()
	b = applyUCI(t, b, "g1f3")
	assert.Equal(t, 1, b.HalfMoveClock())
	assert.Equal(t, 1, b.MoveNumber())
	b = applyUCI(t, b, "g8f6")
	assert.Equal(t, 2, b.HalfMoveClock())
	assert.Equal(t, 2, b.MoveNumber())
	b = applyUCI(t, b, "e2e4")
	assert.Equal(t, 0, b.HalfMoveClock(), "pawn move resets")
	b = applyUCI(t, b, "f6e4")
	assert.Equal(t, 0, b.HalfMoveClock(), "capture resets")
	assert.Equal(t, 3, b.MoveNumber())
}

func TestApplyPromotion(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/p7/4K3 b - - 0 1")
	require.NoError(t, err)
	b = applyUCI(t, b, "a2a1r")
	p, ok := b.PieceAt(A1)
	require.True(t, ok)
	assert.Equal(t, Piece{Type: Rook, Color: Black}, p)
	assert.True(t, b.InCheck())
}
