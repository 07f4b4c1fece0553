package main

import (
	"testing"

	"github.com/mway1/chess"
)

func TestRunDivideVerify(t *testing.T) {
	for _, fen := range []string{
		chess.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	} {
		b, err := chess.ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if !runDivide(b, 2, true) {
			t.Fatalf("divide mismatch for %s", fen)
		}
	}
}

func TestOraclePerft(t *testing.T) {
	var total uint64
	for _, n := range oracleDivide(chess.StartFEN, 3) {
		total += n
	}
	if total != 8902 {
		t.Fatalf("expected 8902 nodes but got %d", total)
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("PERFT_DEPTH", "4")
	if got := getenvInt("PERFT_DEPTH", 1); got != 4 {
		t.Fatalf("expected 4 but got %d", got)
	}
	t.Setenv("PERFT_DEPTH", "deep")
	if got := getenvInt("PERFT_DEPTH", 1); got != 1 {
		t.Fatalf("expected fallback 1 but got %d", got)
	}
	if got := getenv("PERFT_UNSET_FOR_TEST", "x"); got != "x" {
		t.Fatalf("expected fallback x but got %s", got)
	}
}
