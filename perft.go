package chess

// Perft counts the leaf nodes of the legal move tree of b to the given
// depth. It is the standard way to check a move generator against
// published reference counts.
func Perft(b Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(b.Apply(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's long algebraic form ("e2e4").
func PerftDivide(b Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range b.LegalMoves() {
		div[m.String()] = Perft(b.Apply(m), depth-1)
	}
	return div
}
