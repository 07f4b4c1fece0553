package chess

import "math/rand"

// Zobrist keys for piece-square pairs, castling rights, en passant file
// and side to move.
var (
	zobristPiece     [12][numOfSquaresInBoard]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
	zobristHalfMove  uint64
	zobristMoveNum   uint64
)

func init() {
	// fixed seed so hashes are stable across runs
	rnd := rand.New(rand.NewSource(0x5EED))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
	zobristHalfMove = rnd.Uint64() | 1
	zobristMoveNum = rnd.Uint64() | 1
}

func zobristIndex(p Piece) int {
	return p.Color.index()*6 + int(p.Type) - 1
}

// Hash returns the Zobrist key of the position. The move clocks are not
// part of the key.
func (b Board) Hash() uint64 {
	var key uint64
	for sq, p := range b.squares {
		if !p.Empty() {
			key ^= zobristPiece[zobristIndex(p)][sq]
		}
	}
	if b.turn == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castling]
	if b.enPassant != NoSquare {
		key ^= zobristEnPassant[b.enPassant.File()]
	}
	return key
}

// origin identifies the exact board a move was generated from. Unlike
// Hash it includes the move clocks, so a position that recurs later in
// a game does not share it.
func (b Board) origin() uint64 {
	return b.Hash() ^ zobristHalfMove*uint64(b.halfMoves+1) ^ zobristMoveNum*uint64(b.moveNumber)
}
