// Package zrand holds the Zobrist random constant tables consumed by the board
// core (spec §6). The core treats these as pre-populated constant tables owned
// by an external collaborator; we generate them once, at package init, from a
// fixed seed so hashes are reproducible across runs and across test fixtures.
package zrand

import "math/rand"

// PieceRNGNumbers holds one random key per (piece, square) pair. Pieces are
// indexed by piece+6 (the board's signed pieces range -6..6), giving 13 rows; row 6 (the
// empty-square sentinel) is never read but kept so callers can index directly
// with piece+6 without a bounds check.
var PieceRNGNumbers [13][64]uint64

// CastlingRNGNumbers holds one key per castling-rights nibble (bits 7..10 of
// board state, 16 possible combinations).
var CastlingRNGNumbers [16]uint64

// EnPassantRNGNumbers holds one key per en-passant file-flag state. Only the
// trailing-zero-count of the 16-bit en-passant field is ever used to index
// this table (spec §3), so 16 entries is sufficient.
var EnPassantRNGNumbers [16]uint64

// PlayerRNGNumber is XORed into the hash whenever the side to move is Black.
var PlayerRNGNumber uint64

func init() {
	// Fixed seed: hashes must be reproducible across test runs, matching the
	// teacher's own goosemg.initZobrist, which seeds math/rand with a fixed
	// constant rather than a time-based seed.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 13; p++ {
		for sq := 0; sq < 64; sq++ {
			PieceRNGNumbers[p][sq] = rnd.Uint64()
		}
	}
	for i := range CastlingRNGNumbers {
		CastlingRNGNumbers[i] = rnd.Uint64()
	}
	for i := range EnPassantRNGNumbers {
		EnPassantRNGNumbers[i] = rnd.Uint64()
	}
	PlayerRNGNumber = rnd.Uint64()
}
