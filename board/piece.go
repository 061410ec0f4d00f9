// Package board implements the chess position evaluator's core: a dual
// mailbox+bitboard board representation kept incrementally consistent under
// make/unmake, together with its Zobrist hashing, static exchange
// evaluation and phased evaluator. Evaluator and SEE logic live in this
// same package (eval.go, mobility.go, see.go) rather than importable
// sub-packages, because get_score/see_score/in_check/is_attacked must be
// literal Board methods and Go forbids import cycles between a package and
// one that calls back into it.
package board

// Piece magnitudes. A piece value's sign carries colour: positive is
// White, negative is Black, zero is empty. This mirrors goosemg's packed
// Piece byte, reshaped into the spec's signed-magnitude convention.
const (
	Empty  = 0
	Pawn   = 1
	Knight = 2
	Bishop = 3
	Rook   = 4
	Queen  = 5
	King   = 6
)

// Color is +1 for White, -1 for Black.
type Color int

const (
	White Color = 1
	Black Color = -1
)

// Original corner rook squares and the EnPassantBit return-value flag
// (spec §4.3, §6), using this package's square convention (White's home
// rank is 56..63).
const (
	WhiteKingSideRookStart  = 63
	WhiteQueenSideRookStart = 56
	BlackKingSideRookStart  = 7
	BlackQueenSideRookStart = 0

	EnPassantBit int32 = -1 << 31
)

// PieceValues and EgPieceValues are the external material constants the
// PST builder consumes (spec §6), indexed by piece magnitude 1..6. Index 0
// is unused padding so callers can index directly by magnitude.
var PieceValues = [7]int16{0, 100, 320, 330, 500, 900, 0}
var EgPieceValues = [7]int16{0, 120, 300, 320, 530, 950, 0}

// pstMultiplier scales the raw midgame/endgame PST deltas before they are
// packed with material value, grounded on spec §4.2's mult table.
var pstMultiplier = [7]int16{0, 5, 3, 6, 3, 3, 6}

func sign(piece int) Color {
	if piece > 0 {
		return White
	}
	return Black
}

func abs(piece int) int {
	if piece < 0 {
		return -piece
	}
	return piece
}

// bitboardIndex maps a signed piece to its piece_bb slot (piece+6).
func bitboardIndex(piece int) int { return piece + 6 }

// occIndex maps a colour to its occ_bb slot (colour+1): Black=0, White=2.
func occIndex(c Color) int { return int(c) + 1 }
