package board

import (
	"testing"

	myengine "github.com/Oliverans/GooseEngineMG/goosemg"
)

// vecFromFEN sources piece placement from the published external move
// generator, mirroring the teacher's own tests/makemove_test.go pattern of
// building fixtures from myengine rather than hand-writing every square.
// myengine indexes squares from White's home rank upward; this package
// indexes from White's home rank downward, so every square is looked up
// through mirrorSquare. Parsing FEN itself stays out of this module's
// scope (spec §1 Non-goals) — the external package does that work, and
// this module only receives the resulting 67-entry vector.
func vecFromFEN(t *testing.T, fen string, halfmoveClock, halfmoveCount int, state uint32) []int {
	t.Helper()
	eb, err := myengine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}

	vec := make([]int, 67)
	for sq := 0; sq < 64; sq++ {
		p := eb.PieceAt(myengine.Square(mirrorSquare(sq)))
		if p == myengine.NoPiece {
			continue
		}
		magnitude := int(uint8(p) & 7)
		if uint8(p)&8 != 0 {
			vec[sq] = -magnitude
		} else {
			vec[sq] = magnitude
		}
	}
	vec[64] = halfmoveClock
	vec[65] = halfmoveCount
	vec[66] = int(state)
	return vec
}

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func startingStateBits() uint32 {
	return setBit(setBit(setBit(setBit(0, whiteKingSideCastleBit), blackKingSideCastleBit), whiteQueenSideCastleBit), blackQueenSideCastleBit)
}

func newStartingBoard(t *testing.T) *Board {
	t.Helper()
	vec := vecFromFEN(t, startingFEN, 0, 0, startingStateBits())
	b, err := New(vec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}
