package board

import "testing"

func TestStartingPositionScenario(t *testing.T) {
	b := newStartingBoard(t)

	if got := b.GetScore(); got != 0 {
		t.Errorf("GetScore() = %d, want 0 (symmetric starting position)", got)
	}
	if b.GetHash() == 0 {
		t.Errorf("GetHash() = 0, want non-zero")
	}
	if b.GetActivePlayer() != White {
		t.Errorf("GetActivePlayer() = %v, want White", b.GetActivePlayer())
	}
	if whiteHasCastled(b.state) || blackHasCastled(b.state) {
		t.Errorf("starting position should have no castling done")
	}
	if !whiteKingSideRight(b.state) || !whiteQueenSideRight(b.state) ||
		!blackKingSideRight(b.state) || !blackQueenSideRight(b.state) {
		t.Errorf("starting position should have all castling rights present")
	}
}

// TestGetScoreAsymmetricPawnAdvance pins GetScore to a hand-computed value
// on a position with no symmetry to hide a PST transcription error behind:
// a lone White pawn pushed to e4, off its home rank. Both kings sit on the
// same file and mirror each other's square exactly, so their PST
// contributions cancel and the king-shield/castling/mobility/king-danger
// terms are all zero here, leaving the score wholly determined by the
// pawn's mid/endgame PST entries and the material/endgame phase blend:
// mg = 100 + (-23*5) = -15, eg = 120 + (-19*5) = 25, phase = 1/24, so
// score = (-15*1 + 25*23) / 24 = 23.
func TestGetScoreAsymmetricPawnAdvance(t *testing.T) {
	vec := make([]int, 67)
	vec[7*8+4] = King  // White king, e1
	vec[0*8+4] = -King // Black king, e8
	vec[4*8+4] = Pawn  // White pawn, e4

	b, err := New(vec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := b.GetScore(), int32(23); got != want {
		t.Errorf("GetScore() = %d, want %d", got, want)
	}
}

func TestConstructionRejectsShortVector(t *testing.T) {
	if _, err := New(make([]int, 10)); err == nil {
		t.Errorf("New with short vector: want error, got nil")
	}
}

func TestConstructionRejectsMissingKing(t *testing.T) {
	vec := make([]int, 67)
	vec[4] = King // White king only, no Black king
	if _, err := New(vec); err == nil {
		t.Errorf("New with missing Black king: want error, got nil")
	}
}

// TestMoveUndoRoundTrip covers property 1 of the spec's testable
// properties: perform then undo restores hash, score, state, clock,
// mailbox, bitboards and king squares exactly.
func TestMoveUndoRoundTrip(t *testing.T) {
	b := newStartingBoard(t)

	type snapshot struct {
		hash              uint64
		mid, eg           int16
		state             uint32
		clock             int
		mailbox           [64]int
		pieceBB           [13]uint64
		occBB             [3]uint64
		whiteKSq, blackKSq int
	}
	snap := func() snapshot {
		return snapshot{b.hash, b.scoreMid, b.scoreEg, b.state, b.halfmoveClock,
			b.mailbox, b.pieceBB, b.occBB, b.whiteKingSq, b.blackKingSq}
	}

	before := snap()

	// 1. e2-e4 : our square convention has White's second rank at row 6.
	from, to := 6*8+4, 4*8+4
	removed := b.PerformMove(Pawn, from, to)
	if removed != 0 {
		t.Fatalf("PerformMove(e2-e4) returned %d, want 0", removed)
	}
	if b.GetHalfmoveCount() != 1 {
		t.Errorf("halfmove_count = %d, want 1", b.GetHalfmoveCount())
	}
	if b.GetHalfmoveClock() != 0 {
		t.Errorf("halfmove_clock = %d, want 0 (pawn move resets it)", b.GetHalfmoveClock())
	}

	b.UndoMove(Pawn, from, to, removed)
	after := snap()

	if before != after {
		t.Errorf("perform/undo round trip changed board state:\nbefore=%+v\nafter=%+v", before, after)
	}
}

func TestNullMoveRoundTrip(t *testing.T) {
	b := newStartingBoard(t)
	beforeHash := b.GetHash()
	beforeCount := b.GetHalfmoveCount()

	b.PerformNullMove()
	if b.GetHalfmoveCount() != beforeCount+1 {
		t.Errorf("halfmove_count after null move = %d, want %d", b.GetHalfmoveCount(), beforeCount+1)
	}
	b.UndoNullMove()

	if b.GetHash() != beforeHash {
		t.Errorf("hash after null move round trip = %d, want %d", b.GetHash(), beforeHash)
	}
	if b.GetHalfmoveCount() != beforeCount {
		t.Errorf("halfmove_count after null move round trip = %d, want %d", b.GetHalfmoveCount(), beforeCount)
	}
}

func TestRecalculateHashMatchesIncremental(t *testing.T) {
	b := newStartingBoard(t)
	from, to := 6*8+4, 4*8+4
	b.PerformMove(Pawn, from, to)

	if got, want := b.RecalculateHash(), b.GetHash(); got != want {
		t.Errorf("RecalculateHash() = %d, incremental hash = %d, want equal", got, want)
	}
}

func TestEnPassantFlagLifecycle(t *testing.T) {
	b := newStartingBoard(t)
	from, to := 6*8+4, 4*8+4 // e2-e4, a double push

	b.PerformMove(Pawn, from, to)
	whiteFlagBit := uint(enPassantBlackShift + 4) // Black may now capture on file e.
	if !hasBit(b.state, whiteFlagBit) {
		t.Fatalf("double push did not set the en-passant flag for file e")
	}

	b.PerformMove(Pawn, 1*8+4, 3*8+4) // Black e7-e5 reply, a double push of its own.
	if hasBit(b.state, whiteFlagBit) {
		t.Errorf("en-passant flag from the first push should be cleared after one more ply")
	}
}

func TestCastlingScenario(t *testing.T) {
	vec := vecFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 0, 0, startingStateBits())
	b, err := New(vec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	kingFrom, kingTo := 7*8+4, 7*8+6 // White king e1-g1
	removed := b.PerformMove(King, kingFrom, kingTo)
	if removed != 0 {
		t.Fatalf("castling move returned %d, want 0", removed)
	}
	if !whiteHasCastled(b.state) {
		t.Errorf("White has-castled flag not set")
	}
	if whiteKingSideRight(b.state) || whiteQueenSideRight(b.state) {
		t.Errorf("White castling rights should both be cleared after castling")
	}
	if b.GetItem(7*8+5) != Rook {
		t.Errorf("rook did not arrive on f1 (square %d): got %d", 7*8+5, b.GetItem(7*8+5))
	}
	if b.GetItem(7*8+7) != Empty {
		t.Errorf("rook's original square h1 should now be empty")
	}
	if b.FindKingPosition(White) != kingTo {
		t.Errorf("white_king_sq = %d, want %d", b.FindKingPosition(White), kingTo)
	}

	before := b.RecalculateHash()
	b.UndoMove(King, kingFrom, kingTo, removed)
	if b.GetItem(kingFrom) != King {
		t.Errorf("undo did not restore king to e1")
	}
	if b.GetItem(7*8+7) != Rook {
		t.Errorf("undo did not restore rook to h1")
	}
	if whiteHasCastled(b.state) {
		t.Errorf("undo should restore the pre-castling state (has-castled cleared)")
	}
	_ = before
}

func TestEnPassantCaptureScenario(t *testing.T) {
	// Black pawn just double-pushed to d5 (our index 3*8+3); White pawn on
	// e5 captures it en passant, landing on d6.
	vec := make([]int, 67)
	vec[7*8+4] = King
	vec[0*8+4] = -King
	vec[3*8+3] = -Pawn // black pawn on d5
	vec[3*8+4] = Pawn  // white pawn on e5
	b, err := New(vec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	from, to := 3*8+4, 2*8+3 // e5 captures d6
	removed := b.PerformMove(Pawn, from, to)
	if removed != EnPassantBit {
		t.Errorf("PerformMove en passant returned %d, want EnPassantBit", removed)
	}
	if b.GetItem(3*8+3) != Empty {
		t.Errorf("captured black pawn on d5 should be removed")
	}
	if b.GetItem(to) != Pawn {
		t.Errorf("capturing pawn should be on d6")
	}

	b.UndoMove(Pawn, from, to, removed)
	if b.GetItem(3*8+3) != -Pawn {
		t.Errorf("undo should restore black pawn on d5")
	}
	if b.GetItem(from) != Pawn {
		t.Errorf("undo should restore white pawn on e5")
	}
	if b.GetItem(to) != Empty {
		t.Errorf("undo should leave d6 empty")
	}
}

func TestInsufficientMaterialKingVsKing(t *testing.T) {
	vec := make([]int, 67)
	vec[0] = King
	vec[63] = -King
	b, err := New(vec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !b.IsInsufficientMaterialDraw() {
		t.Errorf("K vs K should be insufficient material")
	}
}

func TestBoardValidate(t *testing.T) {
	b := newStartingBoard(t)
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() on starting position: %v", err)
	}
}
