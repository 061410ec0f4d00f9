package board

import "testing"

// TestThreefoldRepetitionByKnightShuffle reproduces spec §8 scenario 6: a
// reversible knight shuffle returns to the same position three times, and
// both repetition queries recognise it once the third occurrence lands.
func TestThreefoldRepetitionByKnightShuffle(t *testing.T) {
	vec := make([]int, 67)
	vec[4] = King
	vec[60] = -King
	vec[0] = Knight
	b, err := New(vec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	shuffle := func() {
		b.PerformMove(Knight, 0, 17)  // knight out
		b.PerformNullMove()           // black passes (shuffle doesn't need legality)
		b.PerformMove(Knight, 17, 0)  // knight back
		b.PerformNullMove()
	}

	if b.IsThreefoldRepetition() {
		t.Fatalf("fresh position should not already be a threefold repetition")
	}

	shuffle() // position recurs once: two occurrences total
	if b.IsThreefoldRepetition() {
		t.Errorf("two occurrences should not yet be a threefold repetition")
	}
	if !b.IsEngineDraw() {
		t.Errorf("two occurrences should already trip the single-repetition engine draw")
	}

	shuffle() // position recurs again: three occurrences total
	if !b.IsThreefoldRepetition() {
		t.Errorf("three occurrences should be a threefold repetition")
	}
	if !b.IsEngineDraw() {
		t.Errorf("IsEngineDraw should report true once threefold repetition is reached")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	b := newStartingBoard(t)
	b.SetHalfmoveClock(100)
	if !b.IsFiftyMoveDraw() {
		t.Errorf("halfmove_clock=100 should be a fifty-move draw")
	}
	if !b.IsEngineDraw() {
		t.Errorf("IsEngineDraw should report true once the fifty-move clock is reached")
	}
}
