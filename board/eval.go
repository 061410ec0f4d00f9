package board

import (
	"math/bits"

	"chesscore/pattern"
)

const (
	kingShieldBonus   = 21
	castledBonus      = 28
	lostQueenSidePen  = 18
	lostKingSidePen   = 21
	pawnCoverBonus    = 14
	doubledPawnPenalty = 6
	passedPawnUnit    = 25
	totalPhase        = 24
)

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// GetScore is the phased evaluator (spec §4.6). The result is
// side-independent and positive when the position favours White; the
// caller negates it for Black to move.
func (b *Board) GetScore() int32 {
	whitePawns := b.pieceBBOf(White, Pawn)
	blackPawns := b.pieceBBOf(Black, Pawn)

	mgScore := int32(b.scoreMid)
	egScore := int32(b.scoreEg)

	// 1. King shield bonus, midgame only.
	mgScore += int32(bits.OnesCount64(whitePawns&pattern.WhiteKingShieldPatterns[b.whiteKingSq])) * kingShieldBonus
	mgScore -= int32(bits.OnesCount64(blackPawns&pattern.BlackKingShieldPatterns[b.blackKingSq])) * kingShieldBonus

	// 2. Castling bonus/penalty, midgame only.
	mgScore += castlingTerm(b.state, White)
	mgScore -= castlingTerm(b.state, Black)

	// 3. Phase interpolation.
	phase := int32(bits.OnesCount64(whitePawns|blackPawns)) +
		4*int32(boolToInt(b.pieceBBOf(White, Queen) != 0)) +
		4*int32(boolToInt(b.pieceBBOf(Black, Queen) != 0))
	egPhase := int32(totalPhase) - phase
	score := (mgScore*phase + egScore*egPhase) / totalPhase

	// 4. Pawn-cover.
	whitePawnAtt := pattern.WhitePawnAttacks(whitePawns)
	blackPawnAtt := pattern.BlackPawnAttacks(blackPawns)
	score += int32(bits.OnesCount64((whitePawns|b.pieceBBOf(White, Knight))&whitePawnAtt)) * pawnCoverBonus
	score -= int32(bits.OnesCount64((blackPawns|b.pieceBBOf(Black, Knight))&blackPawnAtt)) * pawnCoverBonus

	// 5. Mobility.
	score += b.mobilityScore()

	// 6. Doubled pawn penalty.
	score -= int32(doubledPawnCount(whitePawns)) * doubledPawnPenalty
	score += int32(doubledPawnCount(blackPawns)) * doubledPawnPenalty

	// 7. Passed pawns.
	score += b.passedPawnScore(White)
	score -= b.passedPawnScore(Black)

	// 8. King danger.
	score -= b.kingDanger(White)
	score += b.kingDanger(Black)

	// 9. Pawnless-draw dampening.
	score = dampenPawnlessDraw(score, whitePawns == 0, blackPawns == 0, b.halfmoveClock)

	return score
}

func castlingTerm(state uint32, c Color) int32 {
	if c == White {
		if whiteHasCastled(state) {
			return castledBonus
		}
		var pen int32
		if !whiteQueenSideRight(state) {
			pen += lostQueenSidePen
		}
		if !whiteKingSideRight(state) {
			pen += lostKingSidePen
		}
		return -pen
	}
	if blackHasCastled(state) {
		return castledBonus
	}
	var pen int32
	if !blackQueenSideRight(state) {
		pen += lostQueenSidePen
	}
	if !blackKingSideRight(state) {
		pen += lostKingSidePen
	}
	return -pen
}

// doubledPawnCount implements spec §4.6's rotate-right doubling detector:
// a pawn has a same-file companion within four ranks iff OR-ing the pawn
// bitboard rotated right by 8, 16, 24 and 32 still has a bit where this
// pawn stands. A true 64-bit rotate is required, not a shift, so pawns on
// wrapping files are not falsely matched (spec §9).
func doubledPawnCount(pawns uint64) int {
	doubled := bits.RotateLeft64(pawns, -8) | bits.RotateLeft64(pawns, -16) | bits.RotateLeft64(pawns, -24) | bits.RotateLeft64(pawns, -32)
	return bits.OnesCount64(pawns & doubled)
}

func (b *Board) passedPawnScore(c Color) int32 {
	pawns := b.pieceBBOf(c, Pawn)
	enemyAll := b.occBB[occIndex(-c)]
	enemyPawns := b.pieceBBOf(-c, Pawn)

	var score int32
	for bb := pawns; bb != 0; {
		sq := bits.TrailingZeros64(bb)
		bb &= bb - 1

		rank, file := sq/8, sq&7
		var distance int
		if c == White {
			distance = rank
		} else {
			distance = 7 - rank
		}
		if distance > 4 {
			continue
		}

		ownPath := freepath(c, sq)
		if ownPath&enemyAll != 0 {
			continue
		}

		neighborPawnBlocked := false
		neighborClear := true
		if file > 0 {
			np := freepath(c, sq-1)
			if np&enemyPawns != 0 {
				neighborPawnBlocked = true
			}
			if np&enemyAll != 0 {
				neighborClear = false
			}
		}
		if file < 7 {
			np := freepath(c, sq+1)
			if np&enemyPawns != 0 {
				neighborPawnBlocked = true
			}
			if np&enemyAll != 0 {
				neighborClear = false
			}
		}
		if neighborPawnBlocked {
			continue
		}

		bonus := int32(passedPawnUnit) * int32(5-distance)
		if neighborClear {
			bonus += int32(1<<uint(5-distance)) + int32(5-distance)
		}
		score += bonus
	}
	return score
}

func freepath(c Color, sq int) uint64 {
	if c == White {
		return pattern.WhitePawnFreepathPatterns[sq]
	}
	return pattern.BlackPawnFreepathPatterns[sq]
}

func (b *Board) kingDanger(c Color) int32 {
	kingSq := b.FindKingPosition(c)
	zone := pattern.KingDangerZonePatterns[kingSq]
	enemyNonPawn := b.occBB[occIndex(-c)] &^ b.pieceBBOf(-c, Pawn)

	count := bits.OnesCount64(enemyNonPawn & zone)
	if count < 1 {
		return 0
	}
	q := bits.OnesCount64(b.pieceBBOf(-c, Queen) & zone)
	danger := minInt32(21<<uint(count+q-1), 500)
	return danger
}

// dampenPawnlessDraw implements spec §4.6's theoretical-draw dampening: a
// side with no pawns whose advantage is modest (strictly between 100 and
// 400) sees that advantage scaled toward zero as the fifty-move clock
// runs out. Division truncates toward zero; this is deliberate (spec §9),
// not a bug to "fix" to rounding.
func dampenPawnlessDraw(score int32, whitePawnless, blackPawnless bool, halfmoveClock int) int32 {
	mag := absInt32(score)
	if mag <= 100 || mag >= 400 {
		return score
	}
	if score > 0 && !whitePawnless {
		return score
	}
	if score < 0 && !blackPawnless {
		return score
	}
	factor := maxInt32(0, 64-int32(halfmoveClock))
	return score * factor / 64
}
