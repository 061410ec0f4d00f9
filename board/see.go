package board

// pieceStaticValue looks up a magnitude's midgame material value, the unit
// SEE swaps gains and losses in.
func pieceStaticValue(magnitude int) int32 { return int32(PieceValues[magnitude]) }

// SeeScore runs the static exchange evaluation for a capture sequence on
// target, starting from own_piece_id capturing captured_piece_id from
// square from, with opp_color to recapture first (spec §4.5).
func (b *Board) SeeScore(oppColor Color, from, target int, ownPieceID, capturedPieceID int) int32 {
	score := pieceStaticValue(abs(capturedPieceID))
	trophy := pieceStaticValue(abs(ownPieceID))

	occupied := b.GetOccupancyBitboard() &^ (uint64(1) << uint(from))

	ownColor := -oppColor

	for {
		attackerSq := b.FindSmallestAttacker(occupied, oppColor, target)
		if attackerSq < 0 {
			return score
		}
		score -= trophy
		trophy = pieceStaticValue(abs(b.mailbox[attackerSq]))
		occupied &^= uint64(1) << uint(attackerSq)
		if score+trophy < 0 {
			return score
		}

		attackerSq = b.FindSmallestAttacker(occupied, ownColor, target)
		if attackerSq < 0 {
			return score
		}
		score += trophy
		trophy = pieceStaticValue(abs(b.mailbox[attackerSq]))
		occupied &^= uint64(1) << uint(attackerSq)
		if score-trophy > 0 {
			return score
		}
	}
}
