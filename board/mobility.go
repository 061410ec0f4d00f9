package board

import (
	"math/bits"

	"chesscore/pattern"
)

func slidingAttacksFor(piece int, occupied uint64, sq int) uint64 {
	switch piece {
	case Knight:
		return pattern.KnightPatterns[sq]
	case Bishop:
		return pattern.BishopAttacks(occupied, sq)
	case Rook:
		return pattern.RookAttacks(occupied, sq)
	case Queen:
		return pattern.QueenAttacks(occupied, sq)
	}
	return 0
}

// mobilityScore implements spec §4.7: knight, bishop, rook and queen
// mobility accumulated in ascending value order, each side's safe-target
// set shrinking as the opposing side's lower-value attacks are folded in.
func (b *Board) mobilityScore() int32 {
	empty := b.occBB[1]
	whitePieces := b.occBB[occIndex(White)]
	blackPieces := b.occBB[occIndex(Black)]

	whitePawnAtt := pattern.WhitePawnAttacks(b.pieceBBOf(White, Pawn))
	blackPawnAtt := pattern.BlackPawnAttacks(b.pieceBBOf(Black, Pawn))

	safeWhite := (empty | blackPieces) &^ blackPawnAtt
	safeBlack := (empty | whitePieces) &^ whitePawnAtt

	occ := b.GetOccupancyBitboard()

	var score int32
	for _, piece := range [4]int{Knight, Bishop, Rook, Queen} {
		var whiteAttUnion, blackAttUnion uint64

		white := b.pieceBBOf(White, piece)
		for white != 0 {
			sq := bits.TrailingZeros64(white)
			white &= white - 1
			att := slidingAttacksFor(piece, occ, sq)
			score += int32(bits.OnesCount64(att&safeWhite)) * 5
			whiteAttUnion |= att
		}

		black := b.pieceBBOf(Black, piece)
		for black != 0 {
			sq := bits.TrailingZeros64(black)
			black &= black - 1
			att := slidingAttacksFor(piece, occ, sq)
			score -= int32(bits.OnesCount64(att&safeBlack)) * 5
			blackAttUnion |= att
		}

		if piece != Queen {
			safeBlack &^= whiteAttUnion
			safeWhite &^= blackAttUnion
		}
	}

	return score
}
