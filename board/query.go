package board

import (
	"fmt"
	"math/bits"

	"chesscore/history"
	"chesscore/pattern"
)

// GetHash returns the incrementally maintained Zobrist hash.
func (b *Board) GetHash() uint64 { return b.hash }

// GetActivePlayer derives the side to move from parity of the half-move
// count: the position starts with White to move, so an even count means
// White is on the move, odd means Black. The board has no separate
// side-to-move field (spec §3's Data Model table does not list one), so
// this is the one source of truth every other query must agree with.
func (b *Board) GetActivePlayer() Color {
	if b.halfmoveCount%2 == 0 {
		return White
	}
	return Black
}

func (b *Board) GetHalfmoveCount() int { return b.halfmoveCount }
func (b *Board) GetHalfmoveClock() int { return b.halfmoveClock }
func (b *Board) GetFullMoveCount() int { return b.halfmoveCount/2 + 1 }

// GetItem returns the signed piece occupying sq, 0 if empty.
func (b *Board) GetItem(sq int) int { return b.mailbox[sq] }

// GetBitboard returns the bitboard for one signed piece (piece+6 slot).
func (b *Board) GetBitboard(piece int) uint64 { return b.pieceBB[bitboardIndex(piece)] }

// GetAllPieceBitboard returns the union of every piece bitboard for one
// colour — exactly the occ_bb slot that colour already occupies.
func (b *Board) GetAllPieceBitboard(c Color) uint64 { return b.occBB[occIndex(c)] }

// GetOccupancyBitboard returns every occupied square, either colour.
func (b *Board) GetOccupancyBitboard() uint64 { return b.occBB[0] | b.occBB[2] }

// FindKingPosition returns the cached king square for a colour.
func (b *Board) FindKingPosition(c Color) int {
	if c == White {
		return b.whiteKingSq
	}
	return b.blackKingSq
}

// IsEndgame returns the cached endgame flag; it is only ever refreshed by
// an explicit UpdateEndgameStatus call (spec §9 Open Questions).
func (b *Board) IsEndgame() bool { return b.endgame }

// UpdateEndgameStatus recomputes and caches the endgame flag: true when
// there are three or fewer pawns on the board (both sides together), or
// three or fewer non-king, non-pawn pieces total.
func (b *Board) UpdateEndgameStatus() {
	pawns := bits.OnesCount64(b.pieceBB[bitboardIndex(Pawn)] | b.pieceBB[bitboardIndex(-Pawn)])
	total := bits.OnesCount64(b.GetOccupancyBitboard())
	nonKingNonPawn := total - 2 - pawns
	b.endgame = pawns <= 3 || nonKingNonPawn <= 3
}

// SetState, SetHalfmoveClock and InitializeHalfmoveCount let an owner
// reposition a freshly constructed Board to a known mid-game state without
// going through perform_move (spec §3 Lifecycle).
func (b *Board) SetState(state uint32)           { b.state = state }
func (b *Board) SetHalfmoveClock(clock int)       { b.halfmoveClock = clock }
func (b *Board) InitializeHalfmoveCount(n int)    { b.halfmoveCount = n }
func (b *Board) SetHistory(h *history.PositionHistory) { b.positionHistory = h }

// IsFiftyMoveDraw reports whether the half-move clock alone already forces
// a draw.
func (b *Board) IsFiftyMoveDraw() bool { return b.halfmoveClock >= 100 }

// IsThreefoldRepetition delegates to the external position-history
// collaborator.
func (b *Board) IsThreefoldRepetition() bool { return b.positionHistory.IsThreefoldRepetition() }

// IsInsufficientMaterialDraw implements the three checked patterns of
// spec §4.8: K vs K; three pieces with a single minor; K+B vs K+B with
// same-coloured bishops.
func (b *Board) IsInsufficientMaterialDraw() bool {
	total := bits.OnesCount64(b.GetOccupancyBitboard())
	switch total {
	case 2:
		return true
	case 3:
		minors := b.pieceBB[bitboardIndex(Bishop)] | b.pieceBB[bitboardIndex(-Bishop)] |
			b.pieceBB[bitboardIndex(Knight)] | b.pieceBB[bitboardIndex(-Knight)]
		return bits.OnesCount64(minors) == 1
	case 4:
		wb := b.pieceBB[bitboardIndex(Bishop)]
		bb := b.pieceBB[bitboardIndex(-Bishop)]
		if bits.OnesCount64(wb) != 1 || bits.OnesCount64(bb) != 1 {
			return false
		}
		others := bits.OnesCount64(b.pieceBB[bitboardIndex(Pawn)]|b.pieceBB[bitboardIndex(-Pawn)]) +
			bits.OnesCount64(b.pieceBB[bitboardIndex(Knight)]|b.pieceBB[bitboardIndex(-Knight)]) +
			bits.OnesCount64(b.pieceBB[bitboardIndex(Rook)]|b.pieceBB[bitboardIndex(-Rook)]) +
			bits.OnesCount64(b.pieceBB[bitboardIndex(Queen)]|b.pieceBB[bitboardIndex(-Queen)])
		if others != 0 {
			return false
		}
		sameLight := wb&pattern.LightColoredFieldPattern != 0 && bb&pattern.LightColoredFieldPattern != 0
		sameDark := wb&pattern.DarkColoredFieldPattern != 0 && bb&pattern.DarkColoredFieldPattern != 0
		return sameLight || sameDark
	default:
		return false
	}
}

// IsEngineDraw is the composite draw query the search driver calls after
// every move (spec §4.8).
func (b *Board) IsEngineDraw() bool {
	return b.positionHistory.IsSingleRepetition() || b.IsFiftyMoveDraw() || b.IsInsufficientMaterialDraw()
}

// IsPawnMoveCloseToPromotion reports whether a pawn moving to sq has
// landed within two ranks of its promotion rank. Named in spec §6's
// consumed/exposed list without an algorithm; defined here (grounded on
// the teacher's ranksAbove/ranksBelow rank-mask idiom) to mean: the piece
// is a pawn and its destination rank is within two ranks of rank 0 for
// White or rank 7 for Black.
func (b *Board) IsPawnMoveCloseToPromotion(pieceID, to int) bool {
	if abs(pieceID) != Pawn {
		return false
	}
	rank := to / 8
	if pieceID > 0 {
		return rank <= 2
	}
	return rank >= 5
}

// WouldGiveCheck predicts whether playing (pieceID, from, to) gives check,
// without leaving any externally visible trace: it plays the move, checks,
// then undoes it. Grounded on goosemg.Board.GivesCheck's role as a
// move-ordering helper that does not commit to the move.
func (b *Board) WouldGiveCheck(pieceID, from, to int) bool {
	mover := sign(b.mailbox[from])
	removed := b.PerformMove(pieceID, from, to)
	gives := b.InCheck(-mover)
	b.UndoMove(pieceID, from, to, removed)
	return gives
}

// Validate rebuilds bitboards, occupancy and hash from the mailbox and
// reports any inconsistency, mirroring goosemg.Board.Validate. Never
// called on the hot path; for tests and cmd/scoretool -validate.
func (b *Board) Validate() error {
	var pieceBB [13]uint64
	var occBB [3]uint64
	occBB[1] = ^uint64(0)
	for sq := 0; sq < 64; sq++ {
		piece := b.mailbox[sq]
		if piece == Empty {
			continue
		}
		bit := uint64(1) << uint(sq)
		pieceBB[bitboardIndex(piece)] |= bit
		occBB[occIndex(sign(piece))] |= bit
		occBB[1] &^= bit
	}
	for i := range pieceBB {
		if pieceBB[i] != b.pieceBB[i] {
			return fmt.Errorf("board: piece_bb[%d] inconsistent with mailbox", i-6)
		}
	}
	for i := range occBB {
		if occBB[i] != b.occBB[i] {
			return fmt.Errorf("board: occ_bb[%d] inconsistent with mailbox", i)
		}
	}
	if bits.TrailingZeros64(b.pieceBB[bitboardIndex(King)]) != b.whiteKingSq {
		return fmt.Errorf("board: white_king_sq stale")
	}
	if bits.TrailingZeros64(b.pieceBB[bitboardIndex(-King)]) != b.blackKingSq {
		return fmt.Errorf("board: black_king_sq stale")
	}
	if b.RecalculateHash() != b.hash {
		return fmt.Errorf("board: incremental hash diverged from recalculate_hash")
	}
	return nil
}
