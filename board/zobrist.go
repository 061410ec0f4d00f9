package board

import "chesscore/zrand"

// RecalculateHash rebuilds the Zobrist hash from scratch from the current
// mailbox and state, for use after bulk mutation (spec §6). It does not
// assign the result; callers that want to refresh b.hash do so explicitly.
func (b *Board) RecalculateHash() uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		piece := b.mailbox[sq]
		if piece == Empty {
			continue
		}
		h ^= zrand.PieceRNGNumbers[bitboardIndex(piece)][sq]
	}
	h ^= zrand.CastlingRNGNumbers[castlingIndex(b.state)]
	if idx := enPassantIndex(b.state); idx < 16 {
		h ^= zrand.EnPassantRNGNumbers[idx]
	}
	if b.GetActivePlayer() == Black {
		h ^= zrand.PlayerRNGNumber
	}
	return h
}
