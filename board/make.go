package board

import "chesscore/zrand"

// PerformMove plays (piece_id, from, to) — colour is inferred from the
// piece already standing on from — and returns EMPTY, the magnitude of a
// normally captured piece, or EnPassantBit (spec §4.3). piece_id already
// reflects any promotion choice the caller made.
func (b *Board) PerformMove(pieceID, from, to int) int32 {
	mover := sign(b.mailbox[from])
	color := mover

	b.pushHistory()
	b.halfmoveCount++
	b.clearEnPassantFlags()
	b.hash ^= zrand.PlayerRNGNumber

	signedPiece := int(color) * abs(pieceID)
	target := b.mailbox[to]

	if target != Empty {
		captured := abs(target)
		b.removePiece(from)
		b.removePiece(to)
		b.addPiece(signedPiece, to)
		b.halfmoveClock = 0
		if abs(pieceID) == King {
			b.setKingSquare(color, to)
			b.clearCastleRightBit(kingSideBit(color))
			b.clearCastleRightBit(queenSideBit(color))
		}
		b.positionHistory.Push(b.hash)
		return int32(captured)
	}

	if abs(pieceID) == Pawn {
		diff := from - to
		if diff == 16 || diff == -16 {
			b.removePiece(from)
			b.addPiece(signedPiece, to)
			b.setEnPassantFlag(from, color)
			b.halfmoveClock = 0
			b.positionHistory.Push(b.hash)
			return 0
		}
		if diff == 7 || diff == -7 || diff == 9 || diff == -9 {
			capturedSq := (from/8)*8 + (to & 7)
			b.removePiece(from)
			b.removePiece(capturedSq)
			b.addPiece(signedPiece, to)
			b.halfmoveClock = 0
			b.positionHistory.Push(b.hash)
			return EnPassantBit
		}
		b.removePiece(from)
		b.addPiece(signedPiece, to)
		b.halfmoveClock = 0
		b.positionHistory.Push(b.hash)
		return 0
	}

	b.removePiece(from)
	b.addPiece(signedPiece, to)
	b.halfmoveClock++

	if abs(pieceID) == King {
		b.setKingSquare(color, to)
		b.clearCastleRightBit(kingSideBit(color))
		b.clearCastleRightBit(queenSideBit(color))

		diff := to - from
		if diff == 2 || diff == -2 {
			rank := from / 8
			var rookFrom, rookTo int
			if diff == 2 {
				rookFrom, rookTo = rank*8+7, to-1
			} else {
				rookFrom, rookTo = rank*8+0, to+1
			}
			b.removePiece(rookFrom)
			b.addPiece(int(color)*Rook, rookTo)
			b.state = setBit(b.state, castledBit(color))
		}
	}

	b.positionHistory.Push(b.hash)
	return 0
}

// UndoMove is the exact inverse of PerformMove: it moves pieces back
// without any incremental accounting (spec §4.3), using the raw add/remove
// variants so scores are never double-counted, then restores score, hash,
// state and clock wholesale from the history frame.
func (b *Board) UndoMove(pieceID, from, to int, removed int32) {
	mover := sign(b.mailbox[to])
	color := mover
	signedPiece := int(color) * abs(pieceID)

	switch {
	case removed == EnPassantBit:
		b.removePieceRaw(to)
		capturedSq := (from/8)*8 + (to & 7)
		b.addPieceRaw(int(-color)*Pawn, capturedSq)
		b.addPieceRaw(signedPiece, from)
	case removed != 0:
		captured := int(removed)
		b.removePieceRaw(to)
		b.addPieceRaw(int(-color)*captured, to)
		b.addPieceRaw(signedPiece, from)
	default:
		b.removePieceRaw(to)
		b.addPieceRaw(signedPiece, from)
		if abs(pieceID) == King {
			diff := to - from
			if diff == 2 || diff == -2 {
				rank := from / 8
				var rookFrom, rookTo int
				if diff == 2 {
					rookFrom, rookTo = to-1, rank*8+7
				} else {
					rookFrom, rookTo = to+1, rank*8+0
				}
				rookPiece := b.removePieceRaw(rookFrom)
				b.addPieceRaw(rookPiece, rookTo)
			}
		}
	}

	if abs(pieceID) == King {
		b.setKingSquare(color, from)
	}

	b.positionHistory.Pop()
	b.popHistory()
}

// PerformNullMove flips the side to move without moving a piece: pushes a
// frame, advances the ply count, clears en-passant flags, flips the
// Zobrist side bit.
func (b *Board) PerformNullMove() {
	b.pushHistory()
	b.halfmoveCount++
	b.clearEnPassantFlags()
	b.hash ^= zrand.PlayerRNGNumber
	b.positionHistory.Push(b.hash)
}

// UndoNullMove restores the frame pushed by PerformNullMove.
func (b *Board) UndoNullMove() {
	b.positionHistory.Pop()
	b.popHistory()
}

// PerformEncodedMove decodes an externally produced encoded move (spec §6)
// and plays it.
func (b *Board) PerformEncodedMove(encoded uint32, decode func(uint32) (piece, from, to int32)) int32 {
	piece, from, to := decode(encoded)
	return b.PerformMove(int(piece), int(from), int(to))
}

func (b *Board) setKingSquare(c Color, sq int) {
	if c == White {
		b.whiteKingSq = sq
	} else {
		b.blackKingSq = sq
	}
}

func kingSideBit(c Color) uint {
	if c == White {
		return whiteKingSideCastleBit
	}
	return blackKingSideCastleBit
}

func queenSideBit(c Color) uint {
	if c == White {
		return whiteQueenSideCastleBit
	}
	return blackQueenSideCastleBit
}

func castledBit(c Color) uint {
	if c == White {
		return whiteHasCastledBit
	}
	return blackHasCastledBit
}

func (b *Board) clearEnPassantFlags() {
	if idx := enPassantIndex(b.state); idx < 16 {
		b.hash ^= zrand.EnPassantRNGNumbers[idx]
	}
	b.state = clearEnPassantFlags(b.state)
}

func (b *Board) setEnPassantFlag(from int, mover Color) {
	file := from & 7
	b.state = setEnPassantFile(b.state, file, mover)
	if idx := enPassantIndex(b.state); idx < 16 {
		b.hash ^= zrand.EnPassantRNGNumbers[idx]
	}
}
