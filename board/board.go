package board

import (
	"fmt"
	"math/bits"

	"chesscore/history"
	"chesscore/zrand"
)

// MaxGameHalfmoves bounds the preallocated history stack (spec §5); the
// search driver is responsible for never exceeding it.
const MaxGameHalfmoves = 11796

// historyFrame is one entry of the undo stack: everything perform_move and
// perform_null_move cannot cheaply reconstruct on unmake, restored
// wholesale rather than recomputed (spec §4.3).
type historyFrame struct {
	state       uint32
	clock       int
	hash        uint64
	packedScore uint32
}

// Board is the dual mailbox+bitboard chess position aggregate (spec §3).
type Board struct {
	mailbox [64]int
	pieceBB [13]uint64
	occBB   [3]uint64

	whiteKingSq, blackKingSq int

	scoreMid, scoreEg int16
	hash              uint64

	halfmoveCount int
	halfmoveClock int
	state         uint32
	endgame       bool

	history []historyFrame

	positionHistory *history.PositionHistory
}

func packScore(mid, eg int16) uint32 { return pack(mid, eg) }

// New constructs a Board from a 67-entry vector: 64 mailbox entries
// followed by halfmove_clock, halfmove_count and state (spec §3
// Lifecycle). Construction fails if the vector is too short or either
// king is missing.
func New(vec []int) (*Board, error) {
	if len(vec) < 67 {
		return nil, fmt.Errorf("board: construction vector has %d entries, need at least 67", len(vec))
	}

	b := &Board{
		history:         make([]historyFrame, 0, MaxGameHalfmoves),
		positionHistory: history.New(),
	}
	for i := 0; i < 64; i++ {
		b.mailbox[i] = Empty
	}
	b.occBB[1] = ^uint64(0)

	haveWhiteKing, haveBlackKing := false, false
	for sq := 0; sq < 64; sq++ {
		piece := vec[sq]
		if piece == 0 {
			continue
		}
		b.addPiece(piece, sq)
		if piece == King {
			haveWhiteKing = true
		} else if piece == -King {
			haveBlackKing = true
		}
	}
	if !haveWhiteKing {
		return nil, fmt.Errorf("board: construction vector has no White king")
	}
	if !haveBlackKing {
		return nil, fmt.Errorf("board: construction vector has no Black king")
	}

	b.halfmoveClock = vec[64]
	b.halfmoveCount = vec[65]
	b.state = uint32(vec[66])

	b.whiteKingSq = bits.TrailingZeros64(b.pieceBB[bitboardIndex(King)])
	b.blackKingSq = bits.TrailingZeros64(b.pieceBB[bitboardIndex(-King)])

	b.hash = b.RecalculateHash()
	b.UpdateEndgameStatus()
	b.positionHistory.Push(b.hash)

	return b, nil
}

// addPieceRaw / removePieceRaw mutate only mailbox, bitboards and
// occupancy, with no hash or score side effects. undo_move uses these so
// scores and hashes, restored wholesale from the history frame, are never
// double-accounted (spec §4.3).
func (b *Board) addPieceRaw(piece, sq int) {
	b.mailbox[sq] = piece
	bit := uint64(1) << uint(sq)
	b.pieceBB[bitboardIndex(piece)] |= bit
	b.occBB[occIndex(sign(piece))] |= bit
	b.occBB[1] &^= bit
}

func (b *Board) removePieceRaw(sq int) int {
	piece := b.mailbox[sq]
	bit := uint64(1) << uint(sq)
	b.pieceBB[bitboardIndex(piece)] &^= bit
	b.occBB[occIndex(sign(piece))] &^= bit
	b.occBB[1] |= bit
	b.mailbox[sq] = Empty
	return piece
}

// addPiece is the incremental add: raw placement plus hash and packed
// score updates (spec §4.2).
func (b *Board) addPiece(piece, sq int) {
	b.addPieceRaw(piece, sq)
	b.hash ^= zrand.PieceRNGNumbers[bitboardIndex(piece)][sq]
	mg, eg := unpack(pstLookup(piece, sq))
	b.scoreMid += mg
	b.scoreEg += eg
}

// removePiece is the incremental remove: hash and packed score are backed
// out, then the rook-corner castling-rights side effect (spec §4.3) is
// applied whenever sq is one of the four original rook corners, whatever
// piece is leaving it.
func (b *Board) removePiece(sq int) int {
	piece := b.removePieceRaw(sq)
	b.hash ^= zrand.PieceRNGNumbers[bitboardIndex(piece)][sq]
	mg, eg := unpack(pstLookup(piece, sq))
	b.scoreMid -= mg
	b.scoreEg -= eg

	switch sq {
	case WhiteKingSideRookStart:
		b.clearCastleRightBit(whiteKingSideCastleBit)
	case WhiteQueenSideRookStart:
		b.clearCastleRightBit(whiteQueenSideCastleBit)
	case BlackKingSideRookStart:
		b.clearCastleRightBit(blackKingSideCastleBit)
	case BlackQueenSideRookStart:
		b.clearCastleRightBit(blackQueenSideCastleBit)
	}
	return piece
}

func (b *Board) clearCastleRightBit(bit uint) {
	if !hasBit(b.state, bit) {
		return
	}
	b.hash ^= zrand.CastlingRNGNumbers[castlingIndex(b.state)]
	b.state = clearBit(b.state, bit)
	b.hash ^= zrand.CastlingRNGNumbers[castlingIndex(b.state)]
}

func (b *Board) pushHistory() {
	b.history = append(b.history, historyFrame{
		state:       b.state,
		clock:       b.halfmoveClock,
		hash:        b.hash,
		packedScore: packScore(b.scoreMid, b.scoreEg),
	})
}

// popHistory restores state/clock/hash/score wholesale, steps the
// half-move count back by one ply, and reports the popped frame is gone.
// Popping with no frames pushed is a programmer error (spec §7 contract
// violation) and panics.
func (b *Board) popHistory() historyFrame {
	if len(b.history) == 0 {
		panic("board: undo called with empty history stack")
	}
	frame := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.halfmoveCount--
	b.state = frame.state
	b.halfmoveClock = frame.clock
	b.hash = frame.hash
	b.scoreMid, b.scoreEg = unpack(frame.packedScore)
	return frame
}

