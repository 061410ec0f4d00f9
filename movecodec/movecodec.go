// Package movecodec defines the encoded-move bit layout and piece/corner
// constants the board core consumes from the external move generator
// (spec §6). The layout mirrors the teacher's own goosemg.Move field order
// (from, to, piece, in that shift order) and this package additionally
// adapts the published github.com/dylhunn/dragontoothmg move encoding,
// since dragontoothmg is the external move generator wired into this repo.
package movecodec

import "github.com/dylhunn/dragontoothmg"

// Piece magnitudes, shared with the board package's piece encoding.
const (
	Pawn   = 1
	Knight = 2
	Bishop = 3
	Rook   = 4
	Queen  = 5
	King   = 6
)

// Corner rook starting squares and pawn baselines, using the core's square
// convention (White's home rank is 56..63, Black's is 0..7).
const (
	WhiteKingSideRookStart  = 63
	WhiteQueenSideRookStart = 56
	BlackKingSideRookStart  = 7
	BlackQueenSideRookStart = 0

	WhitePawnBaselineRank = 6
	BlackPawnBaselineRank = 1

	WhiteEnPassantTargetRank = 4
	BlackEnPassantTargetRank = 3
)

const (
	fromShift  = 0
	toShift    = 6
	pieceShift = 12

	sixBitMask = 0x3F
	fourBit    = 0xF
)

// Encode packs a (piece, from, to) triple the way the external move
// generator's encoded move is expected to already be packed. piece is the
// post-promotion magnitude (1..6); sign/colour is not encoded, matching
// perform_move's contract that colour is inferred from the board.
func Encode(piece, from, to int) uint32 {
	return uint32(from&sixBitMask)<<fromShift | uint32(to&sixBitMask)<<toShift | uint32(piece&fourBit)<<pieceShift
}

// DecodeStartIndex, DecodeEndIndex and DecodePiece are the consumed
// decode_start/decode_end/decode_piece helpers named in spec §6.
func DecodeStartIndex(encoded uint32) int32 { return int32((encoded >> fromShift) & sixBitMask) }
func DecodeEndIndex(encoded uint32) int32   { return int32((encoded >> toShift) & sixBitMask) }
func DecodePiece(encoded uint32) int32      { return int32((encoded >> pieceShift) & fourBit) }

// mirrorSquare converts a dragontoothmg square (LSB-first, a1=0, rank
// increasing upward) into this package's convention (square 0 is the top
// of the board from White's side, White's home rank is 56..63).
func mirrorSquare(s int) int {
	rank, file := s/8, s&7
	return (7-rank)*8 + file
}

// FromDragontoothmg adapts a dragontoothmg.Move — whose own packed uint16
// only carries from/to/promotion-offset, not the moved piece's identity —
// into this package's encoding. movedPiece is the magnitude of the piece
// standing on the move's origin square before it is played; if the move is
// a promotion, promotedTo (1..6, zero if none) overrides it, matching
// perform_move's "piece_id already includes promotion choice" contract.
// dragontoothmg indexes squares a1=0 upward; both squares are mirrored into
// this package's reversed-rank convention before encoding.
func FromDragontoothmg(m dragontoothmg.Move, movedPiece, promotedTo int) uint32 {
	piece := movedPiece
	if promotedTo != 0 {
		piece = promotedTo
	}
	return Encode(piece, mirrorSquare(int(m.From())), mirrorSquare(int(m.To())))
}
