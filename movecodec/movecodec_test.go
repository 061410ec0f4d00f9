package movecodec

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoded := Encode(Knight, 12, 29)
	if got := DecodeStartIndex(encoded); got != 12 {
		t.Errorf("DecodeStartIndex = %d, want 12", got)
	}
	if got := DecodeEndIndex(encoded); got != 29 {
		t.Errorf("DecodeEndIndex = %d, want 29", got)
	}
	if got := DecodePiece(encoded); got != Knight {
		t.Errorf("DecodePiece = %d, want %d", got, Knight)
	}
}

func TestFromDragontoothmgMirrorsSquares(t *testing.T) {
	var m dragontoothmg.Move
	m.Setfrom(dragontoothmg.Square(8)).Setto(dragontoothmg.Square(16))

	encoded := FromDragontoothmg(m, Pawn, 0)
	// dragontoothmg square 8 (rank 1, file 0) mirrors to this package's
	// rank 6, file 0 = square 48; square 16 (rank 2) mirrors to square 40.
	if got := DecodeStartIndex(encoded); got != 48 {
		t.Errorf("DecodeStartIndex = %d, want 48", got)
	}
	if got := DecodeEndIndex(encoded); got != 40 {
		t.Errorf("DecodeEndIndex = %d, want 40", got)
	}
	if got := DecodePiece(encoded); got != Pawn {
		t.Errorf("DecodePiece = %d, want %d", got, Pawn)
	}
}

func TestFromDragontoothmgUsesPromotedPiece(t *testing.T) {
	var m dragontoothmg.Move
	m.Setfrom(dragontoothmg.Square(48)).Setto(dragontoothmg.Square(56))

	encoded := FromDragontoothmg(m, Pawn, Queen)
	if got := DecodePiece(encoded); got != Queen {
		t.Errorf("DecodePiece = %d, want %d (the promotion choice overrides the moved piece)", got, Queen)
	}
}
