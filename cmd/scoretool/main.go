package main

import (
	"flag"
	"fmt"
	"os"

	myengine "github.com/Oliverans/GooseEngineMG/goosemg"

	"chesscore/board"
)

// fenToVector mirrors board.vecFromFEN (unexported, test-only): it parses a
// FEN with the external move generator and reshapes its piece placement into
// this module's signed-magnitude, reversed-rank square convention.
func fenToVector(fen string, halfmoveClock, halfmoveCount int, state uint32) ([]int, error) {
	eb, err := myengine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	vec := make([]int, 67)
	for sq := 0; sq < 64; sq++ {
		mirrored := (7-sq/8)*8 + sq&7
		p := eb.PieceAt(myengine.Square(mirrored))
		if p == myengine.NoPiece {
			continue
		}
		magnitude := int(uint8(p) & 7)
		if uint8(p)&8 != 0 {
			vec[sq] = -magnitude
		} else {
			vec[sq] = magnitude
		}
	}
	vec[64] = halfmoveClock
	vec[65] = halfmoveCount
	vec[66] = int(state)
	return vec, nil
}

func main() {
	fen := flag.String("fen", myengine.FENStartPos, "FEN string to load (defaults to the initial position)")
	state := flag.Uint("state", 0, "raw state bitmask (castling/en-passant flags, spec §3)")
	halfmoveClock := flag.Int("halfmove-clock", 0, "half-move clock to seed the board with")
	halfmoveCount := flag.Int("halfmove-count", 0, "half-move count to seed the board with")
	validate := flag.Bool("validate", false, "rebuild bitboards/hash from the mailbox and report any inconsistency")
	showSee := flag.String("see", "", "evaluate SEE for a capture, format: from,to,ownPiece,capturedPiece (e.g. 28,35,2,1)")
	selfcheck := flag.Int("selfcheck", 0, "replay a fixed move-out/null/move-back/null make/unmake cycle N times, asserting Validate() and a returning hash after each cycle")
	flag.Parse()

	vec, err := fenToVector(*fen, *halfmoveClock, *halfmoveCount, uint32(*state))
	if err != nil {
		fmt.Fprintf(os.Stderr, "fenToVector: %v\n", err)
		os.Exit(2)
	}

	b, err := board.New(vec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "board.New: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("hash:          %#016x\n", b.GetHash())
	fmt.Printf("score:         %d\n", b.GetScore())
	fmt.Printf("active player: %v\n", b.GetActivePlayer())
	fmt.Printf("halfmove_count: %d\n", b.GetHalfmoveCount())
	fmt.Printf("halfmove_clock: %d\n", b.GetHalfmoveClock())
	fmt.Printf("fullmove_count: %d\n", b.GetFullMoveCount())
	fmt.Printf("endgame:       %v\n", b.IsEndgame())
	fmt.Printf("fifty_move_draw: %v\n", b.IsFiftyMoveDraw())
	fmt.Printf("insufficient_material_draw: %v\n", b.IsInsufficientMaterialDraw())
	fmt.Printf("white_in_check: %v\n", b.InCheck(board.White))
	fmt.Printf("black_in_check: %v\n", b.InCheck(board.Black))

	if *validate {
		if err := b.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "validate: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("validate: ok")
	}

	if *showSee != "" {
		var from, to, own, captured int
		if _, err := fmt.Sscanf(*showSee, "%d,%d,%d,%d", &from, &to, &own, &captured); err != nil {
			fmt.Fprintf(os.Stderr, "-see must be from,to,ownPiece,capturedPiece: %v\n", err)
			os.Exit(2)
		}
		oppColor := -b.GetActivePlayer()
		fmt.Printf("see: %d\n", b.SeeScore(oppColor, from, to, own, captured))
	}

	if *selfcheck > 0 {
		if err := runSelfcheck(b, *selfcheck); err != nil {
			fmt.Fprintf(os.Stderr, "selfcheck: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("selfcheck: %d cycles ok\n", *selfcheck)
	}
}

// runSelfcheck repeats a fixed make/unmake cycle (move a piece out, let the
// opponent pass with a null move, move it back, let the opponent pass again)
// N times, checking property 1 of spec §8 holds after every perform/undo
// round trip: Validate() stays clean and the hash returns to where it
// started. It needs no real move legality since perform_move/undo_move make
// no legality assumptions of their own (spec §4.2).
func runSelfcheck(b *board.Board, cycles int) error {
	fromSq := -1
	for sq := 0; sq < 64; sq++ {
		if b.GetItem(sq) != board.Empty {
			continue
		}
		fromSq = sq
		break
	}
	if fromSq < 0 {
		return fmt.Errorf("no empty square found to stage a shuffle through")
	}

	mover := b.GetActivePlayer()
	var pieceSq int
	for sq := 0; sq < 64; sq++ {
		item := b.GetItem(sq)
		if item != board.Empty && board.Color(sign(item)) == mover && item != int(mover)*board.King {
			pieceSq = sq
			break
		}
	}

	startHash := b.GetHash()
	magnitude := b.GetItem(pieceSq)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	for i := 0; i < cycles; i++ {
		removedOut := b.PerformMove(magnitude, pieceSq, fromSq)
		b.PerformNullMove()
		removedBack := b.PerformMove(magnitude, fromSq, pieceSq)
		b.PerformNullMove()

		if err := b.Validate(); err != nil {
			return fmt.Errorf("cycle %d: %w", i, err)
		}
		if b.GetHash() != startHash {
			return fmt.Errorf("cycle %d: hash did not return to its starting value", i)
		}

		b.UndoNullMove()
		b.UndoMove(magnitude, fromSq, pieceSq, removedBack)
		b.UndoNullMove()
		b.UndoMove(magnitude, pieceSq, fromSq, removedOut)

		if b.GetHash() != startHash {
			return fmt.Errorf("cycle %d: undo did not restore the starting hash", i)
		}
	}
	return nil
}

func sign(piece int) int {
	if piece < 0 {
		return -1
	}
	return 1
}
