package board

// rawMidTable / rawEgTable hold the positional deltas (before material and
// the §4.2 multiplier are applied), one row per piece magnitude 1..6,
// already laid out in this package's square convention (square 0 is the
// far rank from White's home, White's home rank is row 7 and its pawns
// start on row 6). Values are
// transcribed from the teacher's PSQT_MG/PSQT_EG tables with the rank order
// reversed, since the teacher indexes its tables from White's home rank
// upward.
var rawMidTable = [7][64]int16{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		57, 54, 55, 54, 46, 32, 4, 9,
		-33, -6, 7, 13, 27, 57, 19, -11,
		-36, -27, -27, -11, 1, 2, -4, -21,
		-46, -40, -33, -33, -23, -26, -15, -30,
		-51, -52, -45, -45, -37, -37, -20, -30,
		-46, -41, -42, -39, -40, -12, 1, -21,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-61, -6, -12, -2, 1, -6, -1, -16,
		-17, -12, 20, 33, 33, 37, -8, 3,
		-21, 12, 40, 49, 67, 64, 37, 14,
		-5, 8, 30, 35, 24, 43, 19, 22,
		-14, -1, 8, 5, 13, 10, 26, -1,
		-25, -8, -4, 6, 7, -1, -1, -17,
		-35, -32, -18, -10, -14, -12, -20, -18,
		-24, -28, -46, -30, -25, -21, -27, -40,
	},
	Bishop: {
		-27, -8, -13, -12, -8, -21, 1, -10,
		-22, 6, 3, -7, 4, 14, -3, 8,
		4, 18, 36, 36, 47, 55, 37, 24,
		-4, 22, 24, 49, 34, 37, 20, 6,
		-7, 10, 15, 21, 26, 11, 10, 7,
		-2, 11, 8, 13, 10, 8, 10, 13,
		4, 8, 11, -2, 1, 5, 20, 11,
		4, -2, -15, -21, -18, -8, -8, 2,
	},
	Rook: {
		23, 22, 19, 24, 23, 20, 21, 34,
		-3, -5, 16, 28, 31, 37, 9, 30,
		-22, 10, 4, 25, 41, 38, 44, 20,
		-33, -21, -11, 6, 0, 7, 8, 2,
		-49, -45, -43, -35, -37, -34, -13, -29,
		-60, -46, -50, -44, -47, -48, -21, -38,
		-71, -45, -44, -43, -47, -37, -25, -51,
		-46, -41, -37, -34, -36, -40, -19, -42,
	},
	Queen: {
		0, 16, 21, 29, 36, 38, 25, 36,
		-11, -40, 5, 5, 20, 44, -2, 27,
		-13, -6, -1, 14, 36, 58, 71, 42,
		-11, -6, -2, -1, 12, 22, 26, 26,
		-5, -3, -2, -6, -6, 10, 7, 16,
		-8, -1, -2, -4, -4, -1, 8, 7,
		-11, -4, 2, -2, -1, 7, 8, -7,
		-6, -17, -12, -3, -6, -28, -27, -12,
	},
	King: {
		-1, 0, 0, 2, 0, 0, 0, -2,
		-2, 6, 6, 2, 3, 4, 3, -2,
		1, 11, 12, 9, 8, 14, 12, 0,
		0, 9, 16, 10, 13, 15, 15, -8,
		-1, 8, 16, 10, 15, 12, 23, -9,
		-6, -4, -3, -11, -6, -8, 4, -15,
		12, 0, -18, -53, -33, -39, 7, 25,
		-4, 36, -1, -69, -23, -74, 19, 26,
	},
}

var rawEgTable = [7][64]int16{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		75, 69, 58, 48, 43, 43, 55, 63,
		21, 22, 21, 22, 22, 11, 25, 17,
		3, -2, -5, -23, -16, -14, -10, -12,
		-8, -10, -19, -18, -19, -17, -22, -21,
		-16, -17, -13, -12, -9, -12, -26, -29,
		-9, -8, -4, -2, 7, 2, -14, -29,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-41, -11, 2, 0, 1, 4, -4, -17,
		-25, -12, 1, 21, 19, -3, -9, -16,
		-20, 6, 24, 26, 20, 31, 12, -11,
		-11, 14, 28, 43, 48, 36, 28, -1,
		-15, 11, 32, 36, 34, 35, 16, -9,
		-38, -3, 6, 19, 18, 5, -2, -33,
		-28, -13, -13, -6, -4, -16, -18, -31,
		-29, -60, -26, -18, -20, -28, -48, -30,
	},
	Bishop: {
		1, 5, 5, 8, 4, 0, 2, 2,
		-7, 7, 10, 11, 12, 10, 12, -6,
		-5, 8, 11, 11, 13, 19, 12, 3,
		0, 11, 12, 17, 24, 15, 19, 3,
		-5, 6, 17, 18, 15, 14, 4, -10,
		-12, -1, 7, 10, 8, 3, -11, -11,
		-10, -20, -12, -4, -5, -18, -18, -33,
		-28, -16, -38, -14, -19, -24, -21, -20,
	},
	Rook: {
		32, 37, 40, 37, 38, 42, 39, 37,
		36, 42, 40, 41, 40, 23, 28, 22,
		34, 24, 32, 25, 17, 24, 14, 18,
		25, 27, 30, 26, 23, 20, 16, 16,
		13, 25, 26, 22, 20, 18, 12, 6,
		-2, 7, 8, 5, 4, 3, -1, -8,
		-8, -10, -3, -6, -5, -11, -14, -10,
		-10, 0, 5, 5, 3, 3, -1, -18,
	},
	Queen: {
		14, 26, 29, 38, 44, 43, 31, 33,
		7, 31, 25, 36, 57, 44, 28, 25,
		-1, 3, 20, 29, 45, 56, 40, 38,
		-11, 14, 13, 42, 52, 57, 49, 33,
		-19, 5, 6, 38, 32, 30, 17, 20,
		-22, -17, 5, -10, -11, 1, -19, -14,
		-26, -24, -44, -27, -36, -62, -57, -17,
		-25, -35, -41, -48, -50, -39, -27, -9,
	},
	King: {
		-17, -12, -6, -1, -6, -6, -6, -14,
		-12, 14, 11, 3, 5, 10, 20, -9,
		1, 26, 25, 19, 16, 32, 31, -1,
		-2, 22, 29, 30, 29, 26, 20, -5,
		-16, 8, 21, 28, 25, 19, 5, -18,
		-16, -3, 7, 16, 13, 6, -8, -18,
		-15, -9, -3, 4, -2, 1, -15, -35,
		-37, -29, -20, -26, -54, -14, -35, -78,
	},
}

// whitePST and blackPST are the packed (mid, eg) tables consumed by
// add_piece/remove_piece, indexed [piece][square].
var whitePST [7][64]uint32
var blackPST [7][64]uint32

func mirrorSquare(s int) int {
	rank, file := s/8, s&7
	return (7-rank)*8 + file
}

func init() {
	for p := Pawn; p <= King; p++ {
		mult := pstMultiplier[p]
		mv, ev := PieceValues[p], EgPieceValues[p]
		for s := 0; s < 64; s++ {
			mg := mv + rawMidTable[p][s]*mult
			eg := ev + rawEgTable[p][s]*mult
			whitePST[p][s] = pack(mg, eg)
		}
		for s := 0; s < 64; s++ {
			mg, eg := unpack(whitePST[p][mirrorSquare(s)])
			blackPST[p][s] = pack(-mg, -eg)
		}
	}
}

// pstLookup returns the packed PST word for a signed piece on square s.
func pstLookup(piece int, s int) uint32 {
	if piece > 0 {
		return whitePST[piece][s]
	}
	return blackPST[-piece][s]
}
