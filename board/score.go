package board

// pack and unpack combine a midgame and endgame signed 16-bit score into a
// single 32-bit word (spec §4.1), the unit every PST lookup and incremental
// accumulator update operates on.
func pack(mid, eg int16) uint32 {
	return (uint32(uint16(mid)) & 0xFFFF) | (uint32(uint16(eg)) << 16)
}

func unpack(packed uint32) (mid, eg int16) {
	mid = int16(packed & 0xFFFF)
	eg = int16(packed >> 16)
	return
}
