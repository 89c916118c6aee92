// Package bitboard implements the 64-bit board-word primitives the rest of
// the engine is built on: directional shifts, bit scan, population count,
// and the dumb7fill sliding-attack generator.
package bitboard

// Board is a 64-bit word, bit i set iff square i is occupied.
type Board = uint64

// Directional offsets used with Shift and Dumb7Fill.
const (
	Up        = 8
	Down      = -8
	Left      = -1
	Right     = 1
	UpLeft    = Up + Left
	UpRight   = Up + Right
	DownLeft  = Down + Left
	DownRight = Down + Right
)

// File/rank masks used to prevent wraparound when shifting a bitboard
// horizontally. Callers must AND the seed with the mask matching the shift
// direction before shifting.
const (
	NotAFile   Board = 0xFEFEFEFEFEFEFEFE
	NotHFile   Board = 0x7F7F7F7F7F7F7F7F
	NotABFile  Board = 0xFCFCFCFCFCFCFCFC
	NotGHFile  Board = 0x3F3F3F3F3F3F3F3F
	Not1stRank Board = 0xFFFFFFFFFFFFFF00
	Not8thRank Board = 0x00FFFFFFFFFFFFFF
	Rank1      Board = 0xFF
	Rank2      Board = 0xFF00
	Rank7      Board = 0xFF000000000000
	Rank8      Board = 0xFF00000000000000
)

// edgeMask returns the file mask that must be applied to a bitboard before
// shifting it in dir, to keep pieces from wrapping across the board edge.
func edgeMask(dir int) Board {
	switch dir {
	case Left, UpLeft, DownLeft:
		return NotAFile
	case Right, UpRight, DownRight:
		return NotHFile
	default:
		return ^Board(0)
	}
}

// Shift moves every set bit of b by one square in dir, masking off the file
// that would otherwise wrap around the board edge.
func Shift(b Board, dir int) Board {
	b &= edgeMask(dir)
	if dir >= 0 {
		return b << uint(dir)
	}
	return b >> uint(-dir)
}

// bitScanLookup is a precalculated lookup table of LSB indices for 64-bit
// words, indexed via a De Bruijn-style magic multiply.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// bitScanMagic is used to fold the isolated LSB into a 6-bit lookup index.
const bitScanMagic Board = 0x07EDD5E59A4E28C2

// Scan returns the index of the least significant set bit of b.
// Undefined (returns a meaningless index) when b is zero; callers guarantee
// b is non-empty.
func Scan(b Board) int {
	return bitScanLookup[(b&-b)*bitScanMagic>>58]
}

// PopLSB removes the least significant set bit from *b and returns its index.
func PopLSB(b *Board) int {
	sq := Scan(*b)
	*b &= *b - 1
	return sq
}

// PopCount returns the number of bits set in b.
func PopCount(b Board) int {
	cnt := 0
	for b > 0 {
		cnt++
		b &= b - 1
	}
	return cnt
}

// Get reports whether square sq is set in b.
func Get(b Board, sq int) bool { return b&(1<<uint(sq)) != 0 }

// Set returns b with square sq set.
func Set(b Board, sq int) Board { return b | (1 << uint(sq)) }

// Toggle returns b with square sq's bit flipped.
func Toggle(b Board, sq int) Board { return b ^ (1 << uint(sq)) }

// Dumb7Fill computes the occluded fill of seed in direction dir: up to seven
// iterations of flood |= Shift(flood, dir) & empty, stopping as soon as an
// iteration introduces no new squares (a slider can cross at most seven
// squares on an 8x8 board). seed is the slider's own square as a singleton
// bitboard; empty is the bitboard of unoccupied squares. The returned flood
// includes seed and every empty square reached, but not the first occupied
// square beyond the flood (the blocker) — callers derive the attack set by
// shifting the flood one further square, which lands on the blocker (if any)
// or off the board.
func Dumb7Fill(seed, empty Board, dir int) Board {
	flood := seed
	for i := 0; i < 7; i++ {
		next := flood | (Shift(flood, dir) & empty)
		if next == flood {
			break
		}
		flood = next
	}
	return flood
}
