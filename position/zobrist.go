package position

import (
	"math/rand/v2"

	"github.com/corvidchess/corvid/types"
)

// Fixed seed so two processes (or two runs of the same process) derive
// identical Zobrist keys, which matters for reproducible perft/search
// traces and for any persisted transposition table.
const (
	zobristSeed1 = 0x9E3779B97F4A7C15
	zobristSeed2 = 0xC2B2AE3D27D4EB4F
)

var (
	pieceKeys    [12][64]uint64
	castleKeys   [16]uint64
	epFileKeys   [8]uint64
	sideKey      uint64
	zobristReady bool
)

// InitZobristKeys fills the package's Zobrist key tables from a
// deterministic PRNG. Call once at process start before relying on
// Position.Hash or PieceKey/CastlingKey/EPKey/SideKey. Safe to call more
// than once; later calls are no-ops.
func InitZobristKeys() {
	if zobristReady {
		return
	}
	r := rand.New(rand.NewPCG(zobristSeed1, zobristSeed2))
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[piece][sq] = r.Uint64()
		}
	}
	for i := range castleKeys {
		castleKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
	sideKey = r.Uint64()
	zobristReady = true
}

// PieceKey returns the Zobrist key for piece standing on sq.
func PieceKey(piece, sq int) uint64 { return pieceKeys[piece][sq] }

// CastlingKey returns the Zobrist key for a castling-rights nibble value
// (0-15), keyed whole rather than per-bit so toggling rights is a single
// XOR of the old and new nibble's keys.
func CastlingKey(rights int) uint64 { return castleKeys[rights&0xF] }

// EPKey returns the Zobrist key for an en-passant target square, keyed by
// file only (as only the file affects capture legality).
func EPKey(sq int) uint64 { return epFileKeys[sq&7] }

// SideKey returns the Zobrist key XORed in whenever the side to move
// changes.
func SideKey() uint64 { return sideKey }

// ComputeHash recomputes a position's Zobrist hash from scratch, scanning
// every square plus side/castling/en-passant state. Used by tests to
// verify the incrementally maintained Position.Hash hasn't drifted, and
// never on the make/unmake hot path.
func ComputeHash(p *Position) uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		if piece := p.Mailbox[sq]; piece != types.PieceNone {
			h ^= PieceKey(piece, sq)
		}
	}
	h ^= CastlingKey(p.CastlingRights)
	if p.EPTarget != types.OutOfBoard {
		h ^= EPKey(p.EPTarget)
	}
	if p.ActiveColor == types.Black {
		h ^= SideKey()
	}
	return h
}
