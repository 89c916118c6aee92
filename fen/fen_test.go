package fen

import (
	"testing"

	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	position.InitZobristKeys()
	m.Run()
}

func TestParseDefaultPosition(t *testing.T) {
	p := Parse(Default)

	assert.Equal(t, types.White, p.ActiveColor)
	assert.Equal(t, types.CastlingWhiteKing|types.CastlingWhiteQueen|types.CastlingBlackKing|types.CastlingBlackQueen, p.CastlingRights)
	assert.Equal(t, types.OutOfBoard, p.EPTarget)
	assert.Equal(t, 0, p.HalfmoveClock)
	assert.Equal(t, 1, p.FullmoveNumber)
	assert.Equal(t, types.PieceWRook, p.PieceAt(types.A1))
	assert.Equal(t, types.PieceBKing, p.PieceAt(types.E8))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.E4))
}

func TestParseSerializeRoundTrip(t *testing.T) {
	fens := []string{
		Default,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, f := range fens {
		p := Parse(f)
		assert.Equal(t, f, Serialize(p), "round-tripping %q should reproduce it exactly", f)
	}
}

func TestParseEnPassantTarget(t *testing.T) {
	p := Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.Equal(t, types.D6, p.EPTarget)
}

func TestParsePanicsOnMalformedFEN(t *testing.T) {
	assert.Panics(t, func() { Parse("not a fen string") })
	assert.Panics(t, func() { Parse("8/8/8/8/8/8/8/8 x KQkq - 0 1") })
}

func TestHashMatchesComputeHash(t *testing.T) {
	p := Parse(Default)
	assert.Equal(t, position.ComputeHash(&p), p.Hash)
}
