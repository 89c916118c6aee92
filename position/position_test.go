package position

import (
	"testing"

	"github.com/corvidchess/corvid/types"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	InitZobristKeys()
	m.Run()
}

func TestPlaceRemovePieceRoundTrip(t *testing.T) {
	p := Empty()
	hashBefore := p.Hash

	p.PlacePiece(types.PieceWKnight, types.F3)
	assert.Equal(t, types.PieceWKnight, p.PieceAt(types.F3))
	assert.NotEqual(t, hashBefore, p.Hash)

	p.RemovePiece(types.PieceWKnight, types.F3)
	assert.Equal(t, types.PieceNone, p.PieceAt(types.F3))
	assert.Equal(t, hashBefore, p.Hash, "placing then removing the same piece must XOR the hash back to its original value")
}

func TestHashMatchesFromScratchRecompute(t *testing.T) {
	p := Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceBKing, types.E8)
	p.PlacePiece(types.PieceWRook, types.A1)
	p.CastlingRights = types.CastlingWhiteQueen
	p.Hash ^= CastlingKey(p.CastlingRights)

	assert.Equal(t, ComputeHash(&p), p.Hash)
}

func TestGameStack(t *testing.T) {
	g := NewGame(Empty())
	assert.Equal(t, 0, g.Ply())

	next := Empty()
	next.FullmoveNumber = 2
	g.Push(next)
	assert.Equal(t, 1, g.Ply())
	assert.Equal(t, 2, g.Current().FullmoveNumber)

	g.Pop()
	assert.Equal(t, 0, g.Ply())
	assert.Equal(t, 1, g.Current().FullmoveNumber)
}

func TestBoardsConversion(t *testing.T) {
	p := Empty()
	p.PlacePiece(types.PieceWPawn, types.E4)
	b := p.Boards()
	assert.Equal(t, p.Bitboards, b.Pieces)
	assert.Equal(t, p.Occupied, b.Occupied)
}
