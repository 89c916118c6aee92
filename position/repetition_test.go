package position

import (
	"testing"

	"github.com/corvidchess/corvid/types"
	"github.com/stretchr/testify/assert"
)

func twoKings() Position {
	p := Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceBKing, types.E8)
	return p
}

func TestIsThreefoldRepetitionDetectsThreeOccurrences(t *testing.T) {
	root := twoKings()
	g := NewGame(root)

	assert.False(t, g.IsThreefoldRepetition())

	g.Push(root)
	assert.False(t, g.IsThreefoldRepetition(), "only two occurrences so far")

	g.Push(root)
	assert.True(t, g.IsThreefoldRepetition())
}

func TestIsThreefoldRepetitionIgnoresDistinctPositions(t *testing.T) {
	g := NewGame(twoKings())

	other := twoKings()
	other.PlacePiece(types.PieceWQueen, types.D4)
	g.Push(other)
	g.Push(other)

	assert.False(t, g.IsThreefoldRepetition(), "root and the queen position never repeat three times individually")
}

func TestIsFiftyMoveRule(t *testing.T) {
	p := twoKings()
	g := NewGame(p)
	assert.False(t, g.IsFiftyMoveRule())

	p.HalfmoveClock = 100
	g.Push(p)
	assert.True(t, g.IsFiftyMoveRule())
}

func TestIsInsufficientMaterialBareKings(t *testing.T) {
	g := NewGame(twoKings())
	assert.True(t, g.IsInsufficientMaterial())
}

func TestIsInsufficientMaterialKingAndMinorVsBareKing(t *testing.T) {
	p := twoKings()
	p.PlacePiece(types.PieceWBishop, types.C1)
	g := NewGame(p)
	assert.True(t, g.IsInsufficientMaterial())
}

func TestIsInsufficientMaterialSameColorBishops(t *testing.T) {
	p := twoKings()
	p.PlacePiece(types.PieceWBishop, types.C1)
	p.PlacePiece(types.PieceBBishop, types.F8)
	g := NewGame(p)
	assert.True(t, g.IsInsufficientMaterial(), "C1 and F8 are both dark squares")
}

func TestIsInsufficientMaterialOppositeColorBishopsIsNotADraw(t *testing.T) {
	p := twoKings()
	p.PlacePiece(types.PieceWBishop, types.C1)
	p.PlacePiece(types.PieceBBishop, types.A8)
	g := NewGame(p)
	assert.False(t, g.IsInsufficientMaterial(), "C1 is dark, A8 is light: a bishop pair of opposite colors can still mate")
}

func TestIsInsufficientMaterialFalseWithPawn(t *testing.T) {
	p := twoKings()
	p.PlacePiece(types.PieceWPawn, types.E4)
	g := NewGame(p)
	assert.False(t, g.IsInsufficientMaterial())
}
