package move

import (
	"testing"

	"github.com/corvidchess/corvid/types"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode(t *testing.T) {
	m := New(types.E2, types.E4, DoublePawnPush)
	assert.Equal(t, types.E2, m.From())
	assert.Equal(t, types.E4, m.To())
	assert.Equal(t, DoublePawnPush, m.Kind())
}

func TestPredicates(t *testing.T) {
	capture := New(types.D4, types.E5, Capture)
	assert.True(t, capture.IsCapture())
	assert.False(t, capture.IsPromotion())

	promo := New(types.B7, types.B8, QueenPromotion)
	assert.True(t, promo.IsPromotion())
	assert.Equal(t, types.Queen, promo.PromotionKind())

	promoCap := New(types.B7, types.A8, KnightPromotionCapture)
	assert.True(t, promoCap.IsCapture())
	assert.True(t, promoCap.IsPromotion())
	assert.Equal(t, types.Knight, promoCap.PromotionKind())

	castle := New(types.E1, types.G1, KingCastle)
	assert.True(t, castle.IsCastle())
	assert.Equal(t, types.CastleKing, castle.CastleSide())

	ep := New(types.E5, types.D6, EnPassant)
	assert.True(t, ep.IsEnPassant())
	assert.True(t, ep.IsCapture())
}

func TestNullMove(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.False(t, New(types.A1, types.A2, Quiet).IsNull())
}

func TestListOrdersDescendingByScore(t *testing.T) {
	var l List
	l.Push(New(types.A2, types.A3, Quiet), 3)
	l.Push(New(types.B2, types.B3, Quiet), 39)
	l.Push(New(types.C2, types.C3, Quiet), 15)

	var scores []int32
	for {
		_, ok := l.Next()
		if !ok {
			break
		}
		idx := l.cursor - 1
		scores = append(scores, l.Moves[idx].Score)
	}
	assert.Equal(t, []int32{39, 15, 3}, scores)
}

func TestKillerSlotsDemote(t *testing.T) {
	var k KillerSlots
	m1 := New(types.A2, types.A4, DoublePawnPush)
	m2 := New(types.B2, types.B4, DoublePawnPush)

	k.Insert(m1)
	assert.Equal(t, m1, k[0])

	k.Insert(m2)
	assert.Equal(t, m2, k[0])
	assert.Equal(t, m1, k[1])

	k.Insert(m2)
	assert.Equal(t, m2, k[0])
	assert.Equal(t, m1, k[1], "re-inserting the current killer is a no-op")
}
