// Package move implements the packed 16-bit move encoding and the
// preallocated scored move list: from/to squares, the move-kind flags,
// killer slots, and insertion-ordered scoring. The staged
// BestMove/Capture/KillerMove/QuietMove pipeline built on top of these is
// implemented by package movegen.
package move

import "github.com/corvidchess/corvid/types"

// Move is a chess move packed into 16 bits: bits 0-5 the from-square,
// bits 6-11 the to-square, bits 12-15 the kind (see the Kind* constants).
type Move uint16

// Kind is the 4-bit move kind. Bit 2 (value 4) marks a capture and bit 3
// (value 8) a promotion, whose low two bits then select the promoted piece
// (knight, bishop, rook, queen). Without the promotion bit, the low two
// bits tell quiet, double pawn push and the two castles apart, or, with the
// capture bit set, a plain capture from en passant.
type Kind = int

const (
	Quiet           Kind = 0
	DoublePawnPush  Kind = 1
	KingCastle      Kind = 2
	QueenCastle     Kind = 3
	Capture         Kind = 4
	EnPassant       Kind = 5
	KnightPromotion Kind = 8
	BishopPromotion Kind = 9
	RookPromotion   Kind = 10
	QueenPromotion  Kind = 11
	// Capture variants of the four promotions (kind | 4).
	KnightPromotionCapture = KnightPromotion | 4
	BishopPromotionCapture = BishopPromotion | 4
	RookPromotionCapture   = RookPromotion | 4
	QueenPromotionCapture  = QueenPromotion | 4
)

// Null is the distinguished null move: from == to == 0, kind Quiet.
var Null = Move(0)

// New packs a from-square, to-square and kind into a Move.
func New(from, to int, kind Kind) Move {
	return Move(from | to<<6 | kind<<12)
}

func (m Move) From() int { return int(m & 0x3F) }
func (m Move) To() int   { return int(m>>6) & 0x3F }
func (m Move) Kind() Kind {
	return Kind(m>>12) & 0xF
}

// IsNull reports whether m is the distinguished null move.
func (m Move) IsNull() bool { return m.From() == m.To() }

// IsCapture reports whether m's kind has the capture bit set.
func (m Move) IsCapture() bool { return m.Kind()&Capture != 0 }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Kind()&0x8 != 0 }

// IsCastle reports whether m is a king- or queen-side castle.
func (m Move) IsCastle() bool { return m.Kind() == KingCastle || m.Kind() == QueenCastle }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Kind() == EnPassant }

// CastleSide returns which side m castles on. Only meaningful if IsCastle.
func (m Move) CastleSide() types.CastleSide {
	if m.Kind() == KingCastle {
		return types.CastleKing
	}
	return types.CastleQueen
}

// PromotionKind returns the promoted piece kind. Only meaningful if
// IsPromotion.
func (m Move) PromotionKind() types.PieceKind {
	switch m.Kind() &^ Capture {
	case KnightPromotion:
		return types.Knight
	case BishopPromotion:
		return types.Bishop
	case RookPromotion:
		return types.Rook
	default:
		return types.Queen
	}
}

// MaxMovesPerPosition bounds the number of pseudo-legal moves in any
// reachable chess position. See https://www.talkchess.com/forum/viewtopic.php?t=61792
const MaxMovesPerPosition = 218

// Scored pairs a move with its ordering score, assigned during the Capture
// stage (MVV-LVA + SEE bonus) and left at zero for quiet moves.
type Scored struct {
	M     Move
	Score int32
}

// List is a preallocated, ordered sequence of scored moves with a read
// cursor and an ordering flag. Zero value is ready to use. A List holds the
// moves of a single generation stage (captures, or quiet moves); the
// generator in package movegen owns the BestMove/Capture/KillerMove/
// QuietMove state machine built on top of one or more Lists.
type List struct {
	Moves        [MaxMovesPerPosition]Scored
	Length       int
	cursor       int
	SkipOrdering bool

	// Generated marks that a generation pass has already filled this list,
	// so movegen.NextCapture knows not to regenerate it on every call.
	Generated bool
}

// Reset clears the list for reuse, keeping the preallocated backing array.
func (l *List) Reset() {
	l.Length = 0
	l.cursor = 0
	l.Generated = false
}

// Push appends m with the given ordering score to the list. If
// SkipOrdering is false, it re-runs the bubble-forward insertion pass used
// to keep captures sorted by descending score as they are pushed.
func (l *List) Push(m Move, score int32) {
	l.Moves[l.Length] = Scored{M: m, Score: score}
	if !l.SkipOrdering {
		for i := l.Length; i > l.cursor && l.Moves[i-1].Score < l.Moves[i].Score; i-- {
			l.Moves[i-1], l.Moves[i] = l.Moves[i], l.Moves[i-1]
		}
	}
	l.Length++
}

// PushQuiet appends an unscored (score 0) move.
func (l *List) PushQuiet(m Move) { l.Push(m, 0) }

// Next pops and returns the next move at the current cursor, or (Null,
// false) if the list has been fully consumed.
func (l *List) Next() (Move, bool) {
	if l.cursor >= l.Length {
		return Null, false
	}
	m := l.Moves[l.cursor].M
	l.cursor++
	return m, true
}

// PeekScore returns the score of the move the next call to Next would
// return, used by the quiescence NextCapture variant to prune below
// GoodCaptureScore without consuming the move.
func (l *List) PeekScore() (int32, bool) {
	if l.cursor >= l.Length {
		return 0, false
	}
	return l.Moves[l.cursor].Score, true
}

// KillerSlots stores the two most recent quiet moves that caused a beta
// cutoff at one search ply; a search keeps one value per ply.
type KillerSlots [2]Move

// Insert records m as the most recent killer, demoting the previous most
// recent killer to the second slot. Re-inserting the current most recent
// killer is a no-op.
func (k *KillerSlots) Insert(m Move) {
	if k[0] == m {
		return
	}
	k[1] = k[0]
	k[0] = m
}
