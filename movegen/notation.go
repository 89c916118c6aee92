package movegen

import (
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

var promotionLetter = map[types.PieceKind]byte{
	types.Knight: 'n',
	types.Bishop: 'b',
	types.Rook:   'r',
	types.Queen:  'q',
}

var pieceLetter = map[types.PieceKind]byte{
	types.Knight: 'N',
	types.Bishop: 'B',
	types.Rook:   'R',
	types.Queen:  'Q',
	types.King:   'K',
}

var fileLetters = "abcdefgh"

// MoveToCAN renders m in long algebraic (UCI coordinate) notation, e.g.
// "e2e4", "e7e8q" for a queen promotion, "e1g1" for white short castling.
func MoveToCAN(m move.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(types.SquareNames[m.From()])
	b.WriteString(types.SquareNames[m.To()])
	if m.IsPromotion() {
		b.WriteByte(promotionLetter[m.PromotionKind()])
	}
	return b.String()
}

// MoveFromCAN parses a long algebraic move string against p, returning the
// matching pseudo-legal Move with its kind correctly disambiguated (capture,
// en passant, castle, promotion). Returns an error if no pseudo-legal move
// of p matches the string.
func MoveFromCAN(s string, p *position.Position) (move.Move, error) {
	if len(s) < 4 {
		return move.Null, fmt.Errorf("movegen: %q is too short to be a coordinate move", s)
	}
	from, ok1 := parseSquare(s[0:2])
	to, ok2 := parseSquare(s[2:4])
	if !ok1 || !ok2 {
		return move.Null, fmt.Errorf("movegen: %q is not a valid coordinate move", s)
	}
	var wantPromo types.PieceKind = -1
	if len(s) >= 5 {
		switch s[4] {
		case 'n':
			wantPromo = types.Knight
		case 'b':
			wantPromo = types.Bishop
		case 'r':
			wantPromo = types.Rook
		case 'q':
			wantPromo = types.Queen
		}
	}

	var captures, quiets move.List
	Generate(p, &captures, &quiets)
	for _, l := range [2]*move.List{&captures, &quiets} {
		for i := 0; i < l.Length; i++ {
			m := l.Moves[i].M
			if m.From() != from || m.To() != to {
				continue
			}
			if m.IsPromotion() && m.PromotionKind() != wantPromo {
				continue
			}
			if !m.IsPromotion() && wantPromo != -1 {
				continue
			}
			return m, nil
		}
	}
	return move.Null, fmt.Errorf("movegen: %q is not a pseudo-legal move in this position", s)
}

func parseSquare(s string) (int, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return rank*8 + file, true
}

// MoveToSAN renders m in Standard Algebraic Notation relative to p (the
// position before m is made) and legal (every legal move available to p,
// used to resolve disambiguation). isCheck/isCheckmate describe the
// resulting position and control the trailing '+'/'#'.
func MoveToSAN(m move.Move, p *position.Position, legal []move.Move, isCheck, isCheckmate bool) string {
	if m.IsCastle() {
		if m.CastleSide() == types.CastleQueen {
			return sanSuffix("O-O-O", isCheck, isCheckmate)
		}
		return sanSuffix("O-O", isCheck, isCheckmate)
	}

	moved := p.PieceAt(m.From())
	kind := types.Kind(moved)

	var b strings.Builder
	if letter, ok := pieceLetter[kind]; ok {
		b.WriteByte(letter)
	}

	if kind != types.Pawn {
		if file, rank, needed := disambiguate(m, moved, p, legal); needed {
			if file != 0 {
				b.WriteByte(file)
			}
			if rank != 0 {
				b.WriteByte(rank)
			}
		}
	}

	if m.IsCapture() {
		if kind == types.Pawn {
			b.WriteByte(fileLetters[m.From()%8])
		}
		b.WriteByte('x')
	}

	b.WriteString(types.SquareNames[m.To()])

	if m.IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(pieceLetter[m.PromotionKind()])
	}

	return sanSuffix(b.String(), isCheck, isCheckmate)
}

func sanSuffix(s string, isCheck, isCheckmate bool) string {
	switch {
	case isCheckmate:
		return s + "#"
	case isCheck:
		return s + "+"
	default:
		return s
	}
}

// disambiguate reports the file and/or rank byte (0 if not needed) that
// must be appended after the piece letter to distinguish m from any other
// legal move of the same piece kind and destination square.
func disambiguate(m move.Move, moved types.Piece, p *position.Position, legal []move.Move) (file, rank byte, needed bool) {
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legal {
		if other == m || other.To() != m.To() {
			continue
		}
		if p.PieceAt(other.From()) != moved {
			continue
		}
		ambiguous = true
		if other.From()%8 == m.From()%8 {
			sameFile = true
		}
		if other.From()/8 == m.From()/8 {
			sameRank = true
		}
	}
	if !ambiguous {
		return 0, 0, false
	}
	if !sameFile {
		return fileLetters[m.From()%8], 0, true
	}
	if !sameRank {
		return 0, byte(m.From()/8+1) + '0', true
	}
	return fileLetters[m.From()%8], byte(m.From()/8+1) + '0', true
}

// isCheckAfter reports whether making m on p delivers check to the
// opponent, used by callers building a SAN string end to end.
func isCheckAfter(p *position.Position, m move.Move) bool {
	g := position.NewGame(*p)
	MakeMove(g, m)
	after := g.Current()
	return attack.IsCheck(after.Boards(), after.ActiveColor)
}

// MoveToSANAuto is MoveToSAN with check/checkmate worked out automatically
// by making m and counting the opponent's legal replies, for callers (a PGN
// writer, a CLI move echo) that don't already track check state themselves.
func MoveToSANAuto(m move.Move, p *position.Position, legal []move.Move) string {
	check := isCheckAfter(p, m)
	checkmate := false
	if check {
		g := position.NewGame(*p)
		MakeMove(g, m)
		checkmate = len(GenLegalMoves(g.Current())) == 0
	}
	return MoveToSAN(m, p, legal, check, checkmate)
}
